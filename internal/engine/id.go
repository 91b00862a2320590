package engine

import "sync/atomic"

// NodeID identifies a node for the whole lifetime of a scene session.
// IDs are monotonically increasing and never reused, even after the node
// is destroyed, so external references (selection, undo) stay unambiguous.
type NodeID uint64

// InvalidNodeID is never assigned to a node.
const InvalidNodeID NodeID = 0

// IDSource hands out NodeIDs. Each Scene owns one, so independent scenes
// do not coordinate through hidden global state and tests can create a
// fresh source for deterministic IDs.
type IDSource struct {
	next atomic.Uint64
}

func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns a fresh ID. The first ID handed out is 1; 0 stays invalid.
func (s *IDSource) Next() NodeID {
	return NodeID(s.next.Add(1))
}
