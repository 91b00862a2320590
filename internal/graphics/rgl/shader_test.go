package rgl

import (
	"math"
	"testing"
)

func TestIntBitsPreservesBitPattern(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 10, 2048, math.MaxInt32} {
		packed := intBits(v)
		if len(packed) != 1 {
			t.Fatalf("Expected a single element, got %d", len(packed))
		}
		if got := int32(math.Float32bits(packed[0])); got != v {
			t.Errorf("int %d round-tripped to %d; the GL int uniform would read garbage", v, got)
		}
	}
}
