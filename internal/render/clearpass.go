package render

import (
	"cogentcore.org/core/math32"
)

// ClearPass clears its output and nothing else. It gives the chain an
// explicit, nameable first step.
type ClearPass struct {
	BasePass
}

func NewClearPass(color math32.Vector4) *ClearPass {
	p := &ClearPass{BasePass: NewBasePass("clear", false)}
	p.Clear = true
	p.ClearColor = color
	p.ClearDepth = true
	return p
}

func (p *ClearPass) Execute(ctx *Context) {
	p.bindOutput(ctx)
}
