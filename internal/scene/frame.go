// Package scene is the in-memory reference-frame hierarchy and body list the
// camera reads from each frame.
package scene

import (
	"slices"

	"orrery/internal/galaxy"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a node in the reference-frame tree. Position and orientation are
// relative to the parent frame. A rotating frame turns with its body; every
// celestial body has a non-rotating frame and may have a rotating child of it
// bound to the same system body.
type Frame struct {
	Label string

	parent   *Frame
	children []*Frame
	body     *Body
	sbody    *galaxy.SystemBody
	rotating bool

	pos, oldPos, interpPos          mgl64.Vec3
	orient, oldOrient, interpOrient mgl64.Mat3
}

// NewFrame creates a frame at the parent's origin with identity orientation
// and links it under parent. A nil parent makes a root frame.
func NewFrame(parent *Frame, label string, rotating bool) *Frame {
	f := &Frame{
		Label:        label,
		parent:       parent,
		rotating:     rotating,
		orient:       mgl64.Ident3(),
		oldOrient:    mgl64.Ident3(),
		interpOrient: mgl64.Ident3(),
	}
	if parent != nil {
		parent.children = append(parent.children, f)
	}
	return f
}

// NewCameraFrame creates the temporary frame a camera renders from. It must be
// detached with Remove when the frame is done.
func NewCameraFrame(parent *Frame) *Frame {
	return NewFrame(parent, "camera", false)
}

// Remove detaches f from its parent.
func (f *Frame) Remove() {
	if f.parent == nil {
		return
	}
	p := f.parent
	if i := slices.Index(p.children, f); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	f.parent = nil
}

func (f *Frame) Parent() *Frame     { return f.parent }
func (f *Frame) Children() []*Frame { return f.children }
func (f *Frame) IsRotFrame() bool   { return f.rotating }
func (f *Frame) Body() *Body        { return f.body }

func (f *Frame) SystemBody() *galaxy.SystemBody { return f.sbody }

// SetBody binds the frame to b and to b's catalog entry.
func (f *Frame) SetBody(b *Body) {
	f.body = b
	if b != nil {
		f.sbody = b.SystemBody
	} else {
		f.sbody = nil
	}
}

func (f *Frame) Position() mgl64.Vec3 { return f.pos }
func (f *Frame) Orient() mgl64.Mat3   { return f.orient }

// SetPosition places the frame without movement: previous, current and
// interpolated positions all become p.
func (f *Frame) SetPosition(p mgl64.Vec3) {
	f.pos, f.oldPos, f.interpPos = p, p, p
}

// SetOrient is SetPosition for orientation.
func (f *Frame) SetOrient(m mgl64.Mat3) {
	f.orient, f.oldOrient, f.interpOrient = m, m, m
}

// Move records the current transform as the previous tick's and sets a new one.
func (f *Frame) Move(p mgl64.Vec3, m mgl64.Mat3) {
	f.oldPos, f.oldOrient = f.pos, f.orient
	f.pos, f.orient = p, m
}

// ClearMovement makes the previous tick's transform equal the current one so
// interpolation yields the current transform for any alpha.
func (f *Frame) ClearMovement() {
	f.oldPos, f.oldOrient = f.pos, f.orient
}

// UpdateInterpTransform blends previous and current transforms for f and its
// whole subtree. alpha 0 is the previous tick, 1 the current one.
func (f *Frame) UpdateInterpTransform(alpha float64) {
	stack := []*Frame{f}
	for len(stack) > 0 {
		n := len(stack) - 1
		fr := stack[n]
		stack = stack[:n]

		fr.interpPos = lerp(fr.oldPos, fr.pos, alpha)
		fr.interpOrient = slerp(fr.oldOrient, fr.orient, alpha)
		stack = append(stack, fr.children...)
	}
}

func lerp(a, b mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(alpha))
}

func slerp(a, b mgl64.Mat3, alpha float64) mgl64.Mat3 {
	if alpha >= 1 || a.ApproxEqual(b) {
		return b
	}
	if alpha <= 0 {
		return a
	}
	qa := mgl64.Mat4ToQuat(a.Mat4())
	qb := mgl64.Mat4ToQuat(b.Mat4())
	return mgl64.QuatSlerp(qa, qb, alpha).Normalize().Mat4().Mat3()
}

// rootTransform accumulates f's transform up to the root of its tree.
func (f *Frame) rootTransform(interp bool) (mgl64.Vec3, mgl64.Mat3) {
	pos, orient := f.pos, f.orient
	if interp {
		pos, orient = f.interpPos, f.interpOrient
	}
	for p := f.parent; p != nil; p = p.parent {
		pp, po := p.pos, p.orient
		if interp {
			pp, po = p.interpPos, p.interpOrient
		}
		pos = pp.Add(po.Mul3x1(pos))
		orient = po.Mul3(orient)
	}
	return pos, orient
}

func (f *Frame) positionRelTo(to *Frame, interp bool) mgl64.Vec3 {
	fp, _ := f.rootTransform(interp)
	tp, to3 := to.rootTransform(interp)
	return to3.Transpose().Mul3x1(fp.Sub(tp))
}

func (f *Frame) orientRelTo(to *Frame, interp bool) mgl64.Mat3 {
	_, fo := f.rootTransform(interp)
	_, to3 := to.rootTransform(interp)
	return to3.Transpose().Mul3(fo)
}

// PositionRelTo returns f's origin expressed in to's coordinates.
func (f *Frame) PositionRelTo(to *Frame) mgl64.Vec3 {
	return f.positionRelTo(to, false)
}

// OrientRelTo returns f's axes expressed in to's coordinates.
func (f *Frame) OrientRelTo(to *Frame) mgl64.Mat3 {
	return f.orientRelTo(to, false)
}

func (f *Frame) InterpPositionRelTo(to *Frame) mgl64.Vec3 {
	return f.positionRelTo(to, true)
}

func (f *Frame) InterpOrientRelTo(to *Frame) mgl64.Mat3 {
	return f.orientRelTo(to, true)
}
