package scene

import "slices"

// Space owns the frame tree and the flat list of bodies in it.
type Space struct {
	root   *Frame
	bodies []*Body
}

func NewSpace() *Space {
	return &Space{root: NewFrame(nil, "root", false)}
}

func (s *Space) Root() *Frame { return s.root }

// Bodies returns the live body list; callers must not modify it.
func (s *Space) Bodies() []*Body { return s.bodies }

// AddBody places b in frame f. A nil frame means the root frame.
func (s *Space) AddBody(b *Body, f *Frame) {
	if f == nil {
		f = s.root
	}
	b.frame = f
	s.bodies = append(s.bodies, b)
}

func (s *Space) RemoveBody(b *Body) bool {
	i := slices.Index(s.bodies, b)
	if i < 0 {
		return false
	}
	s.bodies = slices.Delete(s.bodies, i, i+1)
	return true
}

func (s *Space) FindBody(name string) *Body {
	for _, b := range s.bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// UpdateInterpTransforms refreshes render-time interpolation for every frame
// and body.
func (s *Space) UpdateInterpTransforms(alpha float64) {
	s.root.UpdateInterpTransform(alpha)
	for _, b := range s.bodies {
		b.UpdateInterpTransform(alpha)
	}
}
