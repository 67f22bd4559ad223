// Package camera decides, once per frame, which bodies are drawn, as what,
// in which order, and how much each is shadowed by eclipsing bodies.
package camera

import (
	"math"
	"slices"

	"orrery/internal/galaxy"
	"orrery/internal/graphics"
	"orrery/internal/profiling"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// A body rendering smaller than this many pixels is not drawn at all.
	ObjectHiddenPixelThreshold = 2.0

	// A terrain body rendering smaller than this many pixels is drawn as a billboard.
	BillboardPixelThreshold = 8.0

	// Minimum billboard diameter so distant planets stay faintly visible.
	MinBillboardSize = 1.0
)

// FrameStats counts what Update did with the bodies of the last frame.
type FrameStats struct {
	Considered int
	Excluded   int // FlagDrawExclude
	Culled     int // outside the frustum
	Hidden     int // too small to draw
	Full       int
	Billboards int
	Lights     int
}

type Camera struct {
	ctx   *Context
	space *scene.Space

	lights         []LightSource
	rendererLights []graphics.Light
	sortedBodies   []BodyAttrs
	billboards     []graphics.Billboard
	stats          FrameStats
}

func New(ctx *Context, space *scene.Space) *Camera {
	return &Camera{
		ctx:          ctx,
		space:        space,
		lights:       make([]LightSource, 0, MaxLights),
		sortedBodies: make([]BodyAttrs, 0, 64),
	}
}

func (c *Camera) Context() *Context { return c.ctx }

// Lights returns the active lights of the current frame. Valid until the
// next Update.
func (c *Camera) Lights() []LightSource { return c.lights }

// DrawList returns the sorted draw list of the current frame. Valid until
// the next Update.
func (c *Camera) DrawList() []BodyAttrs { return c.sortedBodies }

func (c *Camera) Stats() FrameStats { return c.stats }

// Update picks the frame's lights, then evaluates every body and rebuilds
// the sorted draw list. It must run between Context.BeginFrame and EndFrame.
func (c *Camera) Update() {
	defer profiling.Track("camera.Update")()

	camFrame := c.ctx.TempFrame()
	c.updateLights(camFrame)

	c.stats = FrameStats{Lights: len(c.lights)}
	c.sortedBodies = c.sortedBodies[:0]

	for _, b := range c.space.Bodies() {
		c.stats.Considered++

		// If the body wishes to be excluded from the draw, skip it.
		if b.HasFlag(scene.FlagDrawExclude) {
			c.stats.Excluded++
			continue
		}

		attrs := BodyAttrs{
			Body:      b,
			BodyFlags: b.Flags,
		}

		f := b.Frame()
		attrs.ViewTransform = f.InterpOrientRelTo(camFrame).Mat4()
		attrs.ViewTransform.SetCol(3, f.InterpPositionRelTo(camFrame).Vec4(1))
		attrs.ViewCoords = attrs.ViewTransform.Mul4x1(b.InterpPosition().Vec4(1)).Vec3()

		// cull off-screen objects
		if !c.ctx.Frustum().TestPointInfinite(attrs.ViewCoords, b.ClipRadius) {
			c.stats.Culled++
			continue
		}

		attrs.CamDist = attrs.ViewCoords.Len()
		attrs.PixSize = c.pixelSize(b.PhysRadius, attrs.CamDist)

		if b.Kind.IsTerrain() {
			// terrain bodies are visible from far away even without discernible features
			if attrs.PixSize < BillboardPixelThreshold {
				c.makeBillboard(&attrs)
			}
		} else if attrs.PixSize < ObjectHiddenPixelThreshold {
			c.stats.Hidden++
			continue
		}

		if attrs.Billboard {
			c.stats.Billboards++
		} else {
			c.stats.Full++
		}
		c.sortedBodies = append(c.sortedBodies, attrs)
	}

	slices.SortStableFunc(c.sortedBodies, compareAttrs)
}

// pixelSize approximates the on-screen diameter of a sphere in pixels.
func (c *Camera) pixelSize(radius, dist float64) float64 {
	if dist <= 0 {
		// the camera is inside the body
		return math.MaxFloat64
	}
	return c.ctx.Height() * 2.0 * radius / (dist * c.ctx.FovFactor())
}

func (c *Camera) makeBillboard(attrs *BodyAttrs) {
	b := attrs.Body
	attrs.Billboard = true

	if pos, ok := c.ctx.Frustum().TranslatePoint(attrs.ViewCoords); ok {
		attrs.BillboardPos = mgl32.Vec3{float32(pos[0]), float32(pos[1]), float32(pos[2])}
	}
	attrs.BillboardSize = float32(max(MinBillboardSize, attrs.PixSize))

	var col graphics.Color
	switch {
	case b.Kind == scene.KindStar && b.SystemBody != nil:
		col = galaxy.StarRealColor(b.SystemBody.Type)
	case b.Kind == scene.KindPlanet && b.SystemBody != nil:
		col = b.SystemBody.Albedo()
	default:
		col = graphics.White
	}

	// the first light is the system's main star, unless this is the star itself
	if len(c.lights) > 0 && b.Kind != scene.KindStar {
		col = col.Mul(c.lights[0].Light.Diffuse)
	}

	// billboards are hard enough to see already; never fade them
	attrs.BillboardColor = col.WithAlpha(255)
}

// Draw hands the sorted list to r: full bodies first in order, then every
// billboard in one batch. excludeBody (may be nil) is skipped, typically the
// body the camera is attached to.
func (c *Camera) Draw(r Renderer, excludeBody *scene.Body) {
	defer profiling.Track("camera.Draw")()

	r.ClearScreen()

	c.rendererLights = c.rendererLights[:0]
	for _, ls := range c.lights {
		c.rendererLights = append(c.rendererLights, ls.Light)
	}
	r.SetLights(c.rendererLights)

	c.billboards = c.billboards[:0]
	for i := range c.sortedBodies {
		attrs := &c.sortedBodies[i]

		if attrs.Body == excludeBody {
			continue
		}

		if attrs.Billboard {
			c.billboards = append(c.billboards, graphics.Billboard{
				Pos:   attrs.BillboardPos,
				Size:  attrs.BillboardSize,
				Color: attrs.BillboardColor,
			})
		} else {
			r.RenderBody(c, attrs.Body, attrs.ViewCoords, attrs.ViewTransform)
		}
	}

	if len(c.billboards) > 0 {
		r.DrawBillboards(c.billboards)
	}
}
