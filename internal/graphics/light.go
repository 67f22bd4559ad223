package graphics

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// Light is what the backend binds before drawing. For directional lights
// Position holds the direction towards the light.
type Light struct {
	Type     LightType
	Position mgl32.Vec3
	Diffuse  Color
	Specular Color
}

func NewDirectionalLight(dir mgl32.Vec3, diffuse, specular Color) Light {
	return Light{
		Type:     LightDirectional,
		Position: dir,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// Billboard is one point of the batched marker draw. Pos is in window
// coordinates (pixels, depth in Z), Size is the point diameter in pixels.
type Billboard struct {
	Pos   mgl32.Vec3
	Size  float32
	Color Color
}
