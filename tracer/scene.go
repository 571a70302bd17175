package tracer

// Object is a renderable scene entity: a shape with a surface texture and
// optional effects.
type Object struct {
	Shape   Shape
	Texture Texture
	Effects Effects
}

func (o Object) colorAt(p Vec3) Color {
	if o.Texture == nil {
		return NewColor(0.8, 0.8, 0.8)
	}
	return o.Texture.ColorAt(p)
}

// SceneOptions are global rendering parameters of a scene.
type SceneOptions struct {
	// WorldColor is returned for rays that miss every object.
	WorldColor Color
	// AmbientLight, when set, adds uniform illumination to every surface.
	AmbientLight *Color
	// MaxDepth bounds recursive ray continuation through transparent
	// objects. Zero or negative falls back to DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the recursion bound used when a scene does not set one.
const DefaultMaxDepth = 4

func (o SceneOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Scene is a complete description of a renderable world.
//
// A Scene is never mutated by rendering and may back concurrent runs.
type Scene struct {
	Camera  Camera
	Lights  []Light
	Objects []Object
	Options SceneOptions
}
