package tracer

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Scene description document structure. Vectors and colors are written as
// three-element arrays.
type sceneFile struct {
	Camera  *cameraDef  `toml:"camera"`
	Lights  []lightDef  `toml:"lights"`
	Objects []objectDef `toml:"objects"`
	Config  *configDef  `toml:"config"`
}

type cameraDef struct {
	Type     string    `toml:"type"`
	Position []float64 `toml:"position"`
	Target   []float64 `toml:"target"`
	Width    float64   `toml:"width"`
	Height   float64   `toml:"height"`
	Angle    float64   `toml:"angle"`
}

type lightDef struct {
	Type     string    `toml:"type"`
	Position []float64 `toml:"position"`
	Color    []float64 `toml:"color"`
}

type objectDef struct {
	Shape  string    `toml:"shape"`
	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Point  []float64 `toml:"point"`
	Normal []float64 `toml:"normal"`

	Texture   string    `toml:"texture"`
	Color     []float64 `toml:"color"`
	Primary   []float64 `toml:"primary"`
	Secondary []float64 `toml:"secondary"`
	CheckSize float64   `toml:"check_size"`

	Phong        *phongDef        `toml:"phong"`
	Transparency *transparencyDef `toml:"transparency"`
}

type phongDef struct {
	Size int     `toml:"size"`
	Lum  float64 `toml:"lum"`
}

type transparencyDef struct {
	Alpha float64 `toml:"alpha"`
}

type configDef struct {
	WorldColor   []float64 `toml:"world_color"`
	AmbientLight []float64 `toml:"ambient_light"`
	MaxDepth     int       `toml:"max_depth"`
}

// ParseScene builds a Scene from a TOML scene description.
func ParseScene(data []byte) (*Scene, error) {
	var file sceneFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	camera, err := file.Camera.build()
	if err != nil {
		return nil, err
	}

	scene := &Scene{Camera: camera}
	for i, def := range file.Lights {
		light, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("%w: lights[%d]: %v", ErrParse, i, err)
		}
		scene.Lights = append(scene.Lights, light)
	}
	for i, def := range file.Objects {
		object, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("%w: objects[%d]: %v", ErrParse, i, err)
		}
		scene.Objects = append(scene.Objects, object)
	}
	if cfg := file.Config; cfg != nil {
		if cfg.WorldColor != nil {
			c, err := colorOf(cfg.WorldColor)
			if err != nil {
				return nil, fmt.Errorf("%w: config: world_color: %v", ErrParse, err)
			}
			scene.Options.WorldColor = c
		}
		if cfg.AmbientLight != nil {
			c, err := colorOf(cfg.AmbientLight)
			if err != nil {
				return nil, fmt.Errorf("%w: config: ambient_light: %v", ErrParse, err)
			}
			scene.Options.AmbientLight = &c
		}
		scene.Options.MaxDepth = cfg.MaxDepth
	}
	return scene, nil
}

func (d *cameraDef) build() (Camera, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: missing camera", ErrParse)
	}
	position, err := vectorOf(d.Position)
	if err != nil {
		return nil, fmt.Errorf("%w: camera: position: %v", ErrParse, err)
	}
	target, err := vectorOf(d.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: camera: target: %v", ErrParse, err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: camera: screen size must be positive", ErrParse)
	}
	switch d.Type {
	case "", "perspective":
		if d.Angle <= 0 {
			return nil, fmt.Errorf("%w: camera: angle must be positive", ErrParse)
		}
		return NewPerspectiveCamera(position, target, d.Width, d.Height, d.Angle), nil
	case "orthogonal":
		return NewOrthogonalCamera(position, target, d.Width, d.Height), nil
	default:
		return nil, fmt.Errorf("%w: camera: unknown type %q", ErrParse, d.Type)
	}
}

func (d lightDef) build() (Light, error) {
	switch d.Type {
	case "", "point":
	default:
		return nil, fmt.Errorf("unknown type %q", d.Type)
	}
	position, err := vectorOf(d.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %v", err)
	}
	light := NewPointLight(position)
	if d.Color != nil {
		c, err := colorOf(d.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %v", err)
		}
		light.Color = c
	}
	return light, nil
}

func (d objectDef) build() (Object, error) {
	var object Object
	switch d.Shape {
	case "sphere":
		center, err := vectorOf(d.Center)
		if err != nil {
			return Object{}, fmt.Errorf("center: %v", err)
		}
		if d.Radius <= 0 {
			return Object{}, fmt.Errorf("radius must be positive, got %v", d.Radius)
		}
		object.Shape = Sphere{Center: center, Radius: d.Radius}
	case "plane":
		point, err := vectorOf(d.Point)
		if err != nil {
			return Object{}, fmt.Errorf("point: %v", err)
		}
		normal, err := vectorOf(d.Normal)
		if err != nil {
			return Object{}, fmt.Errorf("normal: %v", err)
		}
		if Normalize(normal) == (Vec3{}) {
			return Object{}, fmt.Errorf("normal must be non-zero")
		}
		object.Shape = Plane{Point: point, Normal: normal}
	default:
		return Object{}, fmt.Errorf("unknown shape %q", d.Shape)
	}

	switch d.Texture {
	case "", "plain":
		color := NewColor(0.8, 0.8, 0.8)
		if d.Color != nil {
			c, err := colorOf(d.Color)
			if err != nil {
				return Object{}, fmt.Errorf("color: %v", err)
			}
			color = c
		}
		object.Texture = PlainColor{Color: color}
	case "checked":
		pattern := DefaultCheckedPattern()
		if d.Primary != nil {
			c, err := colorOf(d.Primary)
			if err != nil {
				return Object{}, fmt.Errorf("primary: %v", err)
			}
			pattern.Primary = c
		}
		if d.Secondary != nil {
			c, err := colorOf(d.Secondary)
			if err != nil {
				return Object{}, fmt.Errorf("secondary: %v", err)
			}
			pattern.Secondary = c
		}
		if d.CheckSize > 0 {
			pattern.Size = d.CheckSize
		}
		object.Texture = pattern
	default:
		return Object{}, fmt.Errorf("unknown texture %q", d.Texture)
	}

	if d.Phong != nil {
		object.Effects.Phong = &Phong{Size: d.Phong.Size, Lum: d.Phong.Lum}
	}
	if d.Transparency != nil {
		object.Effects.Transparency = &Transparency{Alpha: d.Transparency.Alpha}
	}
	return object, nil
}

func vectorOf(vals []float64) (Vec3, error) {
	if len(vals) != 3 {
		return Vec3{}, fmt.Errorf("want 3 components, got %d", len(vals))
	}
	return V3(vals[0], vals[1], vals[2]), nil
}

func colorOf(vals []float64) (Color, error) {
	if len(vals) != 3 {
		return Color{}, fmt.Errorf("want 3 channels, got %d", len(vals))
	}
	return NewColor(vals[0], vals[1], vals[2]), nil
}
