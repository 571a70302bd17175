package tracer

// Phong adds a specular highlight to a surface.
type Phong struct {
	Size int     // specular exponent
	Lum  float64 // highlight intensity, 0..1
}

// Transparency lets a fraction of the light behind an object pass through.
type Transparency struct {
	Alpha float64 // transmitted fraction, 0..1
}

// Effects are optional surface effects of an object. A nil field disables
// the corresponding effect.
type Effects struct {
	Phong        *Phong
	Transparency *Transparency
}
