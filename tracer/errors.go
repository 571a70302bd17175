package tracer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLight reports a scene without any light source.
	ErrNoLight = errors.New("tracer: no light in scene")
	// ErrNoCamera reports a scene without a camera.
	ErrNoCamera = errors.New("tracer: no camera in scene")
	// ErrParse wraps scene description parsing failures.
	ErrParse = errors.New("tracer: scene parse error")
)

// NormalError reports a shape that could not produce a surface normal at a
// lit point.
type NormalError struct {
	Object int // index of the object in the scene
}

func (e *NormalError) Error() string {
	return fmt.Sprintf("tracer: no surface normal for object at index %d", e.Object)
}
