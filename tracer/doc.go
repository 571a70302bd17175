// Package tracer is a progressive software ray tracer.
//
// A Scene (camera, lights, objects) is rendered pixel by pixel into any
// consumer: Render starts a worker pool and hands back a Run whose pixels can
// be drained through a channel or pulled one at a time, so hosts that poll
// (a browser event loop) and hosts that stream (a desktop window) share the
// same engine.
//
// Pipeline (fixed):
//
//	Scene → primary ray per sample → nearest collision → shading
//	(diffuse, Phong specular, shadows, transparency, ambient) → Pixel.
//
// The tracer is software-only, uses float64 math throughout, and does not
// mutate the scene while rendering; one Scene value may back several
// concurrent runs.
package tracer
