//go:build js && wasm

// The web target exposes the progressive renderer to JavaScript.
//
// Build with GOOS=js GOARCH=wasm. The page gets one global:
//
//	lumenNewRenderer(sceneTOML, {canvasWidth, rayNumber, strategy})
//
// which returns {width, height, next(), imageData(), close()}, or an Error
// value when the scene does not parse. next() renders one pixel and returns
// false when done; imageData() copies the RGBA buffer into a fresh
// Uint8ClampedArray.
package main

import (
	"syscall/js"

	"lumen/internal/webbridge"
)

func main() {
	js.Global().Set("lumenNewRenderer", js.FuncOf(newRenderer))
	// Keep the Go runtime alive for the callbacks.
	select {}
}

func newRenderer(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return throw("lumenNewRenderer: missing scene description")
	}
	sceneTOML := []byte(args[0].String())

	var cfg webbridge.Config
	if len(args) > 1 && args[1].Type() == js.TypeObject {
		cfg.CanvasWidth = intField(args[1], "canvasWidth")
		cfg.RayNumber = intField(args[1], "rayNumber")
		if v := args[1].Get("strategy"); v.Type() == js.TypeString {
			cfg.Strategy = v.String()
		}
	}

	r, err := webbridge.NewRenderer(sceneTOML, cfg)
	if err != nil {
		return throw(err.Error())
	}

	obj := js.Global().Get("Object").New()
	obj.Set("width", r.Width())
	obj.Set("height", r.Height())
	obj.Set("next", js.FuncOf(func(js.Value, []js.Value) any {
		if r.Next() {
			return true
		}
		if err := r.Err(); err != nil {
			js.Global().Get("console").Call("warn", err.Error())
		}
		return false
	}))
	obj.Set("imageData", js.FuncOf(func(js.Value, []js.Value) any {
		buf := r.Buffer()
		arr := js.Global().Get("Uint8ClampedArray").New(len(buf))
		js.CopyBytesToJS(arr, buf)
		return arr
	}))
	obj.Set("close", js.FuncOf(func(js.Value, []js.Value) any {
		r.Close()
		return js.Undefined()
	}))
	return obj
}

func intField(v js.Value, name string) int {
	f := v.Get(name)
	if f.Type() != js.TypeNumber {
		return 0
	}
	return f.Int()
}

func throw(msg string) any {
	return js.Global().Get("Error").New(msg)
}
