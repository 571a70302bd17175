//go:build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"

	"lumen/display"
	"lumen/internal/buildinfo"
	"lumen/tracer"
)

func main() {
	var (
		scenePath string
		width     int
		strategy  string
		rays      int
		outPath   string
		headless  bool
		workers   int
	)
	flag.StringVar(&scenePath, "scene", "", "Scene description file (TOML).")
	flag.IntVar(&width, "width", 1024, "Canvas width in pixels; height follows the camera ratio.")
	flag.StringVar(&strategy, "strategy", "normal", "Pixel sampling: normal or random.")
	flag.IntVar(&rays, "rays", 50, "Rays per pixel for the random strategy.")
	flag.StringVar(&outPath, "out", "", "Write the result to a PNG file.")
	flag.BoolVar(&headless, "headless", false, "Render without a window (implies -out).")
	flag.IntVar(&workers, "workers", 0, "Render goroutines (0 = all CPUs).")
	flag.Parse()

	if err := run(scenePath, width, strategy, rays, outPath, headless, workers); err != nil {
		if err == context.Canceled {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scenePath string, width int, strategyName string, rays int, outPath string, headless bool, workers int) error {
	if scenePath == "" {
		return fmt.Errorf("missing -scene file")
	}
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("read scene %q: %w", scenePath, err)
	}
	scene, err := tracer.ParseScene(data)
	if err != nil {
		return err
	}
	strategy, err := tracer.ParseStrategy(strategyName, rays)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r, err := tracer.Render(ctx, scene, tracer.Options{Width: width, Strategy: strategy, Workers: workers})
	if err != nil {
		return err
	}

	if headless || outPath != "" {
		if outPath == "" {
			outPath = "out.png"
		}
		return renderToFile(r, outPath)
	}
	return renderToWindow(r, cancel)
}

func renderToFile(r *tracer.Run, outPath string) error {
	canvas := display.NewImageCanvas(r.Width(), r.Height())
	bar := progressbar.NewOptions(r.Width()*r.Height(),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
	for p := range r.Pixels() {
		if err := canvas.Draw(p); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	if err := r.Wait(); err != nil {
		return err
	}
	_ = bar.Clear()

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	defer f.Close()
	if err := canvas.WritePNG(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", outPath, r.Width(), r.Height())
	return nil
}

func renderToWindow(r *tracer.Run, cancel context.CancelFunc) error {
	fb := display.NewFramebuffer(r.Width(), r.Height())
	go func() {
		for p := range r.Pixels() {
			_ = fb.Draw(p)
		}
	}()
	if err := display.RunWindow("Lumen ("+buildinfo.Short()+")", fb); err != nil {
		return err
	}
	// Closing the window abandons an unfinished render.
	cancel()
	if err := r.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
