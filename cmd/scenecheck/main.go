// scenecheck parses scene description files and reports what they contain.
// It exits non-zero if any file fails to parse.
package main

import (
	"flag"
	"fmt"
	"os"

	"lumen/tracer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: scenecheck scene.toml [scene.toml ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := check(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scene, err := tracer.ParseScene(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok, %d objects, %d lights, ratio %.3f\n",
		path, len(scene.Objects), len(scene.Lights), scene.Camera.SizeRatio())
	return nil
}
