package ciworkflow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoWorkflowIsValid(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", ".github", "workflows", "ci.yml"))
	if err != nil {
		t.Fatalf("read workflow: %v", err)
	}
	w, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := w.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	native, ok := w.Jobs["native"]
	if !ok {
		t.Fatalf("missing native job")
	}
	if native.Strategy == nil || len(native.Strategy.Matrix["os"]) != 3 {
		t.Fatalf("native matrix=%+v, want 3 operating systems", native.Strategy)
	}
	if _, ok := w.Jobs["wasm"]; !ok {
		t.Fatalf("missing wasm job")
	}
}

func TestTriggerSpellings(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		push bool
	}{
		{"scalar", "on: push\njobs: {}", true},
		{"list", "on: [push, pull_request]\njobs: {}", true},
		{"map", "on:\n  push:\n    branches: [main]\njobs: {}", true},
		{"map empty filter", "on:\n  push:\njobs: {}", true},
		{"other event", "on: release\njobs: {}", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := Parse([]byte(tc.doc))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if w.On.Push != tc.push {
				t.Fatalf("Push=%v, want %v", w.On.Push, tc.push)
			}
		})
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no push trigger", `
on: release
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - run: make`},
		{"no jobs", `
on: push
jobs: {}`},
		{"missing runs-on", `
on: push
jobs:
  build:
    steps:
      - run: make`},
		{"no steps", `
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps: []`},
		{"uses and run together", `
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
        run: make`},
		{"neither uses nor run", `
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - name: noop`},
		{"undeclared matrix key in if", `
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        os: [ubuntu-latest]
    steps:
      - run: make
        if: matrix.arch == 'arm64'`},
		{"matrix ref without matrix", `
on: push
jobs:
  build:
    runs-on: ${{ matrix.os }}
    steps:
      - run: make`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := Parse([]byte(tc.doc))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if err := w.Validate(); err == nil {
				t.Fatalf("Validate accepted an invalid workflow")
			}
		})
	}
}

func TestParseBadDocument(t *testing.T) {
	if _, err := Parse([]byte("on: [unclosed")); err == nil {
		t.Fatalf("expected parse error")
	}
}
