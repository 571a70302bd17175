// Package ciworkflow parses and validates the declarative CI workflow
// definitions shipped under .github/workflows.
//
// It checks the properties the project relies on: a push trigger, at least
// one job, well-formed step sequences (each step runs a command or uses an
// action, never both), and matrix expressions that only reference declared
// matrix keys. Execution semantics (fan-out, fail-fast, retries) belong to
// the external CI platform and are deliberately not modeled.
package ciworkflow

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Workflow is a parsed workflow definition.
type Workflow struct {
	Name string         `yaml:"name"`
	On   Triggers       `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Triggers records which events start the workflow.
type Triggers struct {
	Push         bool
	PushBranches []string
}

// UnmarshalYAML accepts the three trigger spellings: a bare event name, a
// list of event names, or a mapping with per-event filters.
func (t *Triggers) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Push = value.Value == "push"
		return nil
	case yaml.SequenceNode:
		var events []string
		if err := value.Decode(&events); err != nil {
			return err
		}
		for _, e := range events {
			if e == "push" {
				t.Push = true
			}
		}
		return nil
	case yaml.MappingNode:
		var m map[string]*eventFilter
		if err := value.Decode(&m); err != nil {
			return err
		}
		if f, ok := m["push"]; ok {
			t.Push = true
			if f != nil {
				t.PushBranches = f.Branches
			}
		}
		return nil
	default:
		return fmt.Errorf("ciworkflow: unsupported trigger node kind %d", value.Kind)
	}
}

type eventFilter struct {
	Branches []string `yaml:"branches"`
}

// Job is one unit of work scheduled by the CI platform.
type Job struct {
	RunsOn   string    `yaml:"runs-on"`
	Strategy *Strategy `yaml:"strategy"`
	Steps    []Step    `yaml:"steps"`
}

// Strategy holds the job build matrix.
type Strategy struct {
	Matrix map[string][]string `yaml:"matrix"`
}

// Step is one sequential command or action invocation inside a job.
type Step struct {
	Name string            `yaml:"name"`
	Uses string            `yaml:"uses"`
	Run  string            `yaml:"run"`
	If   string            `yaml:"if"`
	With map[string]string `yaml:"with"`
	Env  map[string]string `yaml:"env"`
}

// Parse decodes a workflow document. It does not validate; call Validate.
func Parse(data []byte) (*Workflow, error) {
	var w Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("ciworkflow: parse: %w", err)
	}
	return &w, nil
}

var matrixRef = regexp.MustCompile(`matrix\.([A-Za-z_][A-Za-z0-9_-]*)`)

// Validate checks the workflow for the schema properties the project
// depends on.
func (w *Workflow) Validate() error {
	if !w.On.Push {
		return fmt.Errorf("ciworkflow: workflow %q does not trigger on push", w.Name)
	}
	if len(w.Jobs) == 0 {
		return fmt.Errorf("ciworkflow: workflow %q has no jobs", w.Name)
	}
	for name, job := range w.Jobs {
		if err := job.validate(); err != nil {
			return fmt.Errorf("ciworkflow: job %q: %w", name, err)
		}
	}
	return nil
}

func (j Job) validate() error {
	if j.RunsOn == "" {
		return fmt.Errorf("missing runs-on")
	}
	if len(j.Steps) == 0 {
		return fmt.Errorf("no steps")
	}
	if err := j.checkMatrixRefs(j.RunsOn); err != nil {
		return fmt.Errorf("runs-on: %w", err)
	}
	for i, step := range j.Steps {
		if (step.Uses == "") == (step.Run == "") {
			return fmt.Errorf("step %d: exactly one of uses/run required", i)
		}
		if step.If != "" {
			if err := j.checkMatrixRefs(step.If); err != nil {
				return fmt.Errorf("step %d: if: %w", i, err)
			}
		}
	}
	return nil
}

// checkMatrixRefs verifies that every matrix.<key> in expr is declared in
// the job's matrix.
func (j Job) checkMatrixRefs(expr string) error {
	for _, m := range matrixRef.FindAllStringSubmatch(expr, -1) {
		key := m[1]
		if j.Strategy == nil || j.Strategy.Matrix == nil {
			return fmt.Errorf("references matrix.%s but the job has no matrix", key)
		}
		if _, ok := j.Strategy.Matrix[key]; !ok {
			return fmt.Errorf("references undeclared matrix key %q", key)
		}
	}
	return nil
}
