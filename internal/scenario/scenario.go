// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

// Package scenario describes guided walkthroughs: scripted sequences of
// simulator operations with explanatory notes, shown step by step by the
// tutorial panel. Walkthroughs are plain YAML so alternative lessons can be
// supplied without recompiling; a default one is embedded.
package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultWalkthrough []byte

// Action names a simulator operation a step performs.
type Action string

const (
	ActionCreate         Action = "create"
	ActionGrantPermanent Action = "grant-permanent"
	ActionGrantTransient Action = "grant-transient"
	ActionMakePublic     Action = "make-public"
	ActionDecrypt        Action = "decrypt"
)

// Step is one walkthrough entry: the operation to perform and the note the
// tutorial panel shows alongside it.
type Step struct {
	// Title is the short heading shown for the step.
	Title string `yaml:"title"`

	// Note explains what the step demonstrates.
	Note string `yaml:"note"`

	// Action is the simulator operation to perform.
	Action Action `yaml:"action"`

	// Actor is the principal the action concerns: the owner for create,
	// the grantee for grants, the requester for decrypt. Unused for
	// make-public.
	Actor string `yaml:"actor,omitempty"`

	// Target is the walkthrough-local alias of the ciphertext the step
	// operates on. A create step defines the alias; later steps reference it.
	Target string `yaml:"target"`

	// Payload is the stand-in plaintext for create steps.
	Payload string `yaml:"payload,omitempty"`
}

// Walkthrough is a named sequence of steps.
type Walkthrough struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Default returns the embedded walkthrough reproducing the original demo
// flow: encrypt, fail as a stranger, transient-grant the gateway, decrypt,
// make public, decrypt as anyone.
func Default() Walkthrough {
	wt, err := parse(defaultWalkthrough)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("scenario: embedded walkthrough invalid: %v", err))
	}
	return wt
}

// Load reads and validates a walkthrough from a YAML file.
func Load(path string) (Walkthrough, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Walkthrough{}, fmt.Errorf("error reading walkthrough file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Walkthrough, error) {
	var wt Walkthrough
	if err := yaml.Unmarshal(data, &wt); err != nil {
		return Walkthrough{}, fmt.Errorf("error decoding walkthrough yaml: %w", err)
	}
	if err := wt.validate(); err != nil {
		return Walkthrough{}, err
	}
	return wt, nil
}

// validate checks structural soundness: every step names a known action,
// create steps define fresh aliases, and every other step references an
// alias defined by an earlier create.
func (wt Walkthrough) validate() error {
	if len(wt.Steps) == 0 {
		return ErrNoSteps
	}

	defined := make(map[string]struct{})
	for i, step := range wt.Steps {
		if step.Target == "" {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Title, ErrMissingTarget)
		}

		switch step.Action {
		case ActionCreate:
			if _, dup := defined[step.Target]; dup {
				return fmt.Errorf("step %d (%s): alias %q: %w", i+1, step.Title, step.Target, ErrDuplicateAlias)
			}
			if step.Actor == "" {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Title, ErrMissingActor)
			}
			defined[step.Target] = struct{}{}
		case ActionGrantPermanent, ActionGrantTransient, ActionDecrypt:
			if _, ok := defined[step.Target]; !ok {
				return fmt.Errorf("step %d (%s): alias %q: %w", i+1, step.Title, step.Target, ErrUnknownAlias)
			}
			if step.Actor == "" {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Title, ErrMissingActor)
			}
		case ActionMakePublic:
			if _, ok := defined[step.Target]; !ok {
				return fmt.Errorf("step %d (%s): alias %q: %w", i+1, step.Title, step.Target, ErrUnknownAlias)
			}
		default:
			return fmt.Errorf("step %d (%s): action %q: %w", i+1, step.Title, step.Action, ErrUnknownAction)
		}
	}

	return nil
}
