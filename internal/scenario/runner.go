package scenario

import (
	"context"
	"fmt"

	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/service"
	"github.com/snazarov/aclsim/models"
)

// Result reports what applying one step did.
type Result struct {
	Step Step

	// RecordID is the id of the ciphertext the step touched (the newly
	// created one for create steps).
	RecordID string

	// Outcome is set for decrypt steps, empty otherwise.
	Outcome models.Outcome
}

// Runner applies a walkthrough step by step through the Simulator. It keeps
// the alias→record-id bindings established by create steps.
type Runner struct {
	sim service.Simulator
	wt  Walkthrough
	ids map[string]string
	pos int

	logger *logger.Logger
}

// NewRunner prepares a runner positioned before the first step. The
// walkthrough is expected to be validated (Load and Default guarantee it).
func NewRunner(wt Walkthrough, sim service.Simulator, logger *logger.Logger) *Runner {
	return &Runner{
		sim:    sim,
		wt:     wt,
		ids:    make(map[string]string),
		logger: logger,
	}
}

// Name returns the walkthrough's display name.
func (r *Runner) Name() string { return r.wt.Name }

// Current returns the next step to apply, or false when the walkthrough is
// finished.
func (r *Runner) Current() (Step, bool) {
	if r.Done() {
		return Step{}, false
	}
	return r.wt.Steps[r.pos], true
}

// Progress returns the number of applied steps and the total.
func (r *Runner) Progress() (applied, total int) {
	return r.pos, len(r.wt.Steps)
}

// Done reports whether every step has been applied.
func (r *Runner) Done() bool {
	return r.pos >= len(r.wt.Steps)
}

// Advance applies the current step and moves past it.
func (r *Runner) Advance(ctx context.Context) (Result, error) {
	step, ok := r.Current()
	if !ok {
		return Result{}, ErrWalkthroughDone
	}

	res := Result{Step: step}
	switch step.Action {
	case ActionCreate:
		id := r.sim.CreateCiphertext(ctx, step.Actor, step.Payload)
		r.ids[step.Target] = id
		res.RecordID = id
	case ActionGrantPermanent:
		id, err := r.resolve(step.Target)
		if err != nil {
			return Result{}, err
		}
		r.sim.GrantPermanent(ctx, id, step.Actor)
		res.RecordID = id
	case ActionGrantTransient:
		id, err := r.resolve(step.Target)
		if err != nil {
			return Result{}, err
		}
		r.sim.GrantTransient(ctx, id, step.Actor)
		res.RecordID = id
	case ActionMakePublic:
		id, err := r.resolve(step.Target)
		if err != nil {
			return Result{}, err
		}
		r.sim.MakePublic(ctx, id)
		res.RecordID = id
	case ActionDecrypt:
		id, err := r.resolve(step.Target)
		if err != nil {
			return Result{}, err
		}
		res.RecordID = id
		res.Outcome = r.sim.AttemptDecrypt(ctx, id, step.Actor)
	default:
		return Result{}, fmt.Errorf("action %q: %w", step.Action, ErrUnknownAction)
	}

	r.pos++
	r.logger.Debug().
		Str("walkthrough", r.wt.Name).
		Str("step", step.Title).
		Int("position", r.pos).
		Msg("walkthrough step applied")
	return res, nil
}

func (r *Runner) resolve(alias string) (string, error) {
	id, ok := r.ids[alias]
	if !ok {
		return "", fmt.Errorf("alias %q: %w", alias, ErrUnknownAlias)
	}
	return id, nil
}
