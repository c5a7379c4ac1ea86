package scenario

import "errors"

// Validation and runner errors.
var (
	// ErrNoSteps indicates an empty walkthrough.
	ErrNoSteps = errors.New("walkthrough has no steps")
	// ErrMissingTarget indicates a step without a ciphertext alias.
	ErrMissingTarget = errors.New("step has no target alias")
	// ErrMissingActor indicates a step that needs an actor but names none.
	ErrMissingActor = errors.New("step has no actor")
	// ErrDuplicateAlias indicates a create step reusing an existing alias.
	ErrDuplicateAlias = errors.New("alias already defined")
	// ErrUnknownAlias indicates a step referencing an alias no earlier
	// create step defined.
	ErrUnknownAlias = errors.New("alias not defined by an earlier create step")
	// ErrUnknownAction indicates a step with an unrecognized action name.
	ErrUnknownAction = errors.New("unknown action")
	// ErrWalkthroughDone indicates an Advance call past the final step.
	ErrWalkthroughDone = errors.New("walkthrough is finished")
)
