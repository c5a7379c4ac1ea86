package models

// Outcome is the result of a decryption attempt. A denied attempt is a
// normal result value, not an error: callers branch on it without any
// error-handling machinery.
type Outcome string

const (
	OutcomeGranted Outcome = "granted"
	OutcomeDenied  Outcome = "denied"
)

// Granted reports whether the outcome authorizes the requester.
func (o Outcome) Granted() bool {
	return o == OutcomeGranted
}
