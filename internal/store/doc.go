// Package store holds the in-memory session state of the simulation: the
// set of ciphertext records and the rolling event log.
//
// The store is deliberately dumb. It never interprets permissions and is
// mutated only by the simulator service, which is the single writer; there
// is no locking because only one operation is ever in flight. Nothing here
// survives the process: records live until the session ends and the event
// log keeps only the most recent entries.
package store
