// Package engine implements the permission rules of the simulation: how a
// ciphertext record acquires permanent grants, transient grants, and the
// public flag, and how a decryption request is evaluated against them.
//
// Every operation is a deterministic function of the current record and its
// arguments: the engine holds no record state itself and never mutates its
// inputs. Mutating operations return an updated copy of the record together
// with the audit events they produced; callers (the simulator service) own
// where those land.
//
// The access model is monotonic. No operation revokes a grant, clears a
// transient set, or resets the public flag: the simulated platform has no
// transaction boundary, so a "transient" grant simply persists for the
// session.
package engine
