// Package sim implements the chase game simulation: maze generation,
// entity movement and the per-tick state machine.
//
// The package has no I/O, no timers and no rendering. All randomness comes
// from a caller-supplied Rand so that a seeded source reproduces a game
// exactly. Precondition violations (bad dimensions, out-of-bounds positions,
// unknown directions) are programmer errors and panic.
package sim
