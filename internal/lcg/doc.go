// Package lcg implements the linear congruential recurrence
// X_{n+1} = (a*X_n + c) mod m and detection of its orbit structure.
//
// [Generate] walks the trajectory from a seed, recording each residue the
// first time it appears, and stops at the first repeat. The result splits
// into a tail (steps before the cycle is entered) and the cycle itself:
//
//	traj, err := lcg.Generate(lcg.Params{Modulus: 10, Multiplier: 7, Increment: 7})
//	// traj.Cycle.TailLength, traj.Cycle.Length
//
// [DetectCycle] finds the same tail/cycle split in constant memory, for
// moduli whose trajectories are too large to record.
//
// The engine executes the recurrence for any integer multiplier, increment
// and seed; it does not judge generator quality. Negative inputs are folded
// into [0, m) so trajectory values are always valid residues.
package lcg
