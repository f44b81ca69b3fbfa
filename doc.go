// Package myersdiff implements the Myers O(ND) diff algorithm described in
// "An O(ND) Difference Algorithm and Its Variations" (Myers, 1986), along
// with the paper's linear-space divide-and-conquer refinement.
//
// Two comparators are provided:
//   - The linear comparator (the default) recurses on the middle snake of
//     each sub-rectangle, using O(N+M) space regardless of input size.
//   - The greedy comparator runs a single forward search and reconstructs
//     the trace from the recorded V-snapshots, using O(D) snapshots over
//     an O(ND)-sized array.
//
// Both comparators return a Results holding the same Snake-record shape,
// so callers can switch between them without changing how they consume
// the output.
package myersdiff
