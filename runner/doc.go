// Package runner executes batches of belts/factory solve requests on a
// bounded worker pool, with per-case timeouts and one retry under a longer
// deadline.
//
// What
//
//   - Runner: ants-backed pool of Workers goroutines; each case runs its
//     tool's Solver under Config.Timeout and, on a deadline hit, once more
//     under Config.RetryTimeout.
//   - Built-in in-process solvers for "belts" and "factory"; Config.Tools
//     swaps any tool for an external command (stdin JSON in, stdout JSON
//     out, killed at the deadline). Register adds custom solvers.
//   - LoadCases reads a directory of {"tool","input"} JSON files in sorted
//     filename order; SampleCases is the built-in smoke pair.
//
// Concurrency
//
//	Cases are independent solves: each worker writes only its own
//	pre-allocated outcome slot, so a WaitGroup is the only synchronization.
//	Outcomes return sorted by case name regardless of completion order.
//
// Usage
//
//	r, err := runner.New(runner.DefaultConfig(), nil)
//	if err != nil {
//		return err
//	}
//	outcomes, err := r.Run(ctx, runner.SampleCases())
package runner
