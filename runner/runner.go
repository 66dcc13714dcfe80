package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"

	"github.com/beltworks/beltflow/belts"
	"github.com/beltworks/beltflow/factory"
)

// Runner executes batches of solver cases on a bounded worker pool, with a
// per-case timeout and one retry under a longer deadline.
type Runner struct {
	cfg     Config
	log     *log.Logger
	solvers map[string]Solver
}

// New builds a Runner with the in-process belts and factory solvers
// registered, plus one exec-backed solver per configured tool command.
// A nil logger falls back to the logrus standard logger.
func New(cfg Config, logger *log.Logger) (*Runner, error) {
	cfg.normalize()
	if logger == nil {
		logger = log.StandardLogger()
	}

	r := &Runner{
		cfg: cfg,
		log: logger,
		solvers: map[string]Solver{
			"belts": func(_ context.Context, input []byte) ([]byte, error) {
				return belts.SolveRequest(input), nil
			},
			"factory": func(_ context.Context, input []byte) ([]byte, error) {
				return factory.PlanRequest(input), nil
			},
		},
	}

	for tool, command := range cfg.Tools {
		if strings.TrimSpace(command) == "" {
			return nil, fmt.Errorf("%w for tool %s", ErrEmptyCommand, tool)
		}
		r.solvers[tool] = execSolver(command)
	}

	return r, nil
}

// Register adds (or replaces) a solver under the given tool name.
func (r *Runner) Register(tool string, s Solver) error {
	if tool == "" {
		return ErrEmptyToolName
	}
	if s == nil {
		return ErrNilSolver
	}
	r.solvers[tool] = s

	return nil
}

// Run executes every case on the worker pool and returns the outcomes
// sorted by case name. Each worker writes only its own pre-allocated slot,
// so the completion WaitGroup is the only synchronization.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Outcome, error) {
	outcomes := make([]Outcome, len(cases))

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(r.cfg.Workers, func(arg interface{}) {
		defer wg.Done()
		i := arg.(int)
		outcomes[i] = r.runCase(ctx, cases[i])
	})
	if err != nil {
		return nil, fmt.Errorf("runner: create pool: %w", err)
	}
	defer pool.Release()

	for i := range cases {
		wg.Add(1)
		if err := pool.Invoke(i); err != nil {
			wg.Done()
			outcomes[i] = Outcome{
				Name:   cases[i].Name,
				Tool:   cases[i].Tool,
				Status: "error",
				Err:    err.Error(),
			}
		}
	}
	wg.Wait()

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Name < outcomes[j].Name })

	return outcomes, nil
}

// runCase runs one case under the configured timeout and retries exactly
// once with the longer retry timeout when the first attempt hits its
// deadline.
func (r *Runner) runCase(ctx context.Context, c Case) Outcome {
	out := Outcome{Name: c.Name, Tool: c.Tool, Status: "error"}

	solver, ok := r.solvers[c.Tool]
	if !ok {
		out.Err = fmt.Sprintf("unknown tool %q", c.Tool)

		return out
	}

	start := time.Now()
	raw, err, timedOut := r.attempt(ctx, solver, c.Input, r.cfg.Timeout.Duration)
	if timedOut {
		r.log.Warnf("case %s timed out after %s, retrying with %s",
			c.Name, r.cfg.Timeout.Duration, r.cfg.RetryTimeout.Duration)
		out.Retried = true
		raw, err, _ = r.attempt(ctx, solver, c.Input, r.cfg.RetryTimeout.Duration)
	}
	out.ElapsedMS = float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		out.Err = err.Error()

		return out
	}

	out.Output = raw
	out.Status = responseStatus(raw)

	return out
}

// attempt runs the solver once under its own deadline. timedOut reports a
// deadline hit on this attempt specifically, not a cancellation of the
// whole batch.
func (r *Runner) attempt(ctx context.Context, s Solver, input []byte, d time.Duration) (raw []byte, err error, timedOut bool) {
	cctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	raw, err = s(cctx, input)
	timedOut = err != nil && cctx.Err() == context.DeadlineExceeded && ctx.Err() == nil

	return raw, err, timedOut
}

// responseStatus lifts the "status" field out of a solver response.
func responseStatus(raw []byte) string {
	var probe struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Status == "" {
		return "error"
	}

	return probe.Status
}

// execSolver wraps an external command line: JSON in on stdin, JSON out on
// stdout, killed at the context deadline.
func execSolver(command string) Solver {
	args := strings.Fields(command)

	return func(ctx context.Context, input []byte) ([]byte, error) {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdin = bytes.NewReader(input)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			return nil, fmt.Errorf("runner: %s: %w (stderr: %s)",
				args[0], err, strings.TrimSpace(stderr.String()))
		}

		return bytes.TrimSpace(stdout.Bytes()), nil
	}
}
