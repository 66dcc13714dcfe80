package runner

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Sentinel errors of the batch runner.
var (
	// ErrEmptyToolName is returned when registering a solver under "".
	ErrEmptyToolName = errors.New("runner: empty tool name")

	// ErrNilSolver is returned when registering a nil solver.
	ErrNilSolver = errors.New("runner: nil solver")

	// ErrEmptyCommand is returned when a configured tool command is blank.
	ErrEmptyCommand = errors.New("runner: empty tool command")
)

// Solver turns one raw JSON request into one raw JSON response. In-process
// solvers are synchronous and ignore ctx; exec-backed solvers honor the
// deadline by killing the child process.
type Solver func(ctx context.Context, input []byte) ([]byte, error)

// Case is one solve request of a batch: which tool to run and its input.
type Case struct {
	Name  string          `json:"name"`
	Tool  string          `json:"tool"`
	Input json.RawMessage `json:"input"`
}

// Outcome is the per-case report. Status mirrors the "status" field of the
// solver's response when it parses, "error" otherwise.
type Outcome struct {
	Name      string          `json:"name"`
	Tool      string          `json:"tool"`
	Status    string          `json:"status"`
	Output    json.RawMessage `json:"output,omitempty"`
	Err       string          `json:"err,omitempty"`
	ElapsedMS float64         `json:"elapsed_ms"`
	Retried   bool            `json:"retried"`
}

// Duration wraps time.Duration so TOML configs can say "2s" or "500ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses the usual Go duration syntax.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))

	return err
}

// Config controls a batch run. Tools maps tool name → external command
// line; tools without an entry run in process (belts and factory are
// built in).
type Config struct {
	Workers      int               `toml:"workers"`
	Timeout      Duration          `toml:"timeout"`
	RetryTimeout Duration          `toml:"retry_timeout"`
	LogFile      string            `toml:"log_file"`
	Tools        map[string]string `toml:"tools"`
}

// DefaultConfig returns the canonical batch configuration: four workers,
// a 2s first attempt and one 10s retry.
func DefaultConfig() Config {
	return Config{
		Workers:      4,
		Timeout:      Duration{2 * time.Second},
		RetryTimeout: Duration{10 * time.Second},
	}
}

// normalize repairs out-of-domain settings in place.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Timeout.Duration <= 0 {
		c.Timeout = def.Timeout
	}
	if c.RetryTimeout.Duration <= 0 {
		c.RetryTimeout = def.RetryTimeout
	}
}
