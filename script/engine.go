// Package script evaluates homotopy maps described in a small Lisp dialect.
// It wraps zygomys in a sandboxed environment with builtins for every
// combinator of the homotopy package:
//
//	; a tube around the z axis
//	(def ring (circle (vec3 0 0 0) 2))
//	(ext2 (line (vec3 0 0 0) (vec3 0 0 10)) ring)
//
// The value of the last expression is the result of the script. It must be a
// curve, a surface or a volume.
package script

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/sgostarter/i/l"
	"honnef.co/go/homotopy"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the map a script evaluated to. Exactly one of Curve, Surface and
// Volume is set, according to Rank.
type Result struct {
	Rank    int
	Curve   homotopy.Curve[float64]
	Surface homotopy.Surface[float64]
	Volume  homotopy.Volume[float64]
}

func (r *Result) String() string {
	return rankNames[r.Rank]
}

var rankNames = map[int]string{1: "curve", 2: "surface", 3: "volume"}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger l.Wrapper) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTimeout sets the limit for a single evaluation.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

type evalOptions struct {
	params map[string]float64
}

// EvalOption configures a single call to [Engine.Evaluate].
type EvalOption func(*evalOptions)

// WithParams defines a global variable for each entry of params before the
// script runs.
func WithParams(params map[string]float64) EvalOption {
	return func(o *evalOptions) {
		o.params = params
	}
}

// Engine evaluates scripts. It is safe for concurrent use; each call to
// Evaluate creates a fresh sandboxed environment.
type Engine struct {
	logger  l.Wrapper
	timeout time.Duration
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: EvalTimeout}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = l.NewNopLoggerWrapper()
	}
	e.logger = e.logger.WithFields(l.StringField(l.ClsKey, "scriptEngine"))
	return e
}

type evalResult struct {
	result *Result
	errors []EvalError
	err    error
}

// Evaluate runs source and returns the map it evaluated to.
//
// Return semantics:
//   - On success: returns result + nil errors + nil error
//   - On parse/eval failure: returns nil result + eval errors + nil error
//   - On fatal failure (timeout, cancellation, panic): returns nil + nil + error
//
// Empty source is a valid script without a result and returns nil + nil + nil.
func (e *Engine) Evaluate(ctx context.Context, source string, opts ...EvalOption) (*Result, []EvalError, error) {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(source) == "" {
		return nil, nil, nil
	}

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("script: panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(prelude(o.params) + source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	res := waitWithTimeout(ctx, ch, e.timeout)
	switch {
	case res.err != nil:
		e.logger.WithFields(l.ErrorField(res.err)).Error("evaluation failed")
	case len(res.errors) > 0:
		e.logger.WithFields(l.IntField("errors", len(res.errors))).Debug("script has errors")
	default:
		e.logger.WithFields(l.StringField("rank", res.result.String())).Debug("evaluated")
	}
	return res.result, res.errors, res.err
}

// waitWithTimeout waits for a result from ch, but gives up once ctx is done
// or timeout has passed. The evaluating goroutine may still be running
// afterwards; its result is discarded.
func waitWithTimeout(ctx context.Context, ch <-chan evalResult, timeout time.Duration) evalResult {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res
	case <-timer.C:
		return evalResult{err: fmt.Errorf("script: evaluation timed out after %s", timeout)}
	case <-ctx.Done():
		return evalResult{err: fmt.Errorf("script: %w", ctx.Err())}
	}
}

// prelude defines params as globals. It doesn't contain newlines, so line
// numbers in error messages still refer to the user's source.
func prelude(params map[string]float64) string {
	var sb strings.Builder
	for _, name := range slices.Sorted(maps.Keys(params)) {
		fmt.Fprintf(&sb, "(def %s %s) ", name, strconv.FormatFloat(params[name], 'f', -1, 64))
	}
	return sb.String()
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	// Sandbox mode prevents scripts from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	val, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	m, ok := val.(*sexpMap)
	if !ok {
		return nil, []EvalError{{
			Message: fmt.Sprintf("script must evaluate to a curve, surface or volume, got %s", describe(val)),
		}}, nil
	}
	res := m.Result
	return &res, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values,
// extracting the line number where the message has one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
