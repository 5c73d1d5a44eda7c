// Package sandbox runs tenant-authored JavaScript in an isolated goja runtime.
//
// A script is the body of a function: its return value is the result. Each
// run gets a fresh runtime, so nothing leaks between executions.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/expression"
	"cortex-backend/internal/logger"
	"cortex-backend/internal/metrics"

	"github.com/dop251/goja"
)

const (
	DefaultTimeout        = time.Second
	DefaultMaxScriptBytes = 64 * 1024
	DefaultMaxCallStack   = 256
)

// Config bounds script executions
type Config struct {
	Timeout        time.Duration
	MaxScriptBytes int
	MaxCallStack   int
}

// Script is one execution request
type Script struct {
	Name      string
	Source    string
	Org       string
	Principal map[string]interface{}
	Arguments map[string]interface{}
}

// Runner executes scripts
type Runner struct {
	cfg Config
}

// NewRunner creates a runner, filling unset limits with defaults
func NewRunner(cfg Config) *Runner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxScriptBytes <= 0 {
		cfg.MaxScriptBytes = DefaultMaxScriptBytes
	}
	if cfg.MaxCallStack <= 0 {
		cfg.MaxCallStack = DefaultMaxCallStack
	}
	return &Runner{cfg: cfg}
}

// Check compiles source without running it
func (r *Runner) Check(source string) error {
	if len(source) > r.cfg.MaxScriptBytes {
		return apperrors.ErrScriptTooLarge.WithReason(fmt.Sprintf("script exceeds maximum size of %d bytes", r.cfg.MaxScriptBytes))
	}
	if _, err := goja.Compile("", wrap(source), true); err != nil {
		return apperrors.ErrScript.WithReason(err.Error())
	}
	return nil
}

// Run executes s and returns its exported result
func (r *Runner) Run(ctx context.Context, s Script) (result interface{}, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordScript(outcome(err), time.Since(start))
	}()

	if len(s.Source) > r.cfg.MaxScriptBytes {
		return nil, apperrors.ErrScriptTooLarge.WithReason(fmt.Sprintf("script exceeds maximum size of %d bytes", r.cfg.MaxScriptBytes))
	}
	program, err := goja.Compile(s.Name, wrap(s.Source), true)
	if err != nil {
		return nil, apperrors.ErrScript.WithReason(err.Error())
	}

	vm := goja.New()
	vm.SetMaxCallStackSize(r.cfg.MaxCallStack)

	timeout := r.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			vm.Interrupt("execution timeout")
		case <-ctx.Done():
			vm.Interrupt("execution cancelled")
		case <-done:
		}
	}()

	if err := r.install(ctx, vm, s); err != nil {
		return nil, err
	}

	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, translate(err)
	}
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, nil
	}
	return expression.Normalize(value.Export()), nil
}

func (r *Runner) install(ctx context.Context, vm *goja.Runtime, s Script) error {
	args := s.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}
	principal := s.Principal
	if principal == nil {
		principal = map[string]interface{}{}
	}

	script := vm.NewObject()
	if err := script.Set("arguments", args); err != nil {
		return apperrors.ErrUnspecified.Wrap(err)
	}
	if err := script.Set("principal", principal); err != nil {
		return apperrors.ErrUnspecified.Wrap(err)
	}
	if err := script.Set("org", s.Org); err != nil {
		return apperrors.ErrUnspecified.Wrap(err)
	}
	if err := vm.Set("script", script); err != nil {
		return apperrors.ErrUnspecified.Wrap(err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"script": s.Name,
	})
	console := vm.NewObject()
	_ = console.Set("log", consoleFunc(func(msg string) { log.Info(msg) }))
	_ = console.Set("warn", consoleFunc(func(msg string) { log.Warn(msg) }))
	_ = console.Set("error", consoleFunc(func(msg string) { log.Error(msg) }))
	if err := vm.Set("console", console); err != nil {
		return apperrors.ErrUnspecified.Wrap(err)
	}

	return vm.Set("fault", func(call goja.FunctionCall) goja.Value {
		obj := vm.NewObject()
		_ = obj.Set("__fault", true)
		_ = obj.Set("errCode", call.Argument(0).String())
		reason := ""
		if len(call.Arguments) > 1 {
			reason = call.Argument(1).String()
		}
		_ = obj.Set("reason", reason)
		panic(obj)
	})
}

func consoleFunc(write func(string)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = fmt.Sprint(arg.Export())
		}
		write(strings.Join(parts, " "))
		return goja.Undefined()
	}
}

func wrap(source string) string {
	return "(function() {\n" + source + "\n})()"
}

func translate(err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return apperrors.ErrScriptTimeout.Wrap(err)
	}

	var exception *goja.Exception
	if errors.As(err, &exception) {
		if thrown, ok := exception.Value().Export().(map[string]interface{}); ok {
			if isFault, _ := thrown["__fault"].(bool); isFault {
				errCode, _ := thrown["errCode"].(string)
				reason, _ := thrown["reason"].(string)
				if strings.HasPrefix(errCode, "cortex.") {
					return apperrors.New(errCode, reason)
				}
				return apperrors.ErrScript.WithReason(fmt.Sprintf("%s: %s", errCode, reason))
			}
		}
		return apperrors.ErrScript.WithReason(exception.Error())
	}
	return apperrors.ErrScript.WithReason(err.Error())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.IsTimeout(err):
		return "timeout"
	case errors.Is(err, apperrors.ErrScript), errors.Is(err, apperrors.ErrScriptTooLarge):
		return "error"
	}
	return "fault"
}
