// Package project composes a new Next.js project: it validates the project
// name, builds installer command lines and runs the ordered installation
// pipeline (scaffold, cleanup, localization, UI library).
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrInvalidName indicates the project name failed validation.
	ErrInvalidName = errors.New("invalid project name")

	// ErrStepFailed indicates a fatal pipeline step failed.
	ErrStepFailed = errors.New("installation step failed")

	// ErrNilConfig indicates the pipeline was started without a configuration.
	ErrNilConfig = errors.New("project configuration is required")
)

// Name validation rules, in evaluation order.
const (
	RuleEmpty        = "empty"
	RuleMinLength    = "min-length"
	RuleIllegalChars = "illegal-chars"
	RuleReserved     = "reserved"
	RuleBoundary     = "boundary"
	RuleExists       = "exists"
	RuleMaxLength    = "max-length"
	RulePattern      = "pattern"
)

// NameError reports the first validation rule a project name violated.
type NameError struct {
	Rule    string
	Message string
}

func (e *NameError) Error() string {
	return e.Message
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidName).
func (e *NameError) Unwrap() error {
	return ErrInvalidName
}

// StepError wraps the failure of a fatal pipeline step.
type StepError struct {
	Step State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap exposes both ErrStepFailed and the underlying cause.
func (e *StepError) Unwrap() []error {
	return []error{ErrStepFailed, e.Err}
}
