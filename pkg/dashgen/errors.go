package dashgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates the report configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// BuildError represents a failure during workbook generation.
type BuildError struct {
	// Stage is the generation stage: "load", "aggregate", "resolve",
	// "build", or "save".
	Stage string
	// Source names the input file or output sheet involved.
	Source string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in %s (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// newBuildError creates a BuildError for a generation stage.
func newBuildError(stage, source string, err error) *BuildError {
	return &BuildError{Stage: stage, Source: source, Err: err}
}
