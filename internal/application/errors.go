package application

import (
	"errors"
	"fmt"
)

// Application error types
var (
	ErrNoFilesProvided  = errors.New("no files provided")
	ErrInvalidLevel     = errors.New("invalid compression level")
	ErrJobAlreadyActive = errors.New("a compression job is already running")
	ErrNoOutputDir      = errors.New("no output directory selected")
)

// OperationError wraps a failure of one document operation.
type OperationError struct {
	Operation string
	FilePath  string
	Err       error
}

func (e *OperationError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("%s failed for file %s: %v", e.Operation, e.FilePath, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new operation error
func NewOperationError(operation, filePath string, err error) *OperationError {
	return &OperationError{
		Operation: operation,
		FilePath:  filePath,
		Err:       err,
	}
}
