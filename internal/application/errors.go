package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrUsage        = errors.New("usage error")
	ErrInvalidYear  = errors.New("invalid year")
	ErrManifestOpen = errors.New("cannot open manifest")
	ErrOutputOpen   = errors.New("cannot open output")
	ErrDataFileOpen = errors.New("cannot open data file")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FileOp names the file a FileError is about
type FileOp string

const (
	OpManifest FileOp = "manifest"
	OpOutput   FileOp = "output"
	OpDataFile FileOp = "data file"
)

// FileError represents a failure to open or read one of the program's files
type FileError struct {
	Op   FileOp
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	switch e.Op {
	case OpManifest:
		return target == ErrManifestOpen
	case OpOutput:
		return target == ErrOutputOpen
	case OpDataFile:
		return target == ErrDataFileOpen
	}
	return false
}
