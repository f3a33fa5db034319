// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages

import (
	"errors"
	"fmt"
)

// ErrReadFile is returned when an input or script file can't be read.
type ErrReadFile struct {
	Path string
	Err  error
}

func (e *ErrReadFile) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ErrReadFile) Unwrap() error {
	return e.Err
}

// ErrWriteFile is returned when file I/O operations fail.
type ErrWriteFile struct {
	Op   string // mkdir, write
	Path string
	Err  error
}

func (e *ErrWriteFile) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrWriteFile) Unwrap() error {
	return e.Err
}

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// ErrScript is returned when an edit script can't be decoded or is invalid.
type ErrScript struct {
	Path string
	Err  error
}

func (e *ErrScript) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("edit script: %v", e.Err)
	}
	return fmt.Sprintf("edit script %s: %v", e.Path, e.Err)
}

func (e *ErrScript) Unwrap() error {
	return e.Err
}

// Error code constants reported by the command line.
const (
	ErrCodeReadFile  = "READ_FILE"
	ErrCodeWriteFile = "WRITE_FILE"
	ErrCodeDatabase  = "DATABASE"
	ErrCodeScript    = "SCRIPT"
	ErrCodeUnknown   = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
// Wrapped errors are unwrapped until a known type is found.
func ErrorCode(err error) string {
	var (
		readErr  *ErrReadFile
		writeErr *ErrWriteFile
		dbErr    *ErrDatabase
		scrErr   *ErrScript
	)
	switch {
	case errors.As(err, &readErr):
		return ErrCodeReadFile
	case errors.As(err, &writeErr):
		return ErrCodeWriteFile
	case errors.As(err, &dbErr):
		return ErrCodeDatabase
	case errors.As(err, &scrErr):
		return ErrCodeScript
	default:
		return ErrCodeUnknown
	}
}
