package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ErrEmptyCatalog is returned when no display mode survives the aspect ratio
// filter.
var ErrEmptyCatalog = errors.New("no display modes match the desktop aspect ratio")

// FatalVideoError marks a failure of the video subsystem that the layer cannot
// recover from. The core only returns it; main decides to terminate.
type FatalVideoError struct {
	Op      string // What operation was being attempted
	Details string // Additional error context
	Err     error  // Underlying error if any
}

func (e *FatalVideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Op, e.Details)
}

func (e *FatalVideoError) Unwrap() error {
	return e.Err
}

func fatalVideo(op, details string, err error) error {
	return &FatalVideoError{Op: op, Details: details, Err: err}
}

// IsFatalVideoError reports whether err, or anything it wraps, is a
// FatalVideoError.
func IsFatalVideoError(err error) bool {
	var fe *FatalVideoError
	return errors.As(err, &fe)
}

// exitOnFatal terminates the process when err is a fatal video error. Other
// errors are returned untouched.
func exitOnFatal(s *System, err error) error {
	if err == nil || !IsFatalVideoError(err) {
		return err
	}
	if s != nil {
		s.errLog.Println(err.Error())
		s.Close()
	}
	ShowErrorDialog(err.Error())
	os.Exit(1)
	return err
}
