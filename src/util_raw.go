//go:build raw

package main

import (
	"C"
	"io"
	"os"
)

// Main entry point for C programs
//
//export GoMain
func GoMain() {
	main()
}

// Log writer implementation
func NewLogWriter() io.Writer {
	return os.Stderr
}

// Message box implementation using stderr
func ShowErrorDialog(message string) {
	print("Park Engine Error\n\n" + message)
}
