// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, carries request-scoped loggers in a context, and masks
// names, birth dates and credentials before anything is written.
package logger
