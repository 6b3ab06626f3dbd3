// Package logger provides structured logging functionality for the
// application, configured from the server settings and built on the
// standard library's log/slog with a JSON handler.
package logger
