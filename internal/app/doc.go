// Package app contains the mazesolve run lifecycle: build the logger, load
// the maze, optionally validate it, solve it, and write a report. It is
// decoupled from the command-line entry point so it can be driven by tests.
package app
