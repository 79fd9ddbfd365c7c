// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// errors.go — sentinel errors for the mazetest package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package mazetest

import "errors"

// ErrTooFewCells indicates rows or cols below one.
var ErrTooFewCells = errors.New("mazetest: grid too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("mazetest: probability out of range")

// ErrNeedRandSource indicates a randomized constructor ran without an RNG.
var ErrNeedRandSource = errors.New("mazetest: rng is required")

// ErrConstructFailed indicates a nil constructor or an endpoint outside the
// grid.
var ErrConstructFailed = errors.New("mazetest: construction failed")
