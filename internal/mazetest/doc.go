// SPDX-License-Identifier: MIT
// Package: lvmaze/internal/mazetest
//
// Package mazetest builds maze fixtures for tests and benchmarks:
// rectangular grids of walls codes with a start and a goal, ready to be
// written in the maze file format or loaded straight into a maze.Maze.
//
// A build starts from a fully walled grid and applies Constructors in order.
// Each constructor carves passages by removing the wall on both sides of a
// shared face, so every layout it produces is symmetric and keeps the outer
// boundary closed.
//
// Constructors:
//
//	Open()         every interior wall removed
//	Serpentine()   a single boustrophedon corridor through all cells
//	Backtracker()  a perfect maze by randomized depth-first carving
//	Kruskal()      a perfect maze by randomized Kruskal's algorithm
//	Braid(p)       removes each remaining interior wall with probability p
//
// Randomized constructors need an RNG (WithSeed or WithRand) and return
// ErrNeedRandSource without one. The same seed and constructor order always
// produce the same layout.
package mazetest
