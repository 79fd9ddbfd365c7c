// Package render draws a maze.Maze and its solution as plain text.
//
// Maze output uses two glyphs per cell, a west wall ('|' or ' ') and a
// floor ('_' or ' '), under a header of " _" per column:
//
//	 _ _ _
//	|  _  |
//	| |_| |
//	|_ _ _|
//
//	 start cell:  0 [0,0]
//	  goal cell:  8 [2,2]
//
// Walls are derived from adjacency, not from the original walls codes: a
// face is drawn open only when the cell on the far side lists this one as a
// neighbour. Overlay replaces the floor glyph of every path cell with '*'
// (open floor) or '#' (walled floor).
//
// The renderer only reads the maze; it never touches search state.
package render
