// Package config holds the run configuration of the mazesolve command and
// decodes it from an optional HCL file.
//
// A configuration file sets top-level attributes only; anything it omits
// keeps the value it had before decoding:
//
//	maze       = "mazes/maze4x4.txt" # relative to this file
//	format     = "yaml"              # text | yaml
//	log_level  = "debug"             # debug | info | warn | error
//	log_format = "json"              # text | json
//	validate   = true
//	show_maze  = true
//	overlay    = true
//	detached   = false
//	dump       = false
//	max_cells  = 1000000
//	start      = 0
//	goal       = 14
package config
