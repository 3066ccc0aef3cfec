// Package scene parses and evaluates a small live-coding scene description language.
//
// A scene is a list of statements, one per line:
//
//	size: 2 + sin(time)         # declaration
//	circle size                 # shape with one size
//	square 1 size               # square with width and height
//	move 3, 0                   # offset the cursor
//	reset_m                     # cursor back to the origin
//	color 1 0.5 0               # current color
//	for 4 { circle  move 1, 1 } # repeat a block
//	if size > 2 and time < 10   # first true branch wins
//	  square
//	else if size = 2
//	  circle
//	else
//	  reset_m
//	end if
//
// Each frame the host re-parses the whole buffer with ParseProgram and, if nothing was left over,
// evaluates it with Evaluate at the current time. Evaluation walks the tree with a single global
// Environment, resolves every expression and flattens loops and conditionals into an ordered list
// of Leaf commands for a renderer.
//
// Parsing never panics. ParseProgram stops at the first statement it can not match and returns the
// remaining input; ParseString turns a non-empty remainder into a *PartialParseError. Evaluation
// errors, such as an *UnboundVariableError, abort the whole pass.
package scene
