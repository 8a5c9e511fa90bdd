// Package viz draws physlab scenes in the terminal.
//
// Scenes are rasterised onto a Braille [Canvas] through a [Camera] that
// frames the scene bounds; graphs are plotted with asciigraph. Two Bubble
// Tea programs sit on top:
//
//   - [Model]: steps one scenario per tick and redraws its scene
//   - [App]: scenario picker with a parameter editor that opens a [Model]
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart with the starting parameters
//	T     - Cycle colour themes
//	G     - Toggle graphs
//	F     - Refit the view
//	X/Y   - Rotate the view
//	+/-   - Zoom
//	?     - Show help overlay
package viz
