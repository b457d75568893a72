// Package viz provides the terminal front end for Life runs.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: steps a simulator on a timer and renders the grid
//   - [Canvas]: Braille canvas packing 2x4 cells into one character
//   - [Recorder]: GIF capture of rendered generations
//   - Theme selection with 5 built-in color schemes
//
// Alive cells are coloured by the parity of their neighbour count.
//
// # Key Bindings
//
//	Space - Start/stop stepping
//	N     - Single step while stopped
//	R     - Reset to the seed grid
//	T     - Cycle color themes
//	B     - Toggle Braille rendering
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
package viz
