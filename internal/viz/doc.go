// Package viz renders vector scenes in the terminal.
//
// The package implements:
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per character cell
//   - [Camera]: rotation and perspective projection of scene vectors
//   - [Term]: interactive Bubble Tea view of a scene
//   - [RenderReport]: lipgloss report of vector magnitudes and products
//
// # Key Bindings
//
//	Arrows/hjkl - Rotate the view
//	+/-         - Zoom
//	Tab         - Select the next vector
//	Space       - Start/stop spinning the selected vector
//	T           - Cycle color themes
//	R           - Reset view and scene
//	Q           - Quit
package viz
