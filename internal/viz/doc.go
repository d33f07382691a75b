// Package viz renders sampling results in the terminal.
//
//   - [Model]: Bubble Tea live view filling a histogram of scattering cosines
//   - [RenderHistogram]: static histogram of a finished run
//   - [PlotCrossSection]: ASCII cross-section curve over an energy grid
//   - [RenderCandidates]: factory priorities for a request
//
// # Key Bindings
//
//	Space - Pause/Resume sampling
//	R     - Reset histogram
//	T     - Cycle color themes
//	?     - Toggle full help
//	Q     - Quit
package viz
