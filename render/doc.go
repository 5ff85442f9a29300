// SPDX-License-Identifier: MIT

// Package render turns real-valued matrices into images.
//
// What:
//   - Grid — a plotter.GridXYZ adapter over any mat.Matrix[scalar.Real].
//   - Heatmap — render a matrix to a heat-map image file on disk.
//
// Why: a matrix dump of more than a few dozen rows is unreadable; a heat
// map shows structure (bandedness, blocks, rank collapse after
// elimination) at a glance.
//
// Only the Real tower is renderable — a complex or quaternion element has
// no single magnitude ordering that a color ramp can honor. Convert such
// matrices to Real (e.g. element-wise norm via mat.Convert) before
// rendering.
package render
