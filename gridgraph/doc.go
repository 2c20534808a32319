// SPDX-License-Identifier: MIT

// Package gridgraph treats a bit2.Grid as a graph of black cells, enabling
// connected-component analysis of a bilevel image.
//
// What:
//
//   - GridGraph snapshots a grid; cells with bit 1 are "black" vertices,
//     joined to their 4-connected (N, E, S, W) black neighbors.
//   - ConnectedComponents labels every black component by BFS.
//   - BorderComponents / InteriorComponents split them by whether any cell
//     lies on the grid border.
//
// Why:
//
//   - Verifying a border flood-clear: afterwards BorderComponents must be
//     empty and InteriorComponents must be unchanged.
//   - Reporting how much interior content a scan carries.
//
// Complexity:
//
//   - New:                 O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - bit2.ErrNilGrid / bit2.ErrReleased: New got an unusable grid.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
