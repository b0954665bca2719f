// Package bfs walks a core.Graph breadth-first and answers fewest-hop path
// queries over it.
//
// Every edge counts as one hop, which is how a net graph treats its wires:
// the sequence from a source leaf to a target leaf is the path crossing the
// fewest wires.
//
//   - Walk grows the whole Tree from a source: discovery Order, Hops per
//     vertex and parent links, with Tree.PathTo for any discovered vertex.
//   - ShortestPath answers one (src, dst) query and stops early.
//
// Determinism
//
//	core.NeighborIDs lists neighbors in edge-creation order and the walk
//	discovers them in that order, so among equal-length paths the one whose
//	edges were created first wins. Walk followed by PathTo and ShortestPath
//	agree on every destination.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil, ErrSourceNotFound for bad input.
//   - ErrOptionViolation for a negative WithMaxHops.
//   - ErrNoPath (wrapped) when the destination is not reached.
//   - ctx.Err() when the WithContext context is done.
package bfs
