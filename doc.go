// Package wirepat extracts symbolic bend patterns from routed wires and
// assembles per-net and per-design graphs that carry them as features.
//
// 🚀 What does wirepat do?
//
//	Given the per-net wire JSON of a routed design and its timing/wire
//	graph dump, wirepat:
//		• Canonicalizes every wire into a direction+length pattern
//		  ("T11V2R11": up, via, right), invariant to trace direction and scale
//		• Counts patterns into a catalog (Pattern,Count CSV)
//		• Walks each net from a source leaf to every other leaf and emits the
//		  points and patterns crossed (sequence JSON)
//		• Labels timing graph edges with the pattern of the wire they follow
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       insertion-ordered Graph, Vertex, Edge types & thread-safe primitives
//	bfs/        breadth-first traversal and fewest-hop paths
//	route/      Point, PathSegment, Wire, Net model + streaming net JSON reader
//	pattern/    Encoder (wire → Pattern) and Catalog (name → count)
//	sequence/   net graphs, source policies, leaf-to-leaf sequences
//	timing/     timing/wire graph dump parser and edge Annotator
//	fileio/     .gz/.zst transparent I/O and input discovery
//	config/     YAML run configuration with validation
//	metrics/    Prometheus counters of one run
//	cmd/wirepat the CLI
//
// Quick ASCII example:
//
//	    (0,10)──────(10,10)
//	      │  L1→L2 via
//	    (0,0)
//
//	is the wire "T11V2R11" with epsilon 1.
//
//	go install github.com/katalvlaran/wirepat/cmd/wirepat@latest
package wirepat
