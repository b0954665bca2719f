// Package core provides the small, thread-safe in-memory Graph that the
// wire-pattern extractor builds per net and per design.
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex and per-edge attribute maps (Metadata), set with
//     WithEdgeAttr at creation time or SetEdgeAttr afterwards
//   - Collision-free Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+incidence
//     (muEdgeAdj), always acquired in that order
//
// Ordering:
//
// Unlike a general-purpose graph library, enumeration follows INSERTION
// order, not lexical order. Vertices() lists vertices in the order they
// were first added (explicitly or through AddEdge), Edges() lists edges in
// creation order, and NeighborIDs() lists neighbors in the order their
// connecting edges were created. Net sequence extraction depends on this:
// the "source" leaf of a net is the first degree-1 vertex in wire order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//	Vertex(id string) (*Vertex, error)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool              // O(deg(from))
//	EdgeBetween(from, to string) (*Edge, error)// O(deg(from)), first edge wins
//	SetEdgeAttr(edgeID, key string, v interface{}) error // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // O(deg), loops appear once
//	NeighborIDs(id string) ([]string, error)   // O(deg), unique, insertion order
//	Vertices() []string                        // O(V), insertion order
//	Edges() []*Edge                            // O(E), insertion order
//
//	// Counts & degrees
//	Degree(id string) (in, out, undirected int, err error)
//	VertexCount() int
//	EdgeCount() int
//
// † amortized: map insertion plus slice append.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
