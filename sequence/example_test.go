package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/sequence"
)

// ExampleExtractor_Extract walks a T-shaped net from its first leaf.
func ExampleExtractor_Extract() {
	enc, _ := pattern.NewEncoder()
	x, _ := sequence.NewExtractor(enc)

	seqs, _ := x.Extract(fanout())
	for _, s := range seqs {
		fmt.Println(s.Points, s.Patterns)
	}

	// Output:
	// [(0,0,1) (0,5,1) (5,5,1)] [T2 R2]
	// [(0,0,1) (0,5,1) (-10,5,1)] [T2 R2]
}
