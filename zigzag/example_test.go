// SPDX-License-Identifier: MIT

package zigzag_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/algebra"
	"github.com/katalvlaran/lvtopo/stream"
	"github.com/katalvlaran/lvtopo/zigzag"
)

// ExampleTracker joins two vertices with an edge and takes everything apart again.
func ExampleTracker() {
	tr := zigzag.NewTracker[stream.Simplex, bool](algebra.BooleanField(), stream.Simplicial{})
	v0, v1, e := stream.NewSimplex(0), stream.NewSimplex(1), stream.NewSimplex(0, 1)
	for _, c := range []stream.Simplex{v0, v1, e} {
		_ = tr.Add(c)
	}
	for _, c := range []stream.Simplex{e, v1, v0} {
		_ = tr.Remove(c)
	}
	fmt.Println(tr.Barcodes())

	// Output:
	// H0: [0, 5) [1, 2) [3, 4)
}
