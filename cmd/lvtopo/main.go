// SPDX-License-Identifier: MIT

// Command lvtopo computes persistence barcodes, zigzag barcodes and bottleneck
// distances of simplicial complexes described in YAML files.
package main

import "github.com/katalvlaran/lvtopo/cmd/lvtopo/cmd"

func main() {
	cmd.Execute()
}
