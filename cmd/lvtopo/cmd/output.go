// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/barcode"
)

// IntervalDoc is one interval in YAML output; Death is absent for [b, ∞).
type IntervalDoc struct {
	Birth float64  `yaml:"birth"`
	Death *float64 `yaml:"death,omitempty"`
}

// DimensionDoc groups the intervals of one dimension.
type DimensionDoc struct {
	Dimension int           `yaml:"dimension"`
	Intervals []IntervalDoc `yaml:"intervals"`
}

// BarcodeDoc is the YAML form of a barcode collection.
type BarcodeDoc struct {
	Dimensions []DimensionDoc `yaml:"dimensions"`
}

// NewBarcodeDoc converts c into its YAML form.
func NewBarcodeDoc[T barcode.Number](c *barcode.Collection[T]) BarcodeDoc {
	var doc BarcodeDoc
	for _, dim := range c.Dimensions() {
		d := DimensionDoc{Dimension: dim}
		for _, iv := range c.AtDimension(dim) {
			item := IntervalDoc{Birth: float64(iv.Birth)}
			if !iv.Infinite {
				death := float64(iv.Death)
				item.Death = &death
			}
			d.Intervals = append(d.Intervals, item)
		}
		doc.Dimensions = append(doc.Dimensions, d)
	}

	return doc
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func writeCollection[T barcode.Number](w io.Writer, format string, c *barcode.Collection[T]) error {
	if format == FormatYAML {
		return writeYAML(w, NewBarcodeDoc(c))
	}
	_, err := fmt.Fprintln(w, c)

	return err
}
