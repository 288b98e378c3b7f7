// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/bootstrap"
	"github.com/katalvlaran/lvtopo/stream"
)

// SummaryDoc is the per-dimension bootstrap statistics in YAML output.
type SummaryDoc struct {
	Dimension int       `yaml:"dimension"`
	Distances []float64 `yaml:"distances"`
	Infinite  int       `yaml:"infinite"`
	Mean      float64   `yaml:"mean"`
	StdDev    float64   `yaml:"stddev"`
	Median    float64   `yaml:"median"`
	Max       float64   `yaml:"max"`
}

// BootstrapDoc is the YAML output of the bootstrap command.
type BootstrapDoc struct {
	StageEnds []int        `yaml:"stage_ends"`
	Stages    BarcodeDoc   `yaml:"stages"`
	Summaries []SummaryDoc `yaml:"summaries"`
}

func newBootstrapCommand(a *app) *cobra.Command {
	var samples, size int
	var seed int64
	cmd := &cobra.Command{
		Use:   "bootstrap <complex.yaml>",
		Short: "Zigzag and bottleneck statistics over random subcomplexes",
		Long: `Draws --samples face-closed random subcomplexes of --size seed cells each,
runs the union zigzag K0 ⊂ K0∪K1 ⊃ K1 ⊂ … and reports its stage barcode
together with bottleneck statistics between consecutive sample barcodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("bootstrap: --samples=%d < 2: %w", samples, ErrInvalidConfig)
			}
			s, sub, err := readComplex(args[0])
			if err != nil {
				return err
			}
			alg, err := a.cfg.algorithm(sub, a.log)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			cells := s.Cells()
			drawn := make([][]stream.Simplex, samples)
			static := make([]*barcode.Collection[float64], samples)
			for i := range drawn {
				if drawn[i], err = bootstrap.Subsample(rng, cells, stream.Simplicial{}, size); err != nil {
					return fmt.Errorf("bootstrap: %w", err)
				}
				restricted, err := bootstrap.Restrict(s.Explicit, drawn[i])
				if err != nil {
					return fmt.Errorf("bootstrap: %w", err)
				}
				if static[i], err = alg.ComputeIntervals(restricted); err != nil {
					return fmt.Errorf("bootstrap: sample %d: %w", i, err)
				}
				a.log.Debug().Int("sample", i).Int("cells", len(drawn[i])).Msg("sample drawn")
			}

			res, err := runBootstrap(a.cfg, drawn, a.log)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			doc := BootstrapDoc{StageEnds: res.StageEnds, Stages: NewBarcodeDoc(res.Stages)}
			for dim := a.cfg.MinDimension; dim <= a.cfg.MaxDimension; dim++ {
				sum, err := bootstrap.Summarize(static, dim)
				if err != nil {
					return fmt.Errorf("bootstrap: %w", err)
				}
				doc.Summaries = append(doc.Summaries, SummaryDoc{
					Dimension: dim, Distances: sum.Distances, Infinite: sum.Infinite,
					Mean: sum.Mean, StdDev: sum.StdDev, Median: sum.Median, Max: sum.Max,
				})
			}

			w := cmd.OutOrStdout()
			if a.cfg.Format == FormatYAML {
				return writeYAML(w, doc)
			}
			fmt.Fprintln(w, res.Stages)
			for _, sd := range doc.Summaries {
				fmt.Fprintf(w, "H%d: mean=%g stddev=%g median=%g max=%g infinite=%d\n",
					sd.Dimension, sd.Mean, sd.StdDev, sd.Median, sd.Max, sd.Infinite)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 5, "number of random subcomplexes")
	cmd.Flags().IntVar(&size, "size", 10, "seed cells per subcomplex before face closure")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}
