// compute.go implements `salience compute`: TOML graph in, CSV matrix out.
package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salience"
	"github.com/katalvlaran/salience/core"
	"github.com/katalvlaran/salience/matrix"
)

// newComputeCmd builds the compute subcommand.
func newComputeCmd() *cobra.Command {
	var (
		input      string
		output     string
		unweighted bool
		weightKey  string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the salience matrix of a graph",
		Long: `Compute reads an undirected graph from a TOML edge list and writes its
salience matrix as CSV, one header row and column of vertex IDs.

By default edges must carry a weight attribute and distances are measured
as effective proximity (1/weight); --unweighted switches to hop counts and
ignores weights entirely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			logger.Debugf("loading graph from %s", input)
			g, err := loadGraph(input, weightKey)
			if err != nil {
				return err
			}
			logger.Debugf("loaded %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

			p := newProgress(logger)
			var s *matrix.Dense
			if unweighted {
				s, err = salience.SalienceUnweighted(g)
			} else {
				s, err = salience.Salience(g, salience.WithWeightKey(weightKey))
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Computed %d×%d salience matrix", s.Rows(), s.Cols()))

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("cli: create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			return writeCSV(out, g, s)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the TOML graph file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV here instead of stdout")
	cmd.Flags().BoolVar(&unweighted, "unweighted", false, "measure distance in hops, ignoring weights")
	cmd.Flags().StringVar(&weightKey, "weight-key", salience.DefaultWeightKey, "edge attribute holding the weight")
	cmd.MarkFlagRequired("input")

	return cmd
}

// writeCSV emits s with vertex IDs as header row and leading column.
// Row and column order is g.Vertices(), matching the matrix indexing.
func writeCSV(w io.Writer, g *core.Graph, s *matrix.Dense) error {
	ids := g.Vertices()
	cw := csv.NewWriter(w)

	header := append([]string{""}, ids...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cli: write csv: %w", err)
	}

	row := make([]string, len(ids)+1)
	for i, id := range ids {
		row[0] = id
		for j := range ids {
			v, err := s.At(i, j)
			if err != nil {
				return err
			}
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cli: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
