package cmd

import (
	"github.com/spf13/cobra"

	"github.com/priyakdey/countsquares/internal/pointgen"
	"github.com/priyakdey/countsquares/internal/pointio"
)

func newGenCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate a points document",
		Long: `Gen writes a points document to standard output.

The grid distribution lays n points in row-major order on a square lattice
starting at the origin; it is dense in squares. The random distribution
samples n distinct points uniformly from [-bound, bound]²; the same seed
always gives the same points.
`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runGen),
	}
	addGenFlags(cmd.Flags())
	cmd.Flags().IntP(string(flagNum), "n", 16, "number of points")
	cmd.Flags().String(string(flagFormat), pointio.YAML.String(), "output format (yaml|json)")
	return cmd
}

func runGen(cmd *Command, args []string) error {
	dist, err := pointgen.ParseDistribution(flagDist.String(cmd))
	if err != nil {
		return err
	}
	format, err := pointio.ParseFormat(flagFormat.String(cmd))
	if err != nil {
		return err
	}

	points, err := pointgen.Generate(dist, flagNum.Int(cmd), flagBound.Int(cmd), flagSeed.Int64(cmd))
	if err != nil {
		return err
	}
	cmd.logf("generated %d %v points", len(points), dist)

	return pointio.Write(cmd.OutOrStdout(), format, points)
}
