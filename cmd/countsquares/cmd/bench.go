package cmd

import (
	"fmt"
	"testing"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/priyakdey/countsquares/internal/pointgen"
)

var defaultBenchSizes = []int{24, 32, 40, 48, 56, 64, 128, 256, 512, 1024, 2048, 4096}

func newBenchCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time square counting on generated inputs",
		Long: `Bench generates inputs of each requested size and reports the time and
allocations per count.

Grid inputs are the worst case: most candidate corners exist. Random
inputs mostly miss and measure the cost of negative lookups.
`,
		Args: cobra.NoArgs,
		RunE: mkRunE(c, runBench),
	}
	addGenFlags(cmd.Flags())
	cmd.Flags().IntSlice(string(flagSizes), defaultBenchSizes, "input sizes")
	return cmd
}

func runBench(cmd *Command, args []string) error {
	dist, err := pointgen.ParseDistribution(flagDist.String(cmd))
	if err != nil {
		return err
	}
	counter, err := newCounter(cmd)
	if err != nil {
		return err
	}
	defer counter.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "dist\tn\tsquares\tµs/op\tallocs/op\t\n")
	for _, n := range flagSizes.IntSlice(cmd) {
		points, err := pointgen.Generate(dist, n, flagBound.Int(cmd), flagSeed.Int64(cmd))
		if err != nil {
			return err
		}
		cmd.logf("running %v n=%d", dist, n)

		squares := counter.Count(points)
		res := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				counter.Count(points)
			}
		})
		fmt.Fprintf(w, "%v\t%d\t%d\t%.2f\t%d\t\n",
			dist, n, squares, float64(res.NsPerOp())/1e3, res.AllocsPerOp())
	}
	return w.Flush()
}
