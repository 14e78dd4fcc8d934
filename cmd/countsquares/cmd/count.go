package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/priyakdey/countsquares/internal/pointio"
)

func newCountCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "count the squares in a points document",
		Long: `Count reads a YAML or JSON points document from file, or from standard
input when file is omitted or "-", and prints the number of squares whose
corners are all in the document.

Points must be distinct and each coordinate must lie within ±536870911.
Both are checked unless --unchecked is given, in which case invalid input
gives an unspecified count.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runCount),
	}
	cmd.Flags().Bool(string(flagUnchecked), false,
		"skip the duplicate and range checks")
	return cmd
}

func runCount(cmd *Command, args []string) error {
	name := "-"
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	points, err := pointio.Read(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	cmd.logf("read %d points from %s", len(points), name)

	counter, err := newCounter(cmd)
	if err != nil {
		return err
	}
	defer counter.Close()

	start := time.Now()
	var n int32
	if flagUnchecked.Bool(cmd) {
		n = counter.Count(points)
	} else {
		n, err = counter.CountChecked(points)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	cmd.logf("counted in %v", time.Since(start))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
	return err
}
