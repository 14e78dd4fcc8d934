package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/priyakdey/countsquares"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print countsquares version",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE:  mkRunE(c, runVersion),
	}
	return cmd
}

func runVersion(cmd *Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, countsquares.Version())
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		fmt.Fprintf(w, "module %s %s\n", bi.Main.Path, bi.Main.Version)
	}
	fmt.Fprintf(w, "go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
