// Package cmd implements the countsquares command line tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyakdey/countsquares"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "countsquares",
		Short: "countsquares counts the squares formed by a set of integer points.",
		Long: `countsquares counts the squares, axis-aligned or rotated, whose four
corners are all in a set of distinct 2D integer points.

Points are read from YAML or JSON documents:

	points:
	  - [0, 0]
	  - [0, 1]
	  - {x: 1, y: 0}
	  - {x: 1, y: 1}

Use 'countsquares gen' to produce grid or random inputs and
'countsquares bench' to time counting on them.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newCountCmd(c),
		newGenCmd(c),
		newBenchCmd(c),
		newVersionCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the countsquares tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := New(args)
	cmd.root.SetIn(stdin)
	cmd.root.SetOut(stdout)
	cmd.root.SetErr(stderr)
	return cmd.Run(ctx)
}

type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command
}

// New creates the command tree for the given arguments.
func New(args []string) *Command {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd
}

// Run executes the command.
func (c *Command) Run(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}

// logf prints progress information to stderr when --verbose is set.
func (c *Command) logf(format string, args ...interface{}) {
	if flagVerbose.Bool(c) {
		c.PrintErrf(format+"\n", args...)
	}
}

// newCounter returns a Counter configured from the global flags.
func newCounter(c *Command) (*countsquares.Counter, error) {
	counter := countsquares.NewCounter()
	if err := counter.SetLoadFactor(flagLoadFactor.Float64(c)); err != nil {
		return nil, fmt.Errorf("--%s: %w", flagLoadFactor, err)
	}
	if err := counter.SetMmapThreshold(flagMmapThreshold.Int(c)); err != nil {
		return nil, fmt.Errorf("--%s: %w", flagMmapThreshold, err)
	}
	return counter, nil
}
