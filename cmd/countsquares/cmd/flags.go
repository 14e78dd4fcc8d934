package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/priyakdey/countsquares"
	"github.com/priyakdey/countsquares/internal/pointgen"
)

// Common flags
const (
	flagBound         flagName = "bound"
	flagDist          flagName = "dist"
	flagFormat        flagName = "format"
	flagLoadFactor    flagName = "load-factor"
	flagMmapThreshold flagName = "mmap-threshold"
	flagNum           flagName = "num"
	flagSeed          flagName = "seed"
	flagSizes         flagName = "sizes"
	flagUnchecked     flagName = "unchecked"
	flagVerbose       flagName = "verbose"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.Float64(string(flagLoadFactor), countsquares.DefaultLoadFactor,
		"point table load factor, in (0, 1)")
	f.Int(string(flagMmapThreshold), 0,
		"table size in slots from which the table is memory mapped (0 disables)")
	f.BoolP(string(flagVerbose), "v", false,
		"print information about progress")
}

func addGenFlags(f *pflag.FlagSet) {
	f.String(string(flagDist), pointgen.Grid.String(),
		"point distribution (grid|random)")
	f.Int(string(flagBound), pointgen.DefaultBound,
		"random points lie in [-bound, bound]²")
	f.Int64(string(flagSeed), 42,
		"random seed")
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) Int64(cmd *Command) int64 {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt64(string(f))
	return v
}

func (f flagName) Float64(cmd *Command) float64 {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetFloat64(string(f))
	return v
}

func (f flagName) IntSlice(cmd *Command) []int {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetIntSlice(string(f))
	return v
}
