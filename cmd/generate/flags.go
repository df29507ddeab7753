package generate

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazegen/cmd/util"
)

// bindGenerateFlagsFunc bridges the cobra flags to the viper keys read by
// runGenerate, so environment variables apply when a flag is not set
// explicitly.
func bindGenerateFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(*cobra.Command, []string) {
		util.MustBindPFlag(sizeFlag, flags.Lookup(sizeFlag))
		util.MustBindPFlag(seedFlag, flags.Lookup(seedFlag))
		util.MustBindPFlag(startFlag, flags.Lookup(startFlag))
		util.MustBindPFlag(goalFlag, flags.Lookup(goalFlag))
		util.MustBindPFlag(minValidPathsFlag, flags.Lookup(minValidPathsFlag))
		util.MustBindPFlag(algorithmFlag, flags.Lookup(algorithmFlag))
		util.MustBindPFlag(outputFlag, flags.Lookup(outputFlag))
		util.MustBindPFlag(drawSolutionFlag, flags.Lookup(drawSolutionFlag))
		util.MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
		util.MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
	}
}
