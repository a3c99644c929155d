package main

import (
	"os"

	"github.com/spf13/cobra"

	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCommand() *cobra.Command {
	var debug, logFile, logFunc bool

	rootCmd := &cobra.Command{
		Use:   "cnhash",
		Short: "CryptoNight hashing, benchmarking and PoW verification",
		Long: `cnhash computes CryptoNight (v0) and CryptoNight-Lite hashes with hardware or
software AES, single or two-way interleaved, and checks them against a difficulty.

Any flag can also be set from the environment as CNHASH_<FLAG>, e.g. CNHASH_PROFILE=lite.`,
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setFlagsFromEnv(cmd.Flags()); err != nil {
				return err
			}
			if debug {
				utils.GlobalLogLevel |= utils.LogLevelNotice | utils.LogLevelDebug
			}
			utils.LogFile = logFile || logFunc
			utils.LogFunc = logFunc
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log notice and debug messages")
	rootCmd.PersistentFlags().BoolVar(&logFile, "log-file", false, "Add source file and line to log messages")
	rootCmd.PersistentFlags().BoolVar(&logFunc, "log-func", false, "Add source file, line and function to log messages")

	rootCmd.AddCommand(
		newHashCommand(),
		newBenchCommand(),
		newVariantsCommand(),
		newVerifyCommand(),
	)
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		utils.Errorf("cnhash", "%s", err)
		os.Exit(1)
	}
}
