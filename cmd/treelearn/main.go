package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/treelearn/pkg/log"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "treelearn",
		Short:         "treelearn is a tool to induce ID3 decision trees",
		Long:          `A tool to grow classification trees from discrete-attribute CSV data, test them, draw them, and use them to classify new samples`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVar(&(config.verbose), "verbose", false, "emit debug-level logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := "warn"
		if config.verbose {
			level = "debug"
			log.SetLogLevel(log.LevelDebug)
		}
		log.SetupLogger(level)
	}
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		classifyCmd(config),
		testCmd(config),
		drawCmd(config),
	)
	return rootCmd
}
