package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "partdump",
	Short: "Build multipart form-data parts and dump their headers and bodies",
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log what the builder and sources are doing")
}

func Execute() error {
	return rootCmd.Execute()
}

// logger builds the diagnostic logger for a run. Quiet runs get a no-op
// logger.
func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
