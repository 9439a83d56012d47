package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-multipart/part"
)

var urlCmd = &cobra.Command{
	Use:   "url name url",
	Short: "Dump a part whose body is fetched from a URL",
	Args:  cobra.ExactArgs(2),
	RunE:  RunURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func RunURL(cmd *cobra.Command, args []string) error {
	log := logger()
	defer func() { _ = log.Sync() }()

	p := part.FileURL(nil, args[0], args[1])
	log.Info("url part built, request deferred until body consumption",
		zap.String("url", args[1]))

	return dump(log, p)
}
