package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-multipart/part"
)

var formCmd = &cobra.Command{
	Use:   "form name value",
	Short: "Dump a part built from a literal form field value",
	Args:  cobra.ExactArgs(2),
	RunE:  RunForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func RunForm(cmd *cobra.Command, args []string) error {
	log := logger()
	defer func() { _ = log.Sync() }()

	p := part.FormData(args[0], args[1])
	return dump(log, p)
}
