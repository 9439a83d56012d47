package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-multipart/cmd/partdump/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
