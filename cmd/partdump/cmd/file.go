package cmd

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-multipart/part"
)

var fileCmd = &cobra.Command{
	Use:   "file name path",
	Short: "Dump a part whose body is streamed from a file",
	Args:  cobra.ExactArgs(2),
	RunE:  RunFile,
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func RunFile(cmd *cobra.Command, args []string) error {
	log := logger()
	defer func() { _ = log.Sync() }()

	name, path := args[0], args[1]

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsys := osfs.New(filepath.Dir(abs))
	p := part.FilePath(fsys, name, filepath.Base(abs))
	log.Info("file part built, no I/O has happened yet",
		zap.String("path", abs),
		zap.Int("chunk_size", part.ChunkSize))

	return dump(log, p)
}
