package cmd

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zostay/go-multipart/part"
)

// dump writes a part's header and body to stdout, the way a multipart
// encoder would frame it minus the boundary lines.
func dump[S part.Source](log *zap.Logger, p part.Part[S]) error {
	hdr := p.Header()
	if _, err := hdr.WriteTo(os.Stdout); err != nil {
		return err
	}

	if name, ok := p.Name(); ok {
		log.Info("dumping part", zap.String("name", name))
	}

	n, err := p.WriteTo(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	log.Info("body written", zap.Int64("bytes", n))

	_, err = io.WriteString(os.Stdout, "\n")
	return err
}
