// Command basins renders the default basin-of-attraction image into ./figs.
//
// It has no flags; every parameter comes from basins.DefaultConfig.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/basins"
)

// previewSize is the longer side of the annotated preview, in pixels.
const previewSize = 1024

func main() {
	basins.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log := basins.Logger()

	r, err := basins.New()
	if err != nil {
		log.Error("basins: configure", "err", err)
		os.Exit(1)
	}

	path, err := basins.Run(r, basins.FileSink{
		Dir:     basins.DefaultDir,
		Format:  basins.PNG,
		Preview: previewSize,
	})
	if err != nil {
		log.Error("basins: run", "err", err)
		os.Exit(1)
	}

	log.Info("basins: done", "path", path)
}
