package main

import (
	"os"

	"github.com/kartik-commits/update-vendor-blobs/cmd/update-vendor-blobs/commands"
	"github.com/kartik-commits/update-vendor-blobs/internal/output"
)

func main() {
	if err := commands.Execute(); err != nil {
		log := &output.Console{
			Out:     os.Stdout,
			Err:     os.Stderr,
			NoColor: os.Getenv("NO_COLOR") != "",
		}
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
