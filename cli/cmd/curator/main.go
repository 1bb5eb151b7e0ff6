package main

import (
	"os"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/out"

	// Commands register themselves against the cli registrar.
	_ "github.com/Sirdoh/NFTArtGallery/cli/command"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		cli.Help()
		return
	}

	cli, err := cli.New(args)
	if err != nil {
		out.Errof("Error: %s", err.Error())
		os.Exit(1)
	}

	err = cli.Run()
	if err != nil {
		out.Errof("Error: %s", err.Error())
		os.Exit(1)
	}
}
