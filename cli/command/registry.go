package command

import (
	"context"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmRegistry is the command name.
	CmdNmRegistry cli.CmdName = "registry"
)

func init() {
	cli.Registrar[CmdNmRegistry] = NewRegistry
}

// Registry shows the registry state of the gallery.
type Registry struct {
}

// NewRegistry constructs and initializes the command.
func NewRegistry() cli.Command {
	return &Registry{}
}

// Name returns the command name.
func (c *Registry) Name() cli.CmdName {
	return CmdNmRegistry
}

// Help prints out the help message for the command.
func (c *Registry) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator registry\n")
	out.Normf("\n")
	out.Normf("  Shows the registry state of the gallery: the latest minted id, the total\n")
	out.Normf("  number of artworks and the gallery administrator.\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator registry\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Registry) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `curator help login`)."))
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Registry) Execute(
	ctx context.Context,
) error {
	registry, err := RetrieveRegistry(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Registry:\n")
	out.Normf("  LatestID: ")
	out.Valuf("%d", registry.LatestID)
	out.Normf(" TotalCount: ")
	out.Valuf("%d", registry.TotalCount)
	out.Normf(" Admin: ")
	out.Valuf("%s", registry.Admin)
	out.Normf("\n")

	return nil
}
