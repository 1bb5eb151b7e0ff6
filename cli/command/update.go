package command

import (
	"context"
	"strconv"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmUpdate is the command name.
	CmdNmUpdate cli.CmdName = "update"
)

func init() {
	cli.Registrar[CmdNmUpdate] = NewUpdate
}

// Update the details of an artwork owned by the currently logged in user.
type Update struct {
	ID      int64
	Details string
	Secure  bool
}

// NewUpdate constructs and initializes the command.
func NewUpdate() cli.Command {
	return &Update{}
}

// Name returns the command name.
func (c *Update) Name() cli.CmdName {
	return CmdNmUpdate
}

// Help prints out the help message for the command.
func (c *Update) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator update [secure] <id> <details>\n")
	out.Normf("\n")
	out.Normf("  Updates the details of an artwork you own. With ")
	out.Boldf("secure")
	out.Normf(", the update is also\n")
	out.Normf("  accepted from the gallery administrator.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  id\n")
	out.Normf("    The id of the artwork to update.\n")
	out.Valuf("    7\n")
	out.Normf("\n")
	out.Boldf("  details\n")
	out.Normf("    The new details of the artwork (1 to 512 characters).\n")
	out.Valuf("    \"Sunset over sand dunes, 2016 (restored)\"\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator update 7 \"Sunset over sand dunes, 2016 (restored)\"\n")
	out.Valuf("   curator update secure 7 \"Sunset over sand dunes, 2016 (restored)\"\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Update) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `curator help login`)."))
	}

	if len(args) > 0 && args[0] == "secure" {
		c.Secure = true
		args = args[1:]
	}

	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Artwork id required."))
	}
	id, args := args[0], args[1:]

	i, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return errors.Trace(
			errors.Newf("Invalid artwork id: %s.", id))
	}
	c.ID = i

	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Details required."))
	}
	c.Details = args[0]

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Update) Execute(
	ctx context.Context,
) error {
	artwork, err := UpdateArtworkDetails(ctx, c.ID, c.Details, c.Secure)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Artwork updated:\n")
	OutArtwork(ctx, *artwork)

	return nil
}
