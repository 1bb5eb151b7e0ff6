package command

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmLogin is the command name.
	CmdNmLogin cli.CmdName = "login"
)

func init() {
	cli.Registrar[CmdNmLogin] = NewLogin
}

// Login logs the user into a gallery.
type Login struct {
}

// NewLogin constructs and initializes the command.
func NewLogin() cli.Command {
	return &Login{}
}

// Name returns the command name.
func (c *Login) Name() cli.CmdName {
	return CmdNmLogin
}

// Help prints out the help message for the command.
func (c *Login) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator login\n")
	out.Normf("\n")
	out.Normf("  Logging in will store your credentials locally under:\n")
	out.Valuf("  ~/.gallery/credentials-" + string(env.Get(ctx).Environment) + "\n")
	out.Normf("\n")
	out.Normf("  The credentials of your gallery are composed of your user address (of the form \n  ")
	out.Valuf("von.neumann@ias.edu")
	out.Normf(" where ")
	out.Valuf("ias.edu")
	out.Normf(" is your gallery) along with your password.\n")
	out.Normf("\n")
	out.Normf("  Accounts are created by the gallery administrator using: ")
	out.Boldf("gallery -action=create_user")
	out.Normf("\n\n")
}

// Parse parses the arguments passed to the command.
func (c *Login) Parse(
	ctx context.Context,
	args []string,
) error {
	return nil
}

// Execute the command or return a human-friendly error.
func (c *Login) Execute(
	ctx context.Context,
) error {

	reader := bufio.NewReader(os.Stdin)

	out.Normf("    Address []: ")
	address, _ := reader.ReadString('\n')

	out.Normf("    Password []: ")
	password, _ := reader.ReadString('\n')

	out.Normf("Is the information correct? [Y/n]: ")
	confirmation, _ := reader.ReadString('\n')
	confirmation = strings.TrimSpace(confirmation)
	if confirmation != "" && confirmation != "Y" {
		return errors.Trace(errors.Newf("Login aborted by user."))
	}

	err := cli.Login(ctx,
		strings.TrimSpace(address), strings.TrimSpace(password))
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
