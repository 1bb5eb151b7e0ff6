package cli

import "github.com/Sirdoh/NFTArtGallery/lib/out"

// Help prints the standard help message.
func Help() {
	out.Normf("\nUsage: ")
	out.Boldf("curator <command> [<args> ...]\n")
	out.Normf("\n")
	out.Normf("Registry of digital artworks with minting, transfer and curation.\n")
	out.Normf("\n")
	out.Normf("Commands:\n")

	out.Boldf("  help [<command>]\n")
	out.Normf("    Show help for a command.\n")
	out.Valuf("    curator help mint\n")
	out.Normf("\n")

	out.Boldf("  mint <details> [<details> ...]\n")
	out.Normf("    Mint one artwork, or a batch of artworks.\n")
	out.Valuf("    curator mint \"Sunset over sand dunes, 2016\"\n")
	out.Normf("\n")

	out.Boldf("  transfer <id> from <user>\n")
	out.Normf("    Receive an artwork from its current owner.\n")
	out.Valuf("    curator transfer 7 from von.neumann\n")
	out.Normf("\n")

	out.Boldf("  update [secure] <id> <details>\n")
	out.Normf("    Update the details of an artwork you own.\n")
	out.Valuf("    curator update 7 \"Sunset over sand dunes, 2016 (restored)\"\n")
	out.Normf("\n")

	out.Boldf("  show <id> [<id> ...]\n")
	out.Normf("    Show one or more artworks.\n")
	out.Valuf("    curator show 7 8 9\n")
	out.Normf("\n")

	out.Boldf("  list <object>\n")
	out.Normf("    List artworks, transferred artworks or pages.\n")
	out.Valuf("    curator list artworks\n")
	out.Normf("\n")

	out.Boldf("  registry\n")
	out.Normf("    Show the registry state of the gallery.\n")
	out.Valuf("    curator registry\n")
	out.Normf("\n")

	out.Boldf("  login\n")
	out.Normf("    Login to a gallery (logs the current user out).\n")
	out.Valuf("    curator login\n")
	out.Normf("\n")
}
