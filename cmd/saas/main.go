package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/suse/saas-tools/cmd"
)

var log = logging.Logger("saas")

func main() {
	app := &cli.App{
		Name:  "saas",
		Usage: "Inspect and exercise the marketplace entitlement bridge.",
		Commands: []*cli.Command{
			cmd.ResolveCustomerCmd,
			cmd.EntitlementsCmd,
			cmd.SubscriptionCmd,
			cmd.SimulateSQSCmd,
			cmd.SimulateSNSCmd,
			cmd.VersionCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
