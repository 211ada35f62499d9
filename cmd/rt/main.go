// Command rt is a command-line client for Request Tracker's REST 2.0 API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/trackerassist/rt-go/internal/config"
)

func main() {
	app := newRootCommand()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rt:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "rt",
		Usage: "interact with a Request Tracker instance over REST 2.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "RT server URL (overrides config)",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "auth token (overrides config)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every API call to stderr",
			},
		},
		Commands: []*cli.Command{
			newTicketCommand(),
			newQueueCommand(),
			newUserCommand(),
			newAssetCommand(),
		},
	}
}
