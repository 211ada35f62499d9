package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newAssetCommand() *cli.Command {
	return &cli.Command{
		Name:  "asset",
		Usage: "work with assets",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "display an asset",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					asset, err := client.Assets.Get(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(asset)
				},
			},
			{
				Name:      "history",
				Usage:     "display an asset's transaction history",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					history, err := client.Assets.History(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(history)
				},
			},
			{
				Name:      "create",
				Usage:     "create an asset",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{fieldFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name, err := requireArg(cmd, 0, "name")
					if err != nil {
						return err
					}
					fields, err := parseFields(cmd.StringSlice("field"))
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					ref, err := client.Assets.Create(ctx, name, fields)
					if err != nil {
						return err
					}
					return printJSON(ref)
				},
			},
			{
				Name:      "update",
				Usage:     "update asset fields",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{fieldFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					fields, err := parseFields(cmd.StringSlice("field"))
					if err != nil {
						return err
					}
					if len(fields) == 0 {
						return fmt.Errorf("nothing to update, pass at least one --field")
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					return client.Assets.Update(ctx, id, fields)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an asset",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					return client.Assets.Delete(ctx, id)
				},
			},
		},
	}
}
