package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "work with users",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "display a user",
				ArgsUsage: "<id|username>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					user, err := client.Users.Get(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(user)
				},
			},
			{
				Name:      "history",
				Usage:     "display a user's transaction history",
				ArgsUsage: "<id|username>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					history, err := client.Users.History(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(history)
				},
			},
			{
				Name:      "create",
				Usage:     "create a user",
				ArgsUsage: "<username>",
				Flags:     []cli.Flag{fieldFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					username, err := requireArg(cmd, 0, "username")
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
					ref, err := client.Users.Create(ctx, username, fields)
					if err != nil {
						return err
					}
					return printJSON(ref)
				},
			},
			{
				Name:      "update",
				Usage:     "update user fields",
				ArgsUsage: "<id|username>",
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
					return client.Users.Update(ctx, id, fields)
				},
			},
			{
				Name:      "disable",
				Usage:     "disable a user",
				ArgsUsage: "<id|username>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					return client.Users.Disable(ctx, id)
				},
			},
		},
	}
}
