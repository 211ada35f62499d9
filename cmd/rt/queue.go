package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newQueueCommand() *cli.Command {
	return &cli.Command{
		Name:  "queue",
		Usage: "work with queues",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all visible queues",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					result, err := client.Queues.All(ctx)
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
			{
				Name:      "show",
				Usage:     "display a queue",
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
					queue, err := client.Queues.Get(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(queue)
				},
			},
			{
				Name:      "history",
				Usage:     "display a queue's transaction history",
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
					history, err := client.Queues.History(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(history)
				},
			},
			{
				Name:      "create",
				Usage:     "create a queue",
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
					ref, err := client.Queues.Create(ctx, name, fields)
					if err != nil {
						return err
					}
					return printJSON(ref)
				},
			},
			{
				Name:      "update",
				Usage:     "update queue fields",
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
					return client.Queues.Update(ctx, id, fields)
				},
			},
			{
				Name:      "disable",
				Usage:     "disable a queue",
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
					return client.Queues.Disable(ctx, id)
				},
			},
		},
	}
}
