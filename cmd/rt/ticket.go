package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/trackerassist/rt-go/rt"
)

func newTicketCommand() *cli.Command {
	return &cli.Command{
		Name:  "ticket",
		Usage: "work with tickets",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "display a ticket",
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
					ticket, err := client.Tickets.Get(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(ticket)
				},
			},
			{
				Name:      "history",
				Usage:     "display a ticket's transaction history",
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
					history, err := client.Tickets.History(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(history)
				},
			},
			{
				Name:  "create",
				Usage: "create a ticket",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "subject",
						Aliases:  []string{"s"},
						Usage:    "ticket subject",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "queue",
						Aliases:  []string{"q"},
						Usage:    "target queue name or id",
						Required: true,
					},
					fieldFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fields, err := parseFields(cmd.StringSlice("field"))
					if err != nil {
						return err
					}
					extra, custom := splitCustomFields(fields)

					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					ref, err := client.Tickets.Create(ctx, rt.TicketSpec{
						Subject:      cmd.String("subject"),
						Queue:        cmd.String("queue"),
						CustomFields: custom,
						Extra:        extra,
					})
					if err != nil {
						return err
					}
					return printJSON(ref)
				},
			},
			{
				Name:      "update",
				Usage:     "update ticket fields",
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
					plain, custom := splitCustomFields(fields)

					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					return client.Tickets.Update(ctx, id, plain, custom)
				},
			},
			{
				Name:      "comment",
				Usage:     "add a comment to a ticket",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "message",
						Aliases: []string{"m"},
						Usage:   "comment body",
					},
					&cli.StringFlag{
						Name:  "content-type",
						Usage: "comment MIME type",
						Value: "text/plain",
					},
					&cli.StringSliceFlag{
						Name:    "attach",
						Aliases: []string{"a"},
						Usage:   "file to attach (repeatable)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := requireArg(cmd, 0, "id")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}

					comment := rt.Comment{
						Content:     cmd.String("message"),
						ContentType: cmd.String("content-type"),
					}
					for _, path := range cmd.StringSlice("attach") {
						attachment, err := rt.FileAttachment(path)
						if err != nil {
							return err
						}
						comment.Attachments = append(comment.Attachments, attachment)
					}
					return client.Tickets.Comment(ctx, id, comment)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a ticket",
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
					return client.Tickets.Delete(ctx, id)
				},
			},
			{
				Name:      "search",
				Usage:     "search tickets with TicketSQL",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Value: 1, Usage: "result page"},
					&cli.IntFlag{Name: "per-page", Value: 20, Usage: "results per page"},
					&cli.StringFlag{Name: "order-by", Usage: "sort field"},
					&cli.StringFlag{Name: "order", Usage: "ASC or DESC"},
					&cli.StringSliceFlag{Name: "show", Usage: "extra field to include in results (repeatable)"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					query, err := requireArg(cmd, 0, "query")
					if err != nil {
						return err
					}
					client, err := buildClient(ctx, cmd)
					if err != nil {
						return err
					}
					result, err := client.Tickets.Search(ctx, query, &rt.SearchOptions{
						Page:    int(cmd.Int("page")),
						PerPage: int(cmd.Int("per-page")),
						OrderBy: cmd.String("order-by"),
						Order:   cmd.String("order"),
						Fields:  cmd.StringSlice("show"),
					})
					if err != nil {
						return err
					}
					return printJSON(result)
				},
			},
		},
	}
}
