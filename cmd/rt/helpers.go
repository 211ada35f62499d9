package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/trackerassist/rt-go/internal/config"
	"github.com/trackerassist/rt-go/internal/logging"
	"github.com/trackerassist/rt-go/rt"
)

// buildClient assembles an rt.Client from the config file, environment,
// and command-line overrides, in that order of precedence. Credential-only
// configurations get their session established before the client is handed
// to the command action.
func buildClient(ctx context.Context, cmd *cli.Command) (*rt.Client, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if url := cmd.String("url"); url != "" {
		cfg.Server.URL = url
	}
	if token := cmd.String("token"); token != "" {
		cfg.Auth.Token = token
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientCfg := rt.Config{
		BaseURL:       cfg.Server.URL,
		Token:         cfg.Auth.Token,
		Username:      cfg.Auth.Username,
		Password:      cfg.Auth.Password,
		SkipTLSVerify: cfg.HTTP.SkipTLSVerify,
		Timeout:       cfg.HTTP.Timeout,
		RetryMax:      cfg.HTTP.RetryMax,
		RateLimit:     cfg.Limit.RequestsPerSecond,
		ProxyURL:      cfg.HTTP.ProxyURL,
	}

	if cmd.Bool("verbose") {
		logCfg := logging.DevelopmentConfig()
		logCfg.Level = "debug"
		logger, err := logging.New(logCfg)
		if err != nil {
			return nil, err
		}
		clientCfg.Logger = logger.Logger
	}

	client, err := rt.New(clientCfg)
	if err != nil {
		return nil, err
	}

	if cfg.Auth.Token == "" {
		if err := client.Login(ctx); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// parseFields turns repeated "Name=value" flag values into rt.Fields.
func parseFields(pairs []string) (rt.Fields, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	fields := make(rt.Fields, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q, expected Name=value", pair)
		}
		fields[name] = value
	}
	return fields, nil
}

// splitCustomFields separates CF.{...} entries from plain fields so ticket
// writes can route them into the CustomFields payload.
func splitCustomFields(fields rt.Fields) (plain, custom rt.Fields) {
	for name, value := range fields {
		if strings.HasPrefix(name, "CF.") {
			if custom == nil {
				custom = rt.Fields{}
			}
			custom[name] = value
			continue
		}
		if plain == nil {
			plain = rt.Fields{}
		}
		plain[name] = value
	}
	return plain, custom
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireArg returns the positional argument at index or an error naming it.
func requireArg(cmd *cli.Command, index int, name string) (string, error) {
	arg := cmd.Args().Get(index)
	if arg == "" {
		return "", fmt.Errorf("missing required argument <%s>", name)
	}
	return arg, nil
}

// fieldFlag is the shared repeatable Name=value flag.
func fieldFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "field",
		Aliases: []string{"f"},
		Usage:   "entity field as Name=value (repeatable)",
	}
}
