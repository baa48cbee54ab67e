package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "resume-builder",
		Usage:  "Resume builder API: validation, export-readiness checks and PDF export",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{Name: "serve", Usage: "Run the HTTP API (default)", Action: serve},
			{Name: "migrate", Usage: "Apply pending Postgres migrations", Action: migrate},
			{Name: "seed", Usage: "Load the built-in templates and blog posts", Action: seed},
			{
				Name:   "promote-admin",
				Usage:  "Grant the admin role to an existing account",
				Action: promoteAdmin,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Account email", Required: true},
				},
			},
			{
				Name:   "create-admin",
				Usage:  "Create an admin account, prompting for its password",
				Action: createAdmin,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Account email", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Display name", Value: "Admin"},
				},
			},
			{Name: "mcp", Usage: "Serve the validation tools over MCP stdio", Action: serveMCP},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
