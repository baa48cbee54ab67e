// Command mock-ai serves a canned OpenAI compatible completion endpoint so
// the AI routes can be exercised without a provider key. Point ai.base_url
// at http://127.0.0.1:8000/v1.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cmd := &cli.Command{
		Name:  "mock-ai",
		Usage: "Local chat completion stub",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8000", Usage: "Listen address"},
			&cli.DurationFlag{Name: "delay", Usage: "Artificial latency per completion"},
			&cli.BoolFlag{Name: "fail", Usage: "Answer every completion with 500"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			app := newApp(behavior{delay: cmd.Duration("delay"), fail: cmd.Bool("fail")})
			slog.Info("mock ai listening", slog.String("addr", cmd.String("addr")))
			return app.Listen(cmd.String("addr"))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("mock ai failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type behavior struct {
	delay time.Duration
	fail  bool
}
