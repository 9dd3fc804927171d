package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/rulesapi"
)

type ServeCmd struct {
	flags *Flags

	addr string
}

func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the pattern table over HTTP",
		UsageText: "formrules serve [--addr ADDR]",
		Description: `Starts a read-only JSON API:

  GET /patterns         every pattern
  GET /patterns/{name}  a single pattern
  GET /healthz          liveness

Stops gracefully on SIGINT or SIGTERM.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address; overrides FORMRULES_HTTP_ADDR",
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := cmd.flags.Logger
	srv := httpserver.NewFromConfig(cmd.flags.Config.HTTP,
		httpserver.WithAddr(cmd.addr),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, rulesapi.Router(log))
}
