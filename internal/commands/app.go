package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/requestid"
)

// NewApp builds the formrules command tree. Command output goes to stdout,
// logs go to stderr.
func NewApp(version string, stdout, stderr io.Writer) *cli.Command {
	flags := &Flags{}

	app := &cli.Command{
		Name:      "formrules",
		Usage:     "Inspect, check and publish form validation patterns",
		UsageText: "formrules [global options] command [command options]",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error); overrides FORMRULES_LOG_LEVEL",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json); overrides FORMRULES_LOG_FORMAT",
				Destination: &flags.LogFormat,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := config.Load(&flags.Config); err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			levelName := flags.Config.LogLevel
			if flags.LogLevel != "" {
				levelName = flags.LogLevel
			}
			level, err := logger.ParseLevel(levelName)
			if err != nil {
				return ctx, err
			}

			formatName := flags.Config.LogFormat
			if flags.LogFormat != "" {
				formatName = flags.LogFormat
			}
			format, err := logger.ParseFormat(formatName)
			if err != nil {
				return ctx, err
			}

			flags.Logger = logger.New(
				logger.WithOutput(stderr),
				logger.WithLevel(level),
				logger.WithFormat(format),
				logger.WithService("formrules"),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			return ctx, nil
		},
	}

	NewCheckCmd(flags).Register(app)
	NewExportCmd(flags).Register(app)
	NewServeCmd(flags).Register(app)

	return app
}
