package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// ErrCheckFailed is returned when the value does not satisfy every selected pattern.
var ErrCheckFailed = errors.New("value failed validation")

type CheckCmd struct {
	flags *Flags

	patterns []string
	value    string
}

func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Check a value against validation patterns",
		UsageText: "formrules check [--pattern NAME]... (--value=VALUE | VALUE)",
		Description: `Applies the named patterns (all patterns when none are given) and prints
"ok" or one "pattern: message" line per failure. Exits non-zero on failure.

Empty positional arguments are dropped by the argument parser; check the
empty string with --value= or after a "--" separator.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "pattern",
				Aliases:     []string{"p"},
				Usage:       "pattern name to apply; repeatable",
				Destination: &cmd.patterns,
			},
			&cli.StringFlag{
				Name:        "value",
				Usage:       "candidate to check; may be empty",
				Destination: &cmd.value,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	value, err := cmd.candidate(c)
	if err != nil {
		return err
	}

	names := cmd.patterns
	if len(names) == 0 {
		names = validator.Names()
	}

	rules := make([]validator.Rule, 0, len(names))
	for _, name := range names {
		p, ok := validator.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s (known: %v)", validator.ErrUnknownPattern, name, validator.Names())
		}
		rules = append(rules, p.Rule(name, value))
	}

	out := c.Root().Writer
	verrs := validator.ExtractValidationErrors(validator.Apply(rules...))
	if verrs.IsEmpty() {
		_, _ = fmt.Fprintln(out, "ok")
		return nil
	}

	for _, e := range verrs {
		_, _ = fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message)
	}
	cmd.flags.Logger.DebugContext(ctx, "check failed",
		slog.Int("failures", len(verrs)),
		slog.Any("patterns", verrs.Fields()),
	)
	return ErrCheckFailed
}

// candidate returns --value when set, otherwise the single positional argument.
func (cmd *CheckCmd) candidate(c *cli.Command) (string, error) {
	if c.IsSet("value") {
		if c.Args().Len() != 0 {
			return "", fmt.Errorf("check: --value and a positional value are mutually exclusive")
		}
		return cmd.value, nil
	}
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("check: expected exactly one value, got %d", c.Args().Len())
	}
	return c.Args().First(), nil
}
