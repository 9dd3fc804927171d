package commands

import (
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/httpserver"
)

// Config is read from the environment (and an optional .env file) before any
// command runs. Global flags take precedence over it.
type Config struct {
	LogLevel  string `env:"FORMRULES_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMRULES_LOG_FORMAT" envDefault:"text"`
	HTTP      httpserver.Config
}

// Flags holds global flag values plus the state the Before hook prepares
// for subcommands.
type Flags struct {
	LogLevel  string
	LogFormat string

	Config Config
	Logger *slog.Logger
}
