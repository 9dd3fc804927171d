package httpserver

import "time"

type Config struct {
	Addr            string        `env:"FORMRULES_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FORMRULES_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FORMRULES_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"FORMRULES_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig applies cfg first, then opts, so explicit options win.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{
		WithAddr(cfg.Addr),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)...)
}
