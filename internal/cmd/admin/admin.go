// Package admin parses admin console flags and launches the service.
package admin

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/buryatvpn/adminpanel/internal/platform/cmd"
	"github.com/buryatvpn/adminpanel/internal/services/admin"
)

// Config holds the admin command configuration. Env keys carry the
// ADMINPANEL_ prefix.
type Config struct {
	HTTPAddr  string  `env:"HTTP_ADDR" envDefault:":8082"`
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"30"`
	RateBurst int     `env:"RATE_BURST" envDefault:"60"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "sustained requests per second (0 disables limiting)")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "request burst size")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin console server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(admin.Config{
			HTTPAddr:  cfg.HTTPAddr,
			RateLimit: cfg.RateLimit,
			RateBurst: cfg.RateBurst,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
