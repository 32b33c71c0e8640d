package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/buryatvpn/adminpanel/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls trace export. Env keys carry the console prefix.
type Config struct {
	// Endpoint is the OTLP/HTTP collector URL. Empty disables export.
	Endpoint string `env:"OTEL_ENDPOINT"`
	// Enabled switches export off without clearing the endpoint.
	Enabled bool `env:"OTEL_ENABLED" envDefault:"true"`
}

// LoadConfig reads trace export settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnvPrefixed(&cfg, config.EnvPrefix); err != nil {
		return Config{}, fmt.Errorf("load telemetry config: %w", err)
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	return cfg, nil
}

func (c Config) exports() bool {
	return c.Enabled && c.Endpoint != ""
}

// Setup installs the W3C trace-context propagator and, when cfg enables
// export, a batching tracer provider tagged with serviceName.
//
// The returned shutdown flushes pending spans; it is a no-op when export is
// off.
func Setup(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	otel.SetTextMapPropagator(propagation.TraceContext{})
	if !cfg.exports() {
		return noop, nil
	}

	tp, err := newTracerProvider(ctx, serviceName, cfg.Endpoint)
	if err != nil {
		return noop, err
	}
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func newTracerProvider(ctx context.Context, serviceName string, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("trace resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	), nil
}
