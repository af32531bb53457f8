package cmd

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ProvideLogger builds the process-wide *slog.Logger on top of the
// OpenTelemetry logs bridge, so every log record carries the engine's
// resource attributes and any trace context already on ctx.
func ProvideLogger() (*slog.Logger, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceNamespace(ServiceNamespace),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(sdklog.WithResource(res))
	handler := otelslog.NewHandler(ServiceName, otelslog.WithLoggerProvider(provider))

	return slog.New(handler), nil
}

// ProvideWatermillLogger adapts the shared slog.Logger to watermill's
// logging interface so router and pub/sub events land in the same stream.
func ProvideWatermillLogger(logger *slog.Logger) watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logger)
}
