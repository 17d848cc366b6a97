package metrics

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// Exporter names accepted by NewMeterProvider
const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
)

// ProviderConfig selects where recorded metrics are exported
type ProviderConfig struct {
	ServiceName    string
	Environment    string
	Exporter       string
	Endpoint       string        // OTLP gRPC collector, host:port
	ExportInterval time.Duration // zero keeps the SDK default
	Writer         io.Writer     // stdout exporter target, os.Stdout when nil
}

// NewMeterProvider builds an SDK meter provider that periodically pushes to the
// configured exporter. Callers own the provider and must Shutdown it to flush.
func NewMeterProvider(ctx context.Context, cfg ProviderConfig) (*sdkmetric.MeterProvider, error) {
	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.ExportInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.ExportInterval))
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(newResource(cfg)),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
	), nil
}

func newExporter(ctx context.Context, cfg ProviderConfig) (sdkmetric.Exporter, error) {
	switch cfg.Exporter {
	case ExporterOTLP:
		exp, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create otlp metric exporter: %w", err)
		}
		return exp, nil

	case ExporterStdout:
		var opts []stdoutmetric.Option
		if cfg.Writer != nil {
			opts = append(opts, stdoutmetric.WithWriter(cfg.Writer))
		}
		exp, err := stdoutmetric.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		return exp, nil

	default:
		return nil, fmt.Errorf("unknown metric exporter %q", cfg.Exporter)
	}
}

func newResource(cfg ProviderConfig) *sdkresource.Resource {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultMeterName
	}

	return sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}
