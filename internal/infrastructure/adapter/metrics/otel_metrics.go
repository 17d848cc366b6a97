package metrics

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultMeterName is used when the configuration does not name a meter
const DefaultMeterName = "ledger"

// OtelLedgerMetrics implements core.LedgerMetrics with OpenTelemetry counters
type OtelLedgerMetrics struct {
	transfers    metric.Int64Counter
	usersCreated metric.Int64Counter
	usersSkipped metric.Int64Counter
}

// NewOtelLedgerMetrics creates the ledger counters on the given provider.
// A nil provider falls back to the global one.
func NewOtelLedgerMetrics(provider metric.MeterProvider, meterName string) (*OtelLedgerMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	if meterName == "" {
		meterName = DefaultMeterName
	}

	meter := provider.Meter(meterName)

	var (
		m   OtelLedgerMetrics
		err error
	)

	m.transfers, err = meter.Int64Counter(
		"ledger.transfers",
		metric.WithDescription("Number of transfer attempts by outcome"),
		metric.WithUnit("{transfer}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger.transfers counter: %w", err)
	}

	m.usersCreated, err = meter.Int64Counter(
		"ledger.users.created",
		metric.WithDescription("Number of users created"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger.users.created counter: %w", err)
	}

	m.usersSkipped, err = meter.Int64Counter(
		"ledger.users.skipped",
		metric.WithDescription("Number of batch candidates skipped for a registered email or an invalid balance"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger.users.skipped counter: %w", err)
	}

	return &m, nil
}

// NewNoopLedgerMetrics returns counters that record nothing
func NewNoopLedgerMetrics() *OtelLedgerMetrics {
	// the noop provider never fails to create instruments
	m, _ := NewOtelLedgerMetrics(noop.NewMeterProvider(), DefaultMeterName)
	return m
}

// RecordTransfer counts one transfer attempt
func (m *OtelLedgerMetrics) RecordTransfer(ctx context.Context, outcome core.TransferOutcome) {
	m.transfers.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

// RecordUsersCreated counts created users
func (m *OtelLedgerMetrics) RecordUsersCreated(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	m.usersCreated.Add(ctx, int64(count))
}

// RecordUsersSkipped counts skipped batch candidates
func (m *OtelLedgerMetrics) RecordUsersSkipped(ctx context.Context, count int) {
	if count <= 0 {
		return
	}
	m.usersSkipped.Add(ctx, int64(count))
}
