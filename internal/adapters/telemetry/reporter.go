package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*PhaseReporter)(nil)

// PhaseReporter implements sdktrace.SpanProcessor and logs each finished phase
// with its duration at debug level.
type PhaseReporter struct {
	logger ports.Logger
}

// NewPhaseReporter returns a PhaseReporter writing to logger.
func NewPhaseReporter(logger ports.Logger) *PhaseReporter {
	return &PhaseReporter{logger: logger}
}

// OnStart is called when a span starts.
func (r *PhaseReporter) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if r.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	r.logger.Debug("phase " + s.Name() + " started")
}

// OnEnd is called when a span ends.
func (r *PhaseReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if r.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		r.logger.Debug(fmt.Sprintf("phase %s failed after %s", s.Name(), elapsed))
		return
	}
	r.logger.Debug(fmt.Sprintf("phase %s finished in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (r *PhaseReporter) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *PhaseReporter) Shutdown(_ context.Context) error {
	return nil
}
