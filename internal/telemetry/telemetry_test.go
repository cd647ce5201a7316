package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestSetupDisabledInstallsNoop(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, false)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	defer shutdown(ctx)

	_, span := Tracer("test").Start(ctx, "span")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("disabled telemetry should produce non-recording spans")
	}
}

func TestRecordError(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "span")
	defer span.End()

	// Neither call may panic on a non-recording span.
	RecordError(span, nil)
	RecordError(span, errors.New("boom"))
}
