package observe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*metricsImpl, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := newMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return rm
}

func sumValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	found := findMetric(rm, name)
	if found == nil {
		return 0
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64] for %s, got %T", name, found.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

// TestMetrics_TotalCounterIncrements verifies secret.generate.total is incremented.
func TestMetrics_TotalCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGeneration(context.Background(), SecretMeta{Name: "JWT_SECRET", Length: 64}, time.Millisecond, nil)

	rm := collect(t, reader)
	if got := sumValue(t, rm, "secret.generate.total"); got != 1 {
		t.Errorf("expected total 1, got %d", got)
	}
}

// TestMetrics_CharCounterOnSuccess verifies generated characters are counted.
func TestMetrics_CharCounterOnSuccess(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordGeneration(ctx, SecretMeta{Name: "JWT_SECRET", Length: 64}, time.Millisecond, nil)
	m.RecordGeneration(ctx, SecretMeta{Name: "WEBHOOK_SECRET", Length: 32}, time.Millisecond, nil)

	rm := collect(t, reader)
	if got := sumValue(t, rm, "secret.generate.chars"); got != 96 {
		t.Errorf("expected 96 chars, got %d", got)
	}
	if got := sumValue(t, rm, "secret.generate.errors"); got != 0 {
		t.Errorf("expected no errors, got %d", got)
	}
}

// TestMetrics_ErrorCounterOnFailure verifies errors counter incremented on failure.
func TestMetrics_ErrorCounterOnFailure(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGeneration(context.Background(), SecretMeta{Name: "JWT_SECRET", Length: 64}, time.Millisecond, errors.New("boom"))

	rm := collect(t, reader)
	if got := sumValue(t, rm, "secret.generate.errors"); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
	if got := sumValue(t, rm, "secret.generate.chars"); got != 0 {
		t.Errorf("expected no chars on failure, got %d", got)
	}
}

// TestMetrics_DurationHistogramRecords verifies duration is recorded.
func TestMetrics_DurationHistogramRecords(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGeneration(context.Background(), SecretMeta{Name: "A", Length: 8}, 250*time.Millisecond, nil)

	found := findMetric(collect(t, reader), "secret.generate.duration_ms")
	if found == nil {
		t.Fatal("secret.generate.duration_ms metric not found")
	}
	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", found.Data)
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if hist.DataPoints[0].Count != 1 {
		t.Errorf("expected count 1, got %d", hist.DataPoints[0].Count)
	}
	if hist.DataPoints[0].Sum != 250 {
		t.Errorf("expected sum 250, got %f", hist.DataPoints[0].Sum)
	}
}

// TestMetrics_LabelsApplied verifies the secret name attribute is applied.
func TestMetrics_LabelsApplied(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGeneration(context.Background(), SecretMeta{Name: "SECRETS_ENCRYPTION_KEY", Length: 32}, time.Millisecond, nil)

	found := findMetric(collect(t, reader), "secret.generate.total")
	if found == nil {
		t.Fatal("secret.generate.total metric not found")
	}
	sum := found.Data.(metricdata.Sum[int64])
	v, ok := sum.DataPoints[0].Attributes.Value("secret.name")
	if !ok || v.AsString() != "SECRETS_ENCRYPTION_KEY" {
		t.Errorf("expected secret.name='SECRETS_ENCRYPTION_KEY', got %v", v)
	}
}

// TestMetrics_ConcurrentRecording verifies metrics are safe for concurrent use.
func TestMetrics_ConcurrentRecording(t *testing.T) {
	m, reader := newTestMetrics(t)

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			m.RecordGeneration(context.Background(), SecretMeta{Name: "A", Length: 1}, time.Millisecond, nil)
		}()
	}
	wg.Wait()

	if got := sumValue(t, collect(t, reader), "secret.generate.total"); got != numGoroutines {
		t.Errorf("expected count %d, got %d", numGoroutines, got)
	}
}

// findMetric searches for a metric by name in ResourceMetrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}
