package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSessionMetricsExports(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewSessionMetrics(reg)

	metrics.IncCommit("add_text")
	metrics.IncCommit("add_text")
	metrics.IncUndo()
	metrics.SetActiveSessions(3)
	metrics.ObserveSubmission("ok", 120*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "design_commits_total", "op", "add_text"); err != nil {
		t.Fatalf("fetch commits: %v", err)
	} else if got != 2 {
		t.Fatalf("expected commits=2, got %f", got)
	}

	undos := findMetricFamily(mfs, "design_undos_total")
	if undos == nil || len(undos.GetMetric()) == 0 {
		t.Fatal("undo counter not exported")
	}
	if got := undos.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected undos=1, got %f", got)
	}

	active := findMetricFamily(mfs, "design_sessions_active")
	if active == nil || len(active.GetMetric()) == 0 {
		t.Fatal("active gauge not exported")
	}
	if got := active.GetMetric()[0].GetGauge().GetValue(); got != 3 {
		t.Fatalf("expected active=3, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "design_submission_duration_seconds", "outcome", "ok"); err != nil {
		t.Fatalf("fetch submission histogram: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected submission sum > 0, got %f", got)
	}
}

func TestSessionMetricsNilSafe(t *testing.T) {
	var metrics *SessionMetrics
	metrics.IncCommit("add_text")
	metrics.IncUndo()
	metrics.SetActiveSessions(1)
	metrics.ObserveSubmission("ok", time.Second)

	inert := NewSessionMetrics(nil)
	inert.IncCommit("")
	inert.IncUndo()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
