package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// counterValue はレジストリから指定名のカウンタ値を取得するヘルパー。
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	for _, mf := range metrics {
		if mf.GetName() == name {
			if len(mf.GetMetric()) != 1 {
				t.Fatalf("expected 1 metric for %s, got %d", name, len(mf.GetMetric()))
			}
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}

	t.Fatalf("metric %s not found", name)
	return 0
}

// TestRecordHTTPRequest_IncrementsCounterByLabel はラベル別にカウントされることを検証する。
func TestRecordHTTPRequest_IncrementsCounterByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest("GET", "/api/campaigns", 200)
	c.RecordHTTPRequest("GET", "/api/campaigns", 200)
	c.RecordHTTPRequest("POST", "/api/campaigns", 201)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "campman_http_requests_total" {
			found = true
			if len(mf.GetMetric()) != 2 {
				t.Fatalf("expected 2 label combinations, got %d", len(mf.GetMetric()))
			}
		}
	}
	if !found {
		t.Error("campman_http_requests_total metric not found")
	}
}

// TestRecordHTTPLatency_ObservesHistogram はレイテンシがヒストグラムに記録されることを検証する。
func TestRecordHTTPLatency_ObservesHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPLatency("/api/campaigns", 120*time.Millisecond)
	c.RecordHTTPLatency("/api/campaigns", 80*time.Millisecond)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "campman_http_request_duration_seconds" {
			found = true
			count := mf.GetMetric()[0].GetHistogram().GetSampleCount()
			if count != 2 {
				t.Errorf("sample count = %d, want 2", count)
			}
		}
	}
	if !found {
		t.Error("campman_http_request_duration_seconds metric not found")
	}
}

// TestDomainCounters_Increment はドメインカウンタが増加することを検証する。
func TestDomainCounters_Increment(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordUserRegistered()
	c.RecordLoginSuccess()
	c.RecordLoginFailure()
	c.RecordLoginFailure()
	c.RecordCampaignCreated()
	c.RecordCampaignCreated()
	c.RecordCampaignCreated()
	c.RecordCampaignDeleted()

	if v := counterValue(t, reg, "campman_users_registered_total"); v != 1 {
		t.Errorf("users_registered_total = %v, want 1", v)
	}
	if v := counterValue(t, reg, "campman_login_success_total"); v != 1 {
		t.Errorf("login_success_total = %v, want 1", v)
	}
	if v := counterValue(t, reg, "campman_login_failure_total"); v != 2 {
		t.Errorf("login_failure_total = %v, want 2", v)
	}
	if v := counterValue(t, reg, "campman_campaigns_created_total"); v != 3 {
		t.Errorf("campaigns_created_total = %v, want 3", v)
	}
	if v := counterValue(t, reg, "campman_campaigns_deleted_total"); v != 1 {
		t.Errorf("campaigns_deleted_total = %v, want 1", v)
	}
}
