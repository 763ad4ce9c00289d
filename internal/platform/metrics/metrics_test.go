package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// gathered returns the summed value of every sample of the named counter or
// gauge, restricted to samples carrying label=value when label is set.
func gathered(t *testing.T, m *Metrics, name, label, value string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if label != "" && !hasLabel(metric.GetLabel(), label, value) {
				continue
			}
			sum += metric.GetCounter().GetValue() + metric.GetGauge().GetValue()
		}
	}
	return sum
}

func hasLabel[L interface {
	GetName() string
	GetValue() string
}](labels []L, name, value string) bool {
	for _, l := range labels {
		if l.GetName() == name && l.GetValue() == value {
			return true
		}
	}
	return false
}

func TestMetrics_ObserveRecordAdd(t *testing.T) {
	m := New()
	m.ObserveRecordAdd(true)
	m.ObserveRecordAdd(true)
	m.ObserveRecordAdd(false)

	if got := gathered(t, m, "frogger_records_added_total", "", ""); got != 2 {
		t.Errorf("records added: got %v, want 2", got)
	}
	if got := gathered(t, m, "frogger_records_duplicate_total", "", ""); got != 1 {
		t.Errorf("records duplicate: got %v, want 1", got)
	}
}

func TestMetrics_ObservePositionQuery(t *testing.T) {
	m := New()
	m.ObservePositionQuery("free")
	m.ObservePositionQuery("out_of_range")
	m.ObservePositionQuery("out_of_range")

	if got := gathered(t, m, "frogger_position_queries_total", "state", "out_of_range"); got != 2 {
		t.Errorf("out_of_range queries: got %v, want 2", got)
	}
	if got := gathered(t, m, "frogger_position_queries_total", "state", "free"); got != 1 {
		t.Errorf("free queries: got %v, want 1", got)
	}
}

func TestMetrics_Handler_updatesGauges(t *testing.T) {
	m := New()
	h := m.Handler(func() {
		m.SetRecords(3)
		m.SetLanes(2)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"frogger_records 3", "frogger_lanes 2"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in scrape output:\n%s", want, body)
		}
	}
}

func TestRequestMiddleware(t *testing.T) {
	m := New()
	mw := RequestMiddleware(m)

	ok := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	notFound := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	notFound.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := gathered(t, m, "frogger_requests_total", "", ""); got != 2 {
		t.Errorf("requests: got %v, want 2", got)
	}
	if got := gathered(t, m, "frogger_errors_total", "", ""); got != 1 {
		t.Errorf("errors: got %v, want 1", got)
	}
}
