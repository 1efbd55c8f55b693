package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockMode struct{ demo bool }

func (m *mockMode) DemoMode() bool { return m.demo }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockMode{})
	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("status = %s, expected %s", report.Status, Healthy)
	}
	if report.Checks["cache"] != CheckOK {
		t.Errorf("cache check = %s, expected ok", report.Checks["cache"])
	}
	if report.Mode != "remote" {
		t.Errorf("mode = %s, expected remote", report.Mode)
	}
}

func TestCheck_CacheDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("refused")}, &mockMode{})
	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("status = %s, expected %s", report.Status, Degraded)
	}
	if report.Checks["cache"] != CheckError {
		t.Errorf("cache check = %s, expected error", report.Checks["cache"])
	}
}

func TestCheck_NilPingerAndDemoMode(t *testing.T) {
	svc := New(nil, &mockMode{demo: true})
	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("status = %s, expected healthy with no checks", report.Status)
	}
	if _, present := report.Checks["cache"]; present {
		t.Error("no cache check expected for in-memory cache")
	}
	if report.Mode != "fallback" {
		t.Errorf("mode = %s, expected fallback", report.Mode)
	}
}
