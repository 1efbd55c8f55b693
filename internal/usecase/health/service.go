package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results. Mode tells operators whether
// answers currently come from the remote index or the embedded catalog.
type Report struct {
	Status Status                 `json:"status"`
	Mode   string                 `json:"mode"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	cache CachePinger
	mode  ModeReader
}

// New creates a Service. cache can be nil (in-memory cache, nothing to ping).
func New(cache CachePinger, mode ModeReader) *Service {
	return &Service{cache: cache, mode: mode}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	mode := "remote"
	if s.mode != nil && s.mode.DemoMode() {
		mode = "fallback"
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Mode: mode, Checks: checks}
}
