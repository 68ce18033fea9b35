// Package dto holds the form requests decoded by the handlers, the health
// responses and RFC 9457 problem details for non-HTML error responses.
package dto

// Health status values.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewReadinessResponse turns check results into the readiness body: each
// check reads "ok" or its error text. The bool is false if any check failed.
func NewReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: StatusReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = StatusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = StatusNotReady
	}
	return resp, resp.Status == StatusReady
}
