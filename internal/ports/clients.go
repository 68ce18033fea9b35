package ports

import (
	"context"

	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
)

// ContentLoader reads the static content documents the site is built from.
// Implemented by the content adapter; called by the catalog service.
type ContentLoader interface {
	// Load returns the decoded document of the resource. Failures are
	// reported as *domain.LoadError, which unwraps to domain.ErrUnavailable.
	Load(ctx context.Context, res catalog.Resource) (any, error)
}

// SubmissionKind identifies the form a submission comes from.
type SubmissionKind string

const (
	SubmissionBooking SubmissionKind = "booking"
	SubmissionContact SubmissionKind = "contact"
)

// Submission is a form payload handed to a Submitter.
type Submission struct {
	Kind   SubmissionKind
	ID     string
	Fields map[string]string
}

// Submitter delivers form submissions. The site has no real backend, so the
// production implementation simulates latency and transient failure.
type Submitter interface {
	// Submit blocks until the submission is accepted or fails. Transient
	// failures wrap domain.ErrUnavailable.
	Submit(ctx context.Context, sub Submission) error
}

// AssetProbe checks whether a static asset can be downloaded.
type AssetProbe interface {
	// Exists reports whether a HEAD request for path succeeds with a 2xx
	// status. Any transport failure counts as absent.
	Exists(ctx context.Context, path string) bool
}
