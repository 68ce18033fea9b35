package ports

import "context"

// HealthChecker reports on one dependency, such as the content directory or
// the asset host.
type HealthChecker interface {
	// Name keys the checker's result in readiness reports.
	Name() string
	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
