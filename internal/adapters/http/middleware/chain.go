package middleware

import (
	"net/http"
	"slices"
)

// Chain folds middlewares into one, the first being outermost. Nil entries
// are skipped so optional layers can be passed unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
