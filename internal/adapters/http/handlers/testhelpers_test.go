package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/app/session"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/testimonial"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// noTimers keeps settled flows on display for the whole test.
func noTimers(time.Duration, func()) func() bool {
	return func() bool { return true }
}

func newVisitor(booking, contact ports.Submitter) *session.Visitor {
	return session.NewVisitor("visitor-0001", booking, contact,
		app.WithAfterFunc(noTimers),
		app.WithIDGenerator(func() string { return "sub-1" }),
	)
}

func testCatalog() *catalog.Catalog {
	c := catalog.Empty()
	c.Calendar = availability.Calendar{
		Slots: []availability.Slot{
			{Date: "2024-12-25", Available: true, Type: availability.TypeWeekend},
			{Date: "2024-12-26", Available: false, Type: availability.TypeHoliday},
			{Date: "2024-12-27", Available: true, Type: "weekday"},
		},
		Booked: availability.BookedDates{"2024-12-27"},
	}
	c.Testimonials = []testimonial.Testimonial{
		{ID: "t1", Name: "Sarah", Rating: 5, Comment: "Magnifique", Visible: true},
		{ID: "t2", Name: "David", Rating: 4, Comment: "Parfait", Visible: true},
	}
	return c
}

// postForm builds a urlencoded POST bound to v. A nil v leaves the request
// without a visitor.
func postForm(path string, form url.Values, v *session.Visitor) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if v != nil {
		r = r.WithContext(middleware.WithVisitor(r.Context(), v))
	}
	return r
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	requireStatus(t, rec, http.StatusSeeOther)
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}
