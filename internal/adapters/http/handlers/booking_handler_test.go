package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
	"github.com/jsamuelsen11/exclusive-events/mocks"
)

func bookingHandler(t *testing.T) *handlers.BookingHandler {
	t.Helper()
	svc := mocks.NewMockCatalogService(t)
	svc.EXPECT().Catalog().Return(testCatalog()).Maybe()
	return handlers.NewBookingHandler(svc)
}

func TestSelectSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		date     string
		wantDate string
	}{
		{name: "available weekend", date: "2024-12-25", wantDate: "2024-12-25"},
		{name: "unavailable holiday", date: "2024-12-26", wantDate: ""},
		{name: "booked weekday", date: "2024-12-27", wantDate: ""},
		{name: "not in calendar", date: "2025-01-01", wantDate: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newVisitor(mocks.NewMockSubmitter(t), mocks.NewMockSubmitter(t))
			rec := httptest.NewRecorder()
			bookingHandler(t).SelectSlot(rec, postForm("/booking/slot", url.Values{"date": {tt.date}}, v))

			requireRedirect(t, rec, "/#calendar")
			if got := v.Booking.Snapshot().SelectedDate; got != tt.wantDate {
				t.Errorf("SelectedDate = %q, want %q", got, tt.wantDate)
			}
		})
	}
}

func TestSelectSlot_MalformedDate(t *testing.T) {
	t.Parallel()

	v := newVisitor(mocks.NewMockSubmitter(t), mocks.NewMockSubmitter(t))
	rec := httptest.NewRecorder()
	bookingHandler(t).SelectSlot(rec, postForm("/booking/slot", url.Values{"date": {"25/12/2024"}}, v))

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Empty(t, v.Booking.Snapshot().SelectedDate)
}

func TestSelectSlot_NoVisitor(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	bookingHandler(t).SelectSlot(rec, postForm("/booking/slot", url.Values{"date": {"2024-12-25"}}, nil))

	requireStatus(t, rec, http.StatusInternalServerError)
}

func TestConfirm_SubmitsAndWaits(t *testing.T) {
	t.Parallel()

	sub := mocks.NewMockSubmitter(t)
	sub.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(s ports.Submission) bool {
		return s.Kind == ports.SubmissionBooking && s.Fields["date"] == "2024-12-25" && s.Fields["time"] == "14:00"
	})).Return(nil).Once()

	v := newVisitor(sub, mocks.NewMockSubmitter(t))
	h := bookingHandler(t)
	v.Booking.SelectSlot(testCatalog().Calendar, "2024-12-25")

	rec := httptest.NewRecorder()
	h.Confirm(rec, postForm("/booking/confirm", url.Values{"time": {"14:00"}}, v))

	requireRedirect(t, rec, "/#calendar")
	snap := v.Booking.Snapshot()
	assert.Equal(t, app.BookingSuccess, snap.Status)
	assert.Contains(t, snap.Message, "14:00")
}

func TestConfirm_SubmissionFailure(t *testing.T) {
	t.Parallel()

	sub := mocks.NewMockSubmitter(t)
	sub.EXPECT().Submit(mock.Anything, mock.Anything).Return(domain.ErrUnavailable).Once()

	v := newVisitor(sub, mocks.NewMockSubmitter(t))
	v.Booking.SelectSlot(testCatalog().Calendar, "2024-12-25")

	rec := httptest.NewRecorder()
	bookingHandler(t).Confirm(rec, postForm("/booking/confirm", url.Values{"time": {"10:00"}}, v))

	requireRedirect(t, rec, "/#calendar")
	snap := v.Booking.Snapshot()
	assert.Equal(t, app.BookingError, snap.Status)
	assert.Equal(t, app.MsgBookingFailed, snap.Message)
}

func TestConfirm_IncompleteSelection(t *testing.T) {
	t.Parallel()

	v := newVisitor(mocks.NewMockSubmitter(t), mocks.NewMockSubmitter(t))

	rec := httptest.NewRecorder()
	bookingHandler(t).Confirm(rec, postForm("/booking/confirm", url.Values{"time": {""}}, v))

	requireRedirect(t, rec, "/#calendar")
	snap := v.Booking.Snapshot()
	assert.Equal(t, app.BookingError, snap.Status)
	assert.Equal(t, app.MsgBookingIncomplete, snap.Message)
}

func TestConfirm_UnknownTime(t *testing.T) {
	t.Parallel()

	v := newVisitor(mocks.NewMockSubmitter(t), mocks.NewMockSubmitter(t))

	rec := httptest.NewRecorder()
	bookingHandler(t).Confirm(rec, postForm("/booking/confirm", url.Values{"time": {"13:00"}}, v))

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, app.BookingIdle, v.Booking.Snapshot().Status)
}

func TestReset_ClearsSettledBooking(t *testing.T) {
	t.Parallel()

	sub := mocks.NewMockSubmitter(t)
	sub.EXPECT().Submit(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	v := newVisitor(sub, mocks.NewMockSubmitter(t))
	h := bookingHandler(t)
	v.Booking.SelectSlot(testCatalog().Calendar, "2024-12-25")
	h.Confirm(httptest.NewRecorder(), postForm("/booking/confirm", url.Values{"time": {"16:00"}}, v))

	rec := httptest.NewRecorder()
	h.Reset(rec, postForm("/booking/reset", nil, v))

	requireRedirect(t, rec, "/#calendar")
	snap := v.Booking.Snapshot()
	assert.Equal(t, app.BookingIdle, snap.Status)
	assert.Empty(t, snap.SelectedDate)
	assert.Empty(t, snap.SelectedTime)
}
