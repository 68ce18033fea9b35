package dto_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
)

func TestSlotRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date    string
		wantErr bool
	}{
		{date: "2024-12-25"},
		{date: "", wantErr: true},
		{date: "2024-13-01", wantErr: true},
		{date: "25/12/2024", wantErr: true},
		{date: "2024-12-25T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		err := dto.SlotFromForm(url.Values{"date": {tt.date}}).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Validate(%q) error = %v, want ErrValidation", tt.date, err)
		}
	}
}

func TestConfirmRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		time    string
		wantErr bool
	}{
		{time: ""},
		{time: "14:00"},
		{time: " 09:00 "},
		{time: "13:00", wantErr: true},
		{time: "minuit", wantErr: true},
	}

	for _, tt := range tests {
		err := dto.ConfirmFromForm(url.Values{"time": {tt.time}}).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.time, err, tt.wantErr)
		}
	}
}

func TestContactFromForm(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"name":      {"Sarah"},
		"email":     {"sarah@example.com"},
		"eventType": {"wedding"},
		"message":   {strings.Repeat("é", 6000)},
		"csrf":      {"ignored"},
	}

	got := dto.ContactFromForm(form).Fields

	assert.Equal(t, "Sarah", got["name"])
	assert.Equal(t, "wedding", got["eventType"])
	assert.Len(t, []rune(got["message"]), 5000)
	assert.NotContains(t, got, "csrf")
	_, hasPhone := got["phone"]
	assert.False(t, hasPhone, "absent fields stay absent")
}

func TestCarouselPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "2", want: 2},
		{raw: "-1", want: -1},
		{raw: "abc", want: 0},
	}

	for _, tt := range tests {
		if got := dto.CarouselPosition(url.Values{"t": {tt.raw}}); got != tt.want {
			t.Errorf("CarouselPosition(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/booking/slot", strings.NewReader("date=2024-12-25"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, dto.ParseForm(httptest.NewRecorder(), r))
	assert.Equal(t, "2024-12-25", r.PostForm.Get("date"))

	big := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("message="+strings.Repeat("a", 70<<10)))
	big.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	err := dto.ParseForm(httptest.NewRecorder(), big)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
