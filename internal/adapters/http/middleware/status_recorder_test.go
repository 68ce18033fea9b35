package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		do         func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
		wantSent   bool
	}{
		{
			name:       "nothing written",
			do:         func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "implicit ok",
			do:         func(w http.ResponseWriter) { _, _ = w.Write([]byte("<html>")) },
			wantStatus: http.StatusOK,
			wantBytes:  6,
			wantSent:   true,
		},
		{
			name: "redirect then body",
			do: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusSeeOther)
				_, _ = w.Write([]byte("see"))
			},
			wantStatus: http.StatusSeeOther,
			wantBytes:  3,
			wantSent:   true,
		},
		{
			name: "second status ignored",
			do: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
			wantSent:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			s := record(rec)
			tt.do(s)

			if s.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", s.status, tt.wantStatus)
			}
			if s.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", s.bytes, tt.wantBytes)
			}
			if s.written != tt.wantSent {
				t.Errorf("written = %v, want %v", s.written, tt.wantSent)
			}
			if tt.wantSent && rec.Code != tt.wantStatus {
				t.Errorf("forwarded status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := record(rec).Unwrap(); got != rec {
		t.Errorf("Unwrap() = %v, want the wrapped recorder", got)
	}
	if err := http.NewResponseController(record(rec)).Flush(); err != nil {
		t.Errorf("Flush through recorder: %v", err)
	}
}
