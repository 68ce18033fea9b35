package handlers_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/contact"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
	"github.com/jsamuelsen11/exclusive-events/mocks"
)

func validContactForm() url.Values {
	return url.Values{
		"name":      {"Sarah Cohen"},
		"email":     {"sarah@example.com"},
		"phone":     {"+33 6 12 34 56 78"},
		"eventType": {"wedding"},
		"message":   {"Nous préparons notre mariage pour juin prochain."},
	}
}

func TestContactSubmit_Valid(t *testing.T) {
	t.Parallel()

	sub := mocks.NewMockSubmitter(t)
	sub.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(s ports.Submission) bool {
		return s.Kind == ports.SubmissionContact && s.Fields[contact.FieldEmail] == "sarah@example.com"
	})).Return(nil).Once()

	v := newVisitor(mocks.NewMockSubmitter(t), sub)
	rec := httptest.NewRecorder()
	handlers.NewContactHandler().Submit(rec, postForm("/contact", validContactForm(), v))

	requireRedirect(t, rec, "/#contact")
	snap := v.Contact.Snapshot()
	assert.Equal(t, app.ContactSubmitted, snap.Status)
	assert.Empty(t, snap.Form.Name, "form is cleared after success")
	assert.True(t, v.State.Snapshot().FormSubmitted)
}

func TestContactSubmit_InvalidKeepsFields(t *testing.T) {
	t.Parallel()

	v := newVisitor(mocks.NewMockSubmitter(t), mocks.NewMockSubmitter(t))
	form := validContactForm()
	form.Set("email", "pas-une-adresse")

	rec := httptest.NewRecorder()
	handlers.NewContactHandler().Submit(rec, postForm("/contact", form, v))

	requireRedirect(t, rec, "/#contact")
	snap := v.Contact.Snapshot()
	assert.Equal(t, app.ContactIdle, snap.Status)
	assert.Equal(t, app.MsgContactInvalid, snap.Banner)
	assert.Contains(t, snap.Errors, contact.FieldEmail)
	assert.Equal(t, "Sarah Cohen", snap.Form.Name)
}

func TestContactSubmit_FailureThenDismissKeepsFields(t *testing.T) {
	t.Parallel()

	sub := mocks.NewMockSubmitter(t)
	sub.EXPECT().Submit(mock.Anything, mock.Anything).Return(domain.ErrUnavailable).Once()

	v := newVisitor(mocks.NewMockSubmitter(t), sub)
	h := handlers.NewContactHandler()
	h.Submit(httptest.NewRecorder(), postForm("/contact", validContactForm(), v))
	assert.Equal(t, app.ContactFailed, v.Contact.Snapshot().Status)

	rec := httptest.NewRecorder()
	h.Dismiss(rec, postForm("/contact/dismiss", nil, v))

	requireRedirect(t, rec, "/#contact")
	snap := v.Contact.Snapshot()
	assert.Equal(t, app.ContactIdle, snap.Status)
	assert.Equal(t, "Sarah Cohen", snap.Form.Name)
}
