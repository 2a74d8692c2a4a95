package email

import (
	"strings"
	"testing"
)

func TestBuildConfirmationEmail(t *testing.T) {
	m := BuildConfirmationEmail(ConfirmationEmailData{
		DisplayName:     "Dana",
		Email:           "dana@example.com",
		ConfirmationURL: "https://app.example.com/api/v1/auth/confirm?token=abc",
	})

	if len(m.To) != 1 || m.To[0] != "dana@example.com" {
		t.Errorf("unexpected recipients: %v", m.To)
	}
	if !strings.Contains(m.Subject, "NeuroLink") {
		t.Errorf("subject missing default app name: %q", m.Subject)
	}
	if !strings.Contains(m.TextBody, "Dana") {
		t.Error("text body missing display name")
	}
	if !strings.Contains(m.HTMLBody, "https://app.example.com/api/v1/auth/confirm?token=abc") {
		t.Error("html body missing confirmation link")
	}
}

func TestBuildConfirmationEmailDefaultsName(t *testing.T) {
	m := BuildConfirmationEmail(ConfirmationEmailData{
		Email:           "x@example.com",
		ConfirmationURL: "https://example.com/confirm",
	})

	if !strings.Contains(m.TextBody, "Hi there,") {
		t.Error("expected fallback greeting when display name is empty")
	}
}

func TestBuildAlertEmail(t *testing.T) {
	m := BuildAlertEmail(AlertEmailData{
		Email:       "caregiver@example.com",
		PatientName: "Arthur",
		AlertType:   "fall",
		AlertText:   "Fall detected in the kitchen",
		OccurredAt:  "Mon, 02 Jan 2006 15:04:05 MST",
	})

	if len(m.To) != 1 || m.To[0] != "caregiver@example.com" {
		t.Errorf("unexpected recipients: %v", m.To)
	}
	if !strings.Contains(m.Subject, "fall") || !strings.Contains(m.Subject, "Arthur") {
		t.Errorf("subject missing alert type or patient name: %q", m.Subject)
	}
	if !strings.Contains(m.TextBody, "Fall detected in the kitchen") {
		t.Error("text body missing alert message")
	}
	if !strings.Contains(m.HTMLBody, "Arthur") {
		t.Error("html body missing patient name")
	}
}

func TestBuildAlertEmailDefaultsPatientName(t *testing.T) {
	m := BuildAlertEmail(AlertEmailData{
		Email:     "caregiver@example.com",
		AlertType: "sos",
	})

	if !strings.Contains(m.Subject, "your patient") {
		t.Errorf("expected fallback patient name in subject: %q", m.Subject)
	}
}
