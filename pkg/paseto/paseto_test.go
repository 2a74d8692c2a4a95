package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "neurolink-test",
		Audience:   "neurolink-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("expected access token type, got %q", claims.Type)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("expected session id %s, got %v", sessionID, claims.SessionID)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestIssueRefreshCarriesType(t *testing.T) {
	m := newTestManager(t)

	tok, err := m.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("expected refresh token type, got %q", claims.Type)
	}
	if claims.SessionID != nil {
		t.Errorf("expected nil session id, got %v", claims.SessionID)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	a := newTestManager(t)
	b := newTestManager(t)

	tok, err := a.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := b.Verify(tok); err == nil {
		t.Error("expected verification to fail with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Error("expected verification to fail for malformed token")
	}
}
