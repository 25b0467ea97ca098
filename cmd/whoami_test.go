// ABOUTME: Tests for the whoami command
// ABOUTME: Covers restore, revalidation, and invalidated sessions

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestRunWhoami_PrintsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("expected stored token attached, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"name":"Test","email":"test@example.com"}`))
	})
	server := stubBackend(t, mux)
	_, st := newTestSession(t, server.URL, true)

	var out bytes.Buffer
	if code := runWhoami(context.Background(), &out, st); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Test <test@example.com> (id 1)") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunWhoami_NotLoggedIn(t *testing.T) {
	server := stubBackend(t, http.NewServeMux())
	_, st := newTestSession(t, server.URL, false)

	var out bytes.Buffer
	if code := runWhoami(context.Background(), &out, st); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Not logged in.") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunWhoami_RevokedToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	server := stubBackend(t, mux)
	_, st := newTestSession(t, server.URL, true)

	var out bytes.Buffer
	if code := runWhoami(context.Background(), &out, st); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Session is no longer valid") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if st.IsLoggedIn() {
		t.Error("expected session cleared after revoked token")
	}
}
