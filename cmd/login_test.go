// ABOUTME: Tests for the login command
// ABOUTME: Covers success output, rejected credentials, and tokenless responses

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestRunLogin_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","user":{"id":1,"name":"Test","email":"test@example.com"}}`))
	})
	server := stubBackend(t, mux)
	_, st := newTestSession(t, server.URL, false)

	var out bytes.Buffer
	if code := runLogin(context.Background(), &out, st, "test@example.com", "secret"); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Logged in as Test <test@example.com>") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunLogin_RejectedCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	server := stubBackend(t, mux)
	_, st := newTestSession(t, server.URL, false)

	var out bytes.Buffer
	if code := runLogin(context.Background(), &out, st, "test@example.com", "wrong"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Invalid credentials") {
		t.Errorf("expected backend message in output, got %q", out.String())
	}
}

func TestRunLogin_TokenlessResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":1,"name":"Test","email":"test@example.com"}}`))
	})
	server := stubBackend(t, mux)
	_, st := newTestSession(t, server.URL, false)

	var out bytes.Buffer
	if code := runLogin(context.Background(), &out, st, "test@example.com", "secret"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "no session token") {
		t.Errorf("expected tokenless warning, got %q", out.String())
	}
}
