package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginStoresSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "tok-123",
			"token_type": "bearer",
			"user": {"id": 1, "nombre": "Ana", "email": "ana@taller.es"}
		}`))
	}))
	defer server.Close()

	t.Setenv("TG_SERVER_URL", server.URL)
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand("login", "ana@taller.es", "-p", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st, err := sessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	s, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Token != "tok-123" {
		t.Errorf("token = %q, want %q", s.Token, "tok-123")
	}
	if s.User == nil || s.User.Email != "ana@taller.es" {
		t.Errorf("user = %+v, want cached profile", s.User)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Email o contraseña incorrectos"}`))
	}))
	defer server.Close()

	t.Setenv("TG_SERVER_URL", server.URL)
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand("login", "ana@taller.es", "-p", "wrong")
	if err == nil {
		t.Fatal("expected error for rejected credentials")
	}

	st, err := sessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	s, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Token != "" {
		t.Error("no session should be stored after a failed login")
	}
}
