package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tecnigestion/tg/internal/session"
)

func TestGetServerURLFromEnv(t *testing.T) {
	t.Setenv("TG_SERVER_URL", "http://custom:1234/api")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != "http://custom:1234/api" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234/api")
	}
}

func TestGetServerURLDefault(t *testing.T) {
	t.Setenv("TG_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != defaultServerURL {
		t.Errorf("url = %q, want %q", url, defaultServerURL)
	}
}

func TestGetServerURLFromSession(t *testing.T) {
	t.Setenv("TG_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	st, err := sessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	if err := st.Save(session.Session{ServerURL: "http://stored:8000/api"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	url := getServerURL()
	if url != "http://stored:8000/api" {
		t.Errorf("url = %q, want %q", url, "http://stored:8000/api")
	}
}

func TestGetTokenFromEnv(t *testing.T) {
	t.Setenv("TG_TOKEN", "env-token")
	t.Setenv("HOME", t.TempDir())

	if tok := getToken(); tok != "env-token" {
		t.Errorf("token = %q, want %q", tok, "env-token")
	}
}

func TestGetTokenFromSession(t *testing.T) {
	t.Setenv("TG_TOKEN", "")
	t.Setenv("HOME", t.TempDir())

	st, err := sessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	if err := st.Save(session.Session{Token: "stored-token"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if tok := getToken(); tok != "stored-token" {
		t.Errorf("token = %q, want %q", tok, "stored-token")
	}
}

func TestEnvTokenRejectionKeepsStoredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer env-token" {
			t.Errorf("Authorization = %q, want env token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Token inválido"}`))
	}))
	defer server.Close()

	t.Setenv("TG_SERVER_URL", server.URL)
	t.Setenv("TG_TOKEN", "env-token")
	t.Setenv("HOME", t.TempDir())

	st, err := sessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	if err := st.Save(session.Session{Token: "stored-token", User: &session.User{ID: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := executeCommand("customers", "list"); err == nil {
		t.Fatal("expected error for rejected token")
	}

	// The stored session never backed the request; it must survive.
	s, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Token != "stored-token" || s.User == nil {
		t.Errorf("session = %+v, want stored token and user intact", s)
	}
}

func TestGetTokenEmpty(t *testing.T) {
	t.Setenv("TG_TOKEN", "")
	t.Setenv("HOME", t.TempDir())

	if tok := getToken(); tok != "" {
		t.Errorf("token = %q, want empty", tok)
	}
}
