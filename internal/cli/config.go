package cli

import (
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/tecnigestion/tg/internal/session"
)

// defaultServerURL is used when nothing else configures the API.
const defaultServerURL = "http://localhost:8000/api"

var loadEnvOnce sync.Once

// loadEnv reads a .env file once, if present, before env lookups.
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// sessionStore opens the session file at its default location.
func sessionStore() (*session.Store, error) {
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	return session.NewStore(path), nil
}

// getServerURL returns the API base URL from the --server flag, env
// var, stored session, or default, in that order.
func getServerURL() string {
	loadEnv()
	if flagServer != "" {
		return flagServer
	}
	if v := os.Getenv("TG_SERVER_URL"); v != "" {
		return v
	}
	if st, err := sessionStore(); err == nil {
		if s, err := st.Load(); err == nil && s.ServerURL != "" {
			return s.ServerURL
		}
	}
	return defaultServerURL
}

// envToken returns the access token from the environment, if any.
func envToken() string {
	loadEnv()
	return os.Getenv("TG_TOKEN")
}

// getToken returns the access token from env var or stored session.
func getToken() string {
	if v := envToken(); v != "" {
		return v
	}
	if st, err := sessionStore(); err == nil {
		if s, err := st.Load(); err == nil {
			return s.Token
		}
	}
	return ""
}
