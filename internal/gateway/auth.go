package gateway

import "github.com/tecnigestion/tg/internal/session"

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        session.User `json:"user"`
}

// Registration is the payload for creating an account.
type Registration struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellidos,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"telefono,omitempty"`
	Company  string `json:"empresa,omitempty"`
	Password string `json:"password"`
}

// Login exchanges credentials for an access token and user profile.
func (c *Client) Login(email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp TokenResponse
	if err := c.post("/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its first session token.
func (c *Client) Register(reg Registration) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.post("/auth/registro", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile() (*session.User, error) {
	var u session.User
	if err := c.get("/auth/perfil", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
