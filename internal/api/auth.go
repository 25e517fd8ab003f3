package api

import "context"

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
	mePath       = "/api/auth/me"
)

// Login exchanges credentials for a bearer token. The token is not stored
// by the client; session management is the caller's concern.
func (c *Client) Login(ctx context.Context, creds LoginCredentials) (*TokenResponse, error) {
	var token TokenResponse
	if err := c.post(ctx, loginPath, creds, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates a new account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.post(ctx, registerPath, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the profile of the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, mePath, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
