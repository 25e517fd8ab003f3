package api

import "context"

const settingsPath = "/api/users/settings"

// Settings fetches the authenticated user's settings record.
func (c *Client) Settings(ctx context.Context) (*UserSettings, error) {
	var settings UserSettings
	if err := c.get(ctx, settingsPath, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings applies a partial update to the user's settings.
func (c *Client) UpdateSettings(ctx context.Context, req UserSettingsUpdate) (*UserSettings, error) {
	var settings UserSettings
	if err := c.put(ctx, settingsPath, req, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
