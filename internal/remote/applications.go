package remote

import (
	"context"
	"net/http"
)

// ListApplications fetches every application on the account.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.get(ctx, "/job-applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApplication fetches one application by id.
func (c *Client) GetApplication(ctx context.Context, id string) (*Application, error) {
	var app Application
	if err := c.get(ctx, "/job-applications/"+id, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication posts a new application and returns the stored record.
func (c *Client) CreateApplication(ctx context.Context, app Application) (*Application, error) {
	var created Application
	if err := c.do(ctx, http.MethodPost, "/job-applications", app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateApplication replaces an application's fields.
func (c *Client) UpdateApplication(ctx context.Context, id string, app Application) (*Application, error) {
	var updated Application
	if err := c.do(ctx, http.MethodPut, "/job-applications/"+id, app, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteApplication removes an application.
func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/job-applications/"+id, nil, nil)
}
