package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethantsaox/jobflow/internal/models"
)

// GetUser fetches the authenticated account profile.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateGoals sets the account's daily and weekly goals.
func (c *Client) UpdateGoals(ctx context.Context, daily, weekly int) (*User, error) {
	var u User
	payload := GoalsUpdate{DailyGoal: daily, WeeklyGoal: weekly}
	if err := c.do(ctx, http.MethodPut, "/users/me/goals", payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Summary fetches the account analytics summary. The service already
// returns the canonical shape.
func (c *Client) Summary(ctx context.Context) (*models.Summary, error) {
	var s models.Summary
	if err := c.get(ctx, "/analytics/summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Timeline fetches per-day application counts for the trailing window.
func (c *Client) Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error) {
	var points []models.TimelinePoint
	path := fmt.Sprintf("/analytics/timeline?days=%d", days)
	if err := c.get(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// ListAchievements fetches the account's achievement catalog and state.
func (c *Client) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := c.get(ctx, "/achievements", &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}
