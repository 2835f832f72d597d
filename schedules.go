package quads

import (
	"context"
	"net/url"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

// GetSchedules returns schedules matching filter, e.g. host or cloud.
func (c *Client) GetSchedules(ctx context.Context, filter url.Values) ([]Schedule, error) {
	return call(c, func(conn api.Conn) ([]Schedule, error) {
		return api.ListSchedules(ctx, conn, filter)
	})
}

// GetCurrentSchedules returns schedules active now, or at filter's date.
func (c *Client) GetCurrentSchedules(ctx context.Context, filter url.Values) ([]Schedule, error) {
	return call(c, func(conn api.Conn) ([]Schedule, error) {
		return api.ListCurrentSchedules(ctx, conn, filter)
	})
}

// GetFutureSchedules returns schedules that have not started yet.
func (c *Client) GetFutureSchedules(ctx context.Context, filter url.Values) ([]Schedule, error) {
	return call(c, func(conn api.Conn) ([]Schedule, error) {
		return api.ListFutureSchedules(ctx, conn, filter)
	})
}

func (c *Client) GetSchedule(ctx context.Context, id int) (*Schedule, error) {
	return call(c, func(conn api.Conn) (*Schedule, error) {
		return api.GetSchedule(ctx, conn, id)
	})
}

// InsertSchedule books req.Hostname into req.Cloud between Start and End.
func (c *Client) InsertSchedule(ctx context.Context, req CreateScheduleRequest) (*Schedule, error) {
	return call(c, func(conn api.Conn) (*Schedule, error) {
		return api.CreateSchedule(ctx, conn, req)
	})
}

func (c *Client) UpdateSchedule(ctx context.Context, id int, req UpdateScheduleRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateSchedule(ctx, conn, id, req)
	})
}

func (c *Client) RemoveSchedule(ctx context.Context, id int) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveSchedule(ctx, conn, id)
	})
}
