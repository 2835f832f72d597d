package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// ListSchedules returns schedules matching the optional filter.
func ListSchedules(ctx context.Context, c Conn, filter url.Values) ([]types.Schedule, error) {
	return getList[types.Schedule](ctx, c, "get schedules", "schedules", "schedules", filter)
}

// ListCurrentSchedules returns schedules active now (or at filter's date).
func ListCurrentSchedules(ctx context.Context, c Conn, filter url.Values) ([]types.Schedule, error) {
	return getList[types.Schedule](ctx, c, "get current schedules", "schedules/current", "schedules", filter)
}

// ListFutureSchedules returns schedules that have not started yet.
func ListFutureSchedules(ctx context.Context, c Conn, filter url.Values) ([]types.Schedule, error) {
	return getList[types.Schedule](ctx, c, "get future schedules", "schedules/future", "schedules", filter)
}

// GetSchedule retrieves a schedule by ID.
func GetSchedule(ctx context.Context, c Conn, id int) (*types.Schedule, error) {
	if err := types.ValidatePositive(id, "schedule id"); err != nil {
		return nil, err
	}
	return getOne[types.Schedule](ctx, c, "get schedule", Endpoint("schedules", strconv.Itoa(id)), nil)
}

// CreateSchedule books a host into a cloud.
func CreateSchedule(ctx context.Context, c Conn, req types.CreateScheduleRequest) (*types.Schedule, error) {
	if err := types.ValidateIDPresent(req.Hostname, "hostname"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.Cloud, "cloud"); err != nil {
		return nil, err
	}
	return create[types.Schedule](ctx, c, "insert schedule", "schedules", req)
}

// UpdateSchedule patches a schedule.
func UpdateSchedule(ctx context.Context, c Conn, id int, req types.UpdateScheduleRequest) error {
	if err := types.ValidatePositive(id, "schedule id"); err != nil {
		return err
	}
	return mutate(ctx, c, "update schedule", http.MethodPatch, Endpoint("schedules", strconv.Itoa(id)), req)
}

// RemoveSchedule deletes a schedule.
func RemoveSchedule(ctx context.Context, c Conn, id int) error {
	if err := types.ValidatePositive(id, "schedule id"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove schedule", http.MethodDelete, Endpoint("schedules", strconv.Itoa(id)), nil)
}
