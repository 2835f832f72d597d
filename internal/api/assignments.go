package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// ListAssignments returns assignments matching the optional filter.
func ListAssignments(ctx context.Context, c Conn, filter url.Values) ([]types.Assignment, error) {
	return getList[types.Assignment](ctx, c, "filter assignments", "assignments", "assignments", filter)
}

// ListActiveAssignments returns every active assignment.
func ListActiveAssignments(ctx context.Context, c Conn) ([]types.Assignment, error) {
	return getList[types.Assignment](ctx, c, "get active assignments", "assignments/active", "assignments", nil)
}

// GetActiveCloudAssignment returns the active assignment of a cloud.
func GetActiveCloudAssignment(ctx context.Context, c Conn, cloud string) (*types.Assignment, error) {
	if err := types.ValidateIDPresent(cloud, "cloud name"); err != nil {
		return nil, err
	}
	return getOne[types.Assignment](ctx, c, "get active cloud assignment", Endpoint("assignments", "active", cloud), nil)
}

// CreateAssignment allocates a cloud.
func CreateAssignment(ctx context.Context, c Conn, req types.CreateAssignmentRequest) (*types.Assignment, error) {
	if err := types.ValidateIDPresent(req.Cloud, "cloud"); err != nil {
		return nil, err
	}
	return create[types.Assignment](ctx, c, "insert assignment", "assignments", req)
}

// UpdateAssignment patches an assignment.
func UpdateAssignment(ctx context.Context, c Conn, id int, req types.UpdateAssignmentRequest) error {
	if err := types.ValidatePositive(id, "assignment id"); err != nil {
		return err
	}
	return mutate(ctx, c, "update assignment", http.MethodPatch, Endpoint("assignments", strconv.Itoa(id)), req)
}

// UpdateNotification patches the notification flags of an assignment.
func UpdateNotification(ctx context.Context, c Conn, id int, req types.UpdateNotificationRequest) error {
	if err := types.ValidatePositive(id, "notification id"); err != nil {
		return err
	}
	return mutate(ctx, c, "update notification", http.MethodPatch, Endpoint("notifications", strconv.Itoa(id)), req)
}
