package quads

import (
	"context"
	"net/url"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

// FilterAssignments returns assignments matching filter, e.g. owner or ticket.
func (c *Client) FilterAssignments(ctx context.Context, filter url.Values) ([]Assignment, error) {
	return call(c, func(conn api.Conn) ([]Assignment, error) {
		return api.ListAssignments(ctx, conn, filter)
	})
}

// GetActiveAssignments returns every active assignment.
func (c *Client) GetActiveAssignments(ctx context.Context) ([]Assignment, error) {
	return call(c, func(conn api.Conn) ([]Assignment, error) {
		return api.ListActiveAssignments(ctx, conn)
	})
}

// GetActiveCloudAssignment returns the active assignment of cloud.
func (c *Client) GetActiveCloudAssignment(ctx context.Context, cloud string) (*Assignment, error) {
	return call(c, func(conn api.Conn) (*Assignment, error) {
		return api.GetActiveCloudAssignment(ctx, conn, cloud)
	})
}

// InsertAssignment allocates req.Cloud to req.Owner.
func (c *Client) InsertAssignment(ctx context.Context, req CreateAssignmentRequest) (*Assignment, error) {
	return call(c, func(conn api.Conn) (*Assignment, error) {
		return api.CreateAssignment(ctx, conn, req)
	})
}

func (c *Client) UpdateAssignment(ctx context.Context, id int, req UpdateAssignmentRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateAssignment(ctx, conn, id, req)
	})
}

// UpdateNotification flips the notification flags of the assignment's
// notification record.
func (c *Client) UpdateNotification(ctx context.Context, id int, req UpdateNotificationRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateNotification(ctx, conn, id, req)
	})
}
