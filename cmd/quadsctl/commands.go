package main

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	quads "github.com/quadsproject/go-quads-lib"
)

func newHostsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "hosts", Short: "Inspect hosts"}

	var filters []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List hosts, optionally filtered (--filter model=r640)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseFilters(filters)
			if err != nil {
				return err
			}
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetHosts(ctx, q)
			})
		},
	}
	list.Flags().StringArrayVar(&filters, "filter", nil, "key=value filter, repeatable")

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Show one host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetHost(ctx, args[0])
			})
		},
	}

	models := &cobra.Command{
		Use:   "models",
		Short: "List hosts grouped by model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetHostModels(ctx)
			})
		},
	}

	interfaces := &cobra.Command{
		Use:   "interfaces NAME",
		Short: "List the interfaces of a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetHostInterfaces(ctx, args[0])
			})
		},
	}

	var start, end string
	available := &cobra.Command{
		Use:   "available NAME",
		Short: "Report whether a host is free for a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if start != "" {
				q.Set("start", start)
			}
			if end != "" {
				q.Set("end", end)
			}
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				free, err := c.IsAvailable(ctx, args[0], q)
				if err != nil {
					return nil, err
				}
				return map[string]any{"host": args[0], "available": free}, nil
			})
		},
	}
	available.Flags().StringVar(&start, "start", "", "Window start, YYYY-MM-DD HH:MM")
	available.Flags().StringVar(&end, "end", "", "Window end, YYYY-MM-DD HH:MM")

	cmd.AddCommand(list, get, models, interfaces, available)
	return cmd
}

func newCloudsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "clouds", Short: "Inspect clouds"}

	var filters []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List clouds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseFilters(filters)
			if err != nil {
				return err
			}
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.FilterClouds(ctx, q)
			})
		},
	}
	list.Flags().StringArrayVar(&filters, "filter", nil, "key=value filter, repeatable")

	free := &cobra.Command{
		Use:   "free",
		Short: "List clouds without an active assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetFreeClouds(ctx)
			})
		},
	}

	var date string
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show host counts and owners per cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q url.Values
			if date != "" {
				q = url.Values{"date": {date}}
			}
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetSummary(ctx, q)
			})
		},
	}
	summary.Flags().StringVar(&date, "date", "", "Report the summary at this date")

	cmd.AddCommand(list, free, summary)
	return cmd
}

func newSchedulesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "schedules", Short: "Inspect schedules"}

	views := []struct {
		use, short string
		fetch      func(*quads.Client, context.Context, url.Values) ([]quads.Schedule, error)
	}{
		{"list", "List schedules", (*quads.Client).GetSchedules},
		{"current", "List schedules active now", (*quads.Client).GetCurrentSchedules},
		{"future", "List schedules that have not started", (*quads.Client).GetFutureSchedules},
	}
	for _, v := range views {
		var filters []string
		sub := &cobra.Command{
			Use:   v.use,
			Short: v.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := parseFilters(filters)
				if err != nil {
					return err
				}
				return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
					return v.fetch(c, ctx, q)
				})
			},
		}
		sub.Flags().StringArrayVar(&filters, "filter", nil, "key=value filter, repeatable (host, cloud, date)")
		cmd.AddCommand(sub)
	}
	return cmd
}

func newAvailableCmd() *cobra.Command {
	var filters []string
	cmd := &cobra.Command{
		Use:   "available",
		Short: "List hosts available for a window (--filter start=... --filter end=...)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseFilters(filters)
			if err != nil {
				return err
			}
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.FilterAvailable(ctx, q)
			})
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "key=value filter, repeatable")
	return cmd
}

func newAssignmentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "assignments", Short: "Inspect assignments"}
	active := &cobra.Command{
		Use:   "active [CLOUD]",
		Short: "List active assignments, or show the one of CLOUD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				if len(args) == 1 {
					return c.GetActiveCloudAssignment(ctx, args[0])
				}
				return c.GetActiveAssignments(ctx)
			})
		},
	}
	cmd.AddCommand(active)
	return cmd
}

func newVlansCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "vlans", Short: "Inspect public VLANs"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List VLANs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetVlans(ctx)
			})
		},
	})
	return cmd
}

func newMovesCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List pending host moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetMoves(ctx, date)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Moves due on this date (YYYY-MM-DD)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInSession(cmd, func(ctx context.Context, c *quads.Client) (any, error) {
				return c.GetVersion(ctx)
			})
		},
	}
}
