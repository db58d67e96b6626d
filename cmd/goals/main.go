// Package main is a command-line front end for the goal tracker API.
//
//	goals                 list goals
//	goals add <text...>   add a goal
//	goals delete <id>     delete a goal
//
// Each run loads the list, applies at most one change, then prints the error
// banner (if any) followed by the goals.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/goal-tracker/internal/client"
)

// errRequestFailed makes the process exit non-zero once the banner is shown.
var errRequestFailed = errors.New("request failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	newApp := func(cmd *cobra.Command) (*client.App, context.Context, context.CancelFunc) {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		app := client.NewApp(client.NewAPI(baseURL))
		app.Load(ctx)
		return app, ctx, cancel
	}

	root := &cobra.Command{
		Use:           "goals",
		Short:         "List, add and delete course goals",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, cancel := newApp(cmd)
			defer cancel()
			return render(cmd.OutOrStdout(), cmd.ErrOrStderr(), app)
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "url", envOr("GOALS_API_URL", client.DefaultBaseURL), "API base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "overall request timeout")

	root.AddCommand(&cobra.Command{
		Use:   "add <text...>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, cancel := newApp(cmd)
			defer cancel()
			app.Add(ctx, strings.Join(args, " "))
			return render(cmd.OutOrStdout(), cmd.ErrOrStderr(), app)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, cancel := newApp(cmd)
			defer cancel()
			app.Delete(ctx, args[0])
			return render(cmd.OutOrStdout(), cmd.ErrOrStderr(), app)
		},
	})

	return root
}

// render writes the error banner to errOut and the goal list to out. It
// returns errRequestFailed when a banner was written.
func render(out, errOut io.Writer, app *client.App) error {
	s := app.Snapshot()
	var err error
	if s.Error != "" {
		fmt.Fprintf(errOut, "error: %s\n", s.Error)
		err = errRequestFailed
	}
	switch {
	case !app.Visible():
		fmt.Fprintln(out, "Loading...")
	case len(s.Goals) == 0:
		fmt.Fprintln(out, "No goals yet. Maybe add one?")
	default:
		for _, g := range s.Goals {
			fmt.Fprintf(out, "%s  %s\n", g.ID, g.Text)
		}
	}
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
