package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/webperm/internal/application/usecase"
	"github.com/bnema/webperm/internal/cli"
	"github.com/bnema/webperm/internal/cli/styles"
)

type decisionKind struct {
	name  string
	short string
	apply func(app *cli.App, p *usecase.Permission)
}

var (
	decisionGrant = decisionKind{
		name:  "grant",
		short: "Allow an origin to use a permission",
		apply: func(app *cli.App, p *usecase.Permission) { p.Grant(app.Ctx()) },
	}
	decisionDeny = decisionKind{
		name:  "deny",
		short: "Block an origin from using a permission",
		apply: func(app *cli.App, p *usecase.Permission) { p.Deny(app.Ctx()) },
	}
	decisionReset = decisionKind{
		name:  "reset",
		short: "Forget the decision so the origin is asked again",
		apply: func(app *cli.App, p *usecase.Permission) { p.Reset(app.Ctx()) },
	}
)

func newDecisionCmd(opts *rootOptions, kind decisionKind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.name + " <origin> <type>",
		Short: kind.short,
		Example: fmt.Sprintf("  webperm %s https://maps.example.com geolocation\n  webperm %s meet.example.com media_audio_video_capture",
			kind.name, kind.name),
		Args: cobra.ExactArgs(2),
		RunE: opts.withApp(func(cmd *cobra.Command, app *cli.App, args []string) error {
			handle, err := lookupPermission(app, args[0], args[1])
			if err != nil {
				return err
			}

			kind.apply(app, handle)

			out := cmd.OutOrStdout()
			renderer := styles.NewPermissionRenderer(app.Theme)
			if !app.Persistent() {
				if _, err := fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderNotPersistent(app.Config.EffectivePolicy())); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(out, renderer.RenderDecision(handle.Origin(), handle.PermissionType(), handle.State(app.Ctx())))
			return err
		}),
	}
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <origin> <type>",
		Short: "Show the stored decision for an origin",
		Args:  cobra.ExactArgs(2),
		RunE: opts.withApp(func(cmd *cobra.Command, app *cli.App, args []string) error {
			handle, err := lookupPermission(app, args[0], args[1])
			if err != nil {
				return err
			}
			renderer := styles.NewPermissionRenderer(app.Theme)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDecision(handle.Origin(), handle.PermissionType(), handle.State(app.Ctx())))
			return err
		}),
	}
}

func lookupPermission(app *cli.App, rawOrigin, rawType string) (*usecase.Permission, error) {
	if strings.TrimSpace(rawType) == "" {
		return nil, fmt.Errorf("permission type is required")
	}
	origin, err := parseOrigin(rawOrigin)
	if err != nil {
		return nil, err
	}
	permType, err := parsePermissionType(rawType)
	if err != nil {
		return nil, err
	}

	handle := app.Permissions.QueryPermission(origin, permType)
	if !handle.IsValid() {
		return nil, fmt.Errorf("cannot address %s for %s", permType, origin)
	}
	return handle, nil
}
