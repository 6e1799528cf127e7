package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webperm/internal/cli"
	"github.com/bnema/webperm/internal/cli/styles"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var originFilter, typeFilter string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored permission decisions",
		Long: `List the decisions kept for persistent permission types
(notifications, geolocation, clipboard_read_write, local_fonts_access).`,
		Args: cobra.NoArgs,
		RunE: opts.withApp(func(cmd *cobra.Command, app *cli.App, _ []string) error {
			origin := ""
			if originFilter != "" {
				var err error
				if origin, err = parseOrigin(originFilter); err != nil {
					return err
				}
			}
			permType, err := parsePermissionType(typeFilter)
			if err != nil {
				return err
			}

			ctx := app.Ctx()
			handles := app.Permissions.ListPermissions(ctx, origin, permType)
			rows := make([]styles.PermissionRow, 0, len(handles))
			for _, h := range handles {
				rows = append(rows, styles.PermissionRow{
					Origin: h.Origin(),
					Type:   h.PermissionType(),
					State:  h.State(ctx),
				})
			}

			renderer := styles.NewPermissionRenderer(app.Theme)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTable(rows))
			return err
		}),
	}

	listCmd.Flags().StringVar(&originFilter, "origin", "", "only show decisions for this origin")
	listCmd.Flags().StringVar(&typeFilter, "type", "", "only show decisions for this permission type")
	return listCmd
}
