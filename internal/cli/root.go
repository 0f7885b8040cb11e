package cli

import "github.com/spf13/cobra"

// NewRootCmd builds the resumectl command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Build, check and render résumé documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newShowCmd(app),
		newValidateCmd(app),
		newRenderCmd(app),
		newAddCmd(app),
		newRemoveCmd(app),
		newServeCmd(app),
	)
	return root
}
