package cli

import (
	"fmt"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "esekolah" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "esekolah",
		Short: "Pengurusan digital sekolah: direktori, jadual, takwim dan segerak Cloud",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Surface the toast from whatever the command just did.
			if msg, ok := app.State.Notifier().Current(); ok {
				fmt.Println(formatter.RenderToast(msg))
			}
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newGuruCmd(app),
		newPengumumanCmd(app),
		newProgramCmd(app),
		newProfilCmd(app),
		newTetapanCmd(app),
		newJadualCmd(app),
		newTakwimCmd(app),
		newCloudCmd(app),
		newAICmd(app),
		newDashboardCmd(app),
	)

	return root
}
