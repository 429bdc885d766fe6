package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
)

func newProfilCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profil",
		Short: "Urus profil sekolah",
	}
	cmd.AddCommand(
		newProfilShowCmd(app),
		newProfilEditCmd(app),
	)
	return cmd
}

func newProfilShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Papar profil sekolah",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.State.SchoolProfile()
			fmt.Println(formatter.Header("Profil Sekolah"))
			fmt.Print(formatter.RenderProfile(p))
			return nil
		},
	}
}

func newProfilEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Kemaskini profil sekolah",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("profil edit memerlukan terminal interaktif")
			}

			p := app.State.SchoolProfile()
			if err := runProfileForm(&p); err != nil {
				return err
			}
			return app.State.SetSchoolProfile(p)
		},
	}
}
