package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newLoginCmd(app *App) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log masuk sebagai admin bertugas atau admin sistem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(role)
			if !r.Valid() {
				return fmt.Errorf("peranan mesti %q atau %q", domain.RoleAdmin, domain.RoleAdminSistem)
			}
			return app.State.Login(args[0], r)
		},
	}
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "peranan: admin|adminsistem")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log keluar dan padam sesi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.State.Logout()
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Papar identiti semasa, tetapan dan keadaan segerak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.State.SiteConfig()

			fmt.Println(formatter.Header(cfg.SystemTitle))
			fmt.Println(formatter.Dim(cfg.SchoolName))
			fmt.Println()
			fmt.Println("Identiti : " + formatter.RenderIdentity(app.State.Identity()))
			fmt.Println("Modul    : " + formatter.RenderPermissions(app.State.Permissions()))

			endpoint := cfg.GoogleScriptURL
			if endpoint == "" {
				endpoint = formatter.Dim("(belum ditetapkan)")
			}
			fmt.Println("Endpoint : " + endpoint)
			fmt.Printf("Generasi : %d\n", app.State.Generation())
			if app.Cloud.IsSyncing() {
				fmt.Println(formatter.StyleYellow.Render("Segerak sedang berjalan..."))
			}
			return nil
		},
	}
}
