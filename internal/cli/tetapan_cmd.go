package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newTetapanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tetapan",
		Short: "Tetapan sistem dan kebenaran modul",
	}
	cmd.AddCommand(
		newTetapanShowCmd(app),
		newTetapanSetCmd(app),
		newTetapanModulCmd(app),
	)
	return cmd
}

func newTetapanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Papar tetapan semasa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.State.SiteConfig()
			fmt.Println(formatter.Header("Tetapan Sistem"))
			fmt.Println(formatter.Dim("Tajuk Sistem  ") + cfg.SystemTitle)
			fmt.Println(formatter.Dim("Nama Sekolah  ") + cfg.SchoolName)
			fmt.Println(formatter.Dim("Mesej Utama   ") + cfg.WelcomeMessage)
			fmt.Println(formatter.Dim("URL Skrip     ") + cfg.GoogleScriptURL)
			fmt.Println()
			fmt.Println(formatter.Header("Kebenaran Modul"))
			fmt.Println(formatter.RenderPermissions(app.State.Permissions()))
			return nil
		},
	}
}

func newTetapanSetCmd(app *App) *cobra.Command {
	var systemTitle, schoolName, welcome, scriptURL string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Kemaskini tetapan sistem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}

			cfg := app.State.SiteConfig()
			if systemTitle != "" {
				cfg.SystemTitle = systemTitle
			}
			if schoolName != "" {
				cfg.SchoolName = schoolName
			}
			if welcome != "" {
				cfg.WelcomeMessage = welcome
			}
			if scriptURL != "" {
				cfg.GoogleScriptURL = scriptURL
			}
			if err := domain.Validate(cfg); err != nil {
				return err
			}
			return app.State.SetSiteConfig(cfg)
		},
	}
	cmd.Flags().StringVar(&systemTitle, "tajuk-sistem", "", "tajuk sistem")
	cmd.Flags().StringVar(&schoolName, "nama-sekolah", "", "nama sekolah")
	cmd.Flags().StringVar(&welcome, "mesej", "", "mesej aluan dashboard")
	cmd.Flags().StringVar(&scriptURL, "url", "", "URL Google Apps Script untuk segerak Cloud")
	return cmd
}

func newTetapanModulCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "modul <nama> <on|off>",
		Short: "Hidup atau matikan modul (adminsistem sahaja)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdminSistem(app); err != nil {
				return err
			}

			name := strings.ToLower(args[0])
			var on bool
			switch strings.ToLower(args[1]) {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("nilai mesti on atau off: %q", args[1])
			}

			p := app.State.Permissions()
			if !p.Set(name, on) {
				return fmt.Errorf("modul tidak dikenali: %q (pilihan: %s)", name, strings.Join(domain.ModuleNames(), ", "))
			}
			return app.State.SetPermissions(p)
		},
	}
}
