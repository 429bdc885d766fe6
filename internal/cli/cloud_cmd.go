package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/cloud"
)

func newCloudCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloud",
		Short: "Segerak data dengan Google Sheet",
	}
	cmd.AddCommand(
		newCloudSimpanCmd(app),
		newCloudMuatCmd(app),
	)
	return cmd
}

// runSync wraps a push or pull with a spinner and maps the missing-endpoint
// error to the blocking setup message.
func runSync(app *App, message string, fn func() error) error {
	var stop func()
	if app.interactive() {
		stop = formatter.StartSpinner(message)
	}
	err := fn()
	if stop != nil {
		stop()
	}
	if errors.Is(err, cloud.ErrNoEndpoint) {
		fmt.Fprintln(os.Stderr, formatter.StyleRed.Render("Sila tetapkan URL Google Apps Script di Tetapan Admin dahulu."))
		return err
	}
	return err
}

func newCloudSimpanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "simpan",
		Short: "Simpan semua data ke Google Sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			return runSync(app, "Menyimpan ke Cloud...", func() error {
				return app.Cloud.Push(cmd.Context())
			})
		},
	}
}

func newCloudMuatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "muat",
		Short: "Muat turun data terkini dari Google Sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			return runSync(app, "Memuat turun dari Cloud...", func() error {
				return app.Cloud.Pull(cmd.Context())
			})
		},
	}
}
