package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newPengumumanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pengumuman",
		Short: "Urus pengumuman sekolah",
	}
	cmd.AddCommand(
		newPengumumanListCmd(app),
		newPengumumanAddCmd(app),
	)
	return cmd
}

func newPengumumanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Senarai pengumuman (terbaru dahulu)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.State.Announcements()
			rows := make([][]string, 0, len(items))
			for _, a := range items {
				rows = append(rows, []string{
					strconv.FormatInt(a.ID, 10),
					a.Title,
					a.Date,
					fmt.Sprintf("%d", a.Views),
					fmt.Sprintf("%d", a.Likes),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TAJUK", "TARIKH", "LIHAT", "SUKA"}, rows))
			return nil
		},
	}
}

func newPengumumanAddCmd(app *App) *cobra.Command {
	var title, date, summary string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Tambah pengumuman baharu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}

			a := domain.Announcement{
				ID:      domain.NewRecordID(),
				Title:   title,
				Date:    date,
				Summary: summary,
			}
			if a.Title == "" && app.interactive() {
				if err := runAnnouncementForm(&a); err != nil {
					return err
				}
			}
			if err := domain.Validate(a); err != nil {
				return err
			}
			return app.State.AddAnnouncement(a)
		},
	}
	cmd.Flags().StringVar(&title, "tajuk", "", "tajuk pengumuman")
	cmd.Flags().StringVar(&date, "tarikh", "", "tarikh, cth 25-10-2026")
	cmd.Flags().StringVar(&summary, "ringkasan", "", "ringkasan pengumuman")
	return cmd
}
