package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/store"
)

func newTakwimCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "takwim",
		Short: "Takwim persekolahan dan takwim peperiksaan",
	}
	cmd.AddCommand(
		newTakwimMingguCmd(app),
		newTakwimExamCmd(app),
	)
	return cmd
}

func newTakwimMingguCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minggu",
		Short: "Takwim minggu persekolahan",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai minggu persekolahan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadCollection(app.Store, store.KeyTakwimSchoolWeeks, domain.SeedSchoolWeeks())
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				note := r.Notes
				if r.IsHoliday {
					note = "CUTI: " + note
				}
				out = append(out, []string{
					strconv.FormatInt(r.ID, 10), r.Week, r.Date, note, r.TotalDays, r.TotalWeeks,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "MINGGU", "TARIKH", "CATATAN", "HARI", "MINGGU T."}, out))
			return nil
		},
	}

	var week, date, notes, totalDays, totalWeeks string
	var holiday bool
	add := &cobra.Command{
		Use:   "add",
		Short: "Tambah baris minggu persekolahan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyTakwimSchoolWeeks, domain.SeedSchoolWeeks())
			if err != nil {
				return err
			}
			rows = append(rows, domain.SchoolWeekRow{
				ID:         domain.NewRecordID(),
				Week:       week,
				Date:       date,
				Notes:      notes,
				TotalDays:  totalDays,
				TotalWeeks: totalWeeks,
				IsHoliday:  holiday,
			})
			if err := saveCollection(app.Store, store.KeyTakwimSchoolWeeks, rows); err != nil {
				return err
			}
			app.State.Notifier().Show("Takwim persekolahan dikemaskini")
			return nil
		},
	}
	add.Flags().StringVar(&week, "minggu", "", "label minggu, cth M1")
	add.Flags().StringVar(&date, "tarikh", "", "julat tarikh minggu")
	add.Flags().StringVar(&notes, "catatan", "", "catatan")
	add.Flags().StringVar(&totalDays, "hari", "", "jumlah hari persekolahan")
	add.Flags().StringVar(&totalWeeks, "jumlah-minggu", "", "jumlah minggu terkumpul")
	add.Flags().BoolVar(&holiday, "cuti", false, "tanda minggu ini sebagai cuti")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam baris minggu persekolahan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyTakwimSchoolWeeks, domain.SeedSchoolWeeks())
			if err != nil {
				return err
			}
			kept := rows[:0]
			for _, r := range rows {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			if err := saveCollection(app.Store, store.KeyTakwimSchoolWeeks, kept); err != nil {
				return err
			}
			app.State.Notifier().Show("Baris takwim dipadam")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func newTakwimExamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Takwim peperiksaan (dalaman, JAJ, awam)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai minggu peperiksaan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadCollection(app.Store, store.KeyTakwimExamWeeks, domain.SeedExamWeeks())
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{
					strconv.FormatInt(r.ID, 10), r.Week, r.Date, r.Dalaman, r.JAJ, r.Awam,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "MINGGU", "TARIKH", "DALAMAN", "JAJ", "AWAM"}, out))
			return nil
		},
	}

	var week, date, dalaman, jaj, awam string
	add := &cobra.Command{
		Use:   "add",
		Short: "Tambah baris peperiksaan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyTakwimExamWeeks, domain.SeedExamWeeks())
			if err != nil {
				return err
			}
			rows = append(rows, domain.ExamWeekRow{
				ID:      domain.NewRecordID(),
				Week:    week,
				Date:    date,
				Dalaman: dalaman,
				JAJ:     jaj,
				Awam:    awam,
			})
			if err := saveCollection(app.Store, store.KeyTakwimExamWeeks, rows); err != nil {
				return err
			}
			app.State.Notifier().Show("Takwim peperiksaan dikemaskini")
			return nil
		},
	}
	add.Flags().StringVar(&week, "minggu", "", "label minggu, cth M20")
	add.Flags().StringVar(&date, "tarikh", "", "julat tarikh minggu")
	add.Flags().StringVar(&dalaman, "dalaman", "", "peperiksaan dalaman")
	add.Flags().StringVar(&jaj, "jaj", "", "peperiksaan JAJ")
	add.Flags().StringVar(&awam, "awam", "", "peperiksaan awam")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam baris peperiksaan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyTakwimExamWeeks, domain.SeedExamWeeks())
			if err != nil {
				return err
			}
			kept := rows[:0]
			for _, r := range rows {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			if err := saveCollection(app.Store, store.KeyTakwimExamWeeks, kept); err != nil {
				return err
			}
			app.State.Notifier().Show("Baris peperiksaan dipadam")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}
