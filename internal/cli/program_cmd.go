package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Urus program dan aktiviti sekolah",
	}
	cmd.AddCommand(
		newProgramListCmd(app),
		newProgramAddCmd(app),
		newProgramEditCmd(app),
		newProgramRemoveCmd(app),
	)
	return cmd
}

func newProgramListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Senarai program (terbaru dahulu)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.State.Programs()
			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{
					strconv.FormatInt(p.ID, 10),
					p.Title,
					p.Date,
					p.Category,
					p.Location,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TAJUK", "TARIKH", "KATEGORI", "LOKASI"}, rows))
			return nil
		},
	}
}

func programFlags(cmd *cobra.Command, p *programFlagValues) {
	cmd.Flags().StringVar(&p.title, "tajuk", "", "tajuk program")
	cmd.Flags().StringVar(&p.date, "tarikh", "", "tarikh, cth 15-11-2026")
	cmd.Flags().StringVar(&p.timeOfDay, "masa", "", "masa, cth 08:00 Pagi")
	cmd.Flags().StringVar(&p.location, "lokasi", "", "lokasi program")
	cmd.Flags().StringVar(&p.category, "kategori", "", "kategori: Kurikulum|HEM|Kokurikulum|Sukan|Lain-lain")
	cmd.Flags().StringVar(&p.description, "keterangan", "", "keterangan program")
}

type programFlagValues struct {
	title, date, timeOfDay, location, category, description string
}

func (v programFlagValues) empty() bool {
	return v == programFlagValues{}
}

func (v programFlagValues) applyTo(p *domain.Program) {
	if v.title != "" {
		p.Title = v.title
	}
	if v.date != "" {
		p.Date = v.date
	}
	if v.timeOfDay != "" {
		p.Time = v.timeOfDay
	}
	if v.location != "" {
		p.Location = v.location
	}
	if v.category != "" {
		p.Category = v.category
	}
	if v.description != "" {
		p.Description = v.description
	}
}

func newProgramAddCmd(app *App) *cobra.Command {
	var flags programFlagValues
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Tambah program baharu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}

			p := domain.Program{ID: domain.NewRecordID()}
			flags.applyTo(&p)
			if flags.empty() && app.interactive() {
				if err := runProgramForm(&p); err != nil {
					return err
				}
			}
			if err := domain.Validate(p); err != nil {
				return err
			}
			return app.State.AddProgram(p)
		},
	}
	programFlags(cmd, &flags)
	return cmd
}

func newProgramEditCmd(app *App) *cobra.Command {
	var flags programFlagValues
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Kemaskini program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			var current *domain.Program
			for _, p := range app.State.Programs() {
				if p.ID == id {
					current = &p
					break
				}
			}
			if current == nil {
				return fmt.Errorf("program tidak dijumpai: %d", id)
			}

			if flags.empty() && app.interactive() {
				if err := runProgramForm(current); err != nil {
					return err
				}
			} else {
				flags.applyTo(current)
			}
			if err := domain.Validate(*current); err != nil {
				return err
			}
			return app.State.UpdateProgram(*current)
		},
	}
	programFlags(cmd, &flags)
	return cmd
}

func newProgramRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			return app.State.DeleteProgram(id)
		},
	}
}
