package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/store"
)

// The jadual collections live under their own storage keys, not inside
// the state container; commands read storage directly and a sync pull
// announces out-of-band rewrites through the generation counter.

func newJadualCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jadual",
		Short: "Jadual guru ganti, guru kelas, ucapan perhimpunan dan slot waktu",
	}
	cmd.AddCommand(
		newJadualReliefCmd(app),
		newJadualKelasCmd(app),
		newJadualUcapanCmd(app),
		newJadualSlotCmd(app),
	)
	return cmd
}

// ── guru ganti ──────────────────────────────────────────────────────────────

func newJadualReliefCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relief",
		Short: "Jadual guru ganti harian",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai guru ganti",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadCollection(app.Store, store.KeyJadualRelief, domain.SeedReliefRows())
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{
					strconv.FormatInt(r.ID, 10), r.Time, r.Class, r.Subject, r.Relief, r.Absent,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "MASA", "KELAS", "SUBJEK", "GANTI", "TIDAK HADIR"}, out))
			return nil
		},
	}

	var timeSlot, class, subject, relief, absent string
	add := &cobra.Command{
		Use:   "add",
		Short: "Tambah baris guru ganti",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyJadualRelief, domain.SeedReliefRows())
			if err != nil {
				return err
			}
			rows = append(rows, domain.ReliefRow{
				ID:      domain.NewRecordID(),
				Time:    timeSlot,
				Class:   class,
				Subject: subject,
				Relief:  relief,
				Absent:  absent,
			})
			if err := saveCollection(app.Store, store.KeyJadualRelief, rows); err != nil {
				return err
			}
			app.State.Notifier().Show("Jadual guru ganti dikemaskini")
			return nil
		},
	}
	add.Flags().StringVar(&timeSlot, "masa", "", "slot masa, cth 8:00 - 9:00")
	add.Flags().StringVar(&class, "kelas", "", "kelas terlibat")
	add.Flags().StringVar(&subject, "subjek", "", "subjek")
	add.Flags().StringVar(&relief, "ganti", "", "guru ganti")
	add.Flags().StringVar(&absent, "tidak-hadir", "", "guru tidak hadir")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam baris guru ganti",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyJadualRelief, domain.SeedReliefRows())
			if err != nil {
				return err
			}
			kept := rows[:0]
			for _, r := range rows {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			if err := saveCollection(app.Store, store.KeyJadualRelief, kept); err != nil {
				return err
			}
			app.State.Notifier().Show("Baris guru ganti dipadam")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

// ── guru kelas ──────────────────────────────────────────────────────────────

func newJadualKelasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kelas",
		Short: "Penugasan guru kelas",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai guru kelas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadCollection(app.Store, store.KeyJadualClassTeachers, domain.SeedClassTeacherRows())
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.ClassName, r.TeacherName})
			}
			fmt.Print(formatter.RenderTable([]string{"KELAS", "GURU KELAS"}, out))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <kelas> <guru>",
		Short: "Tetapkan guru kelas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyJadualClassTeachers, domain.SeedClassTeacherRows())
			if err != nil {
				return err
			}
			found := false
			for i := range rows {
				if strings.EqualFold(rows[i].ClassName, args[0]) {
					rows[i].TeacherName = args[1]
					found = true
				}
			}
			if !found {
				rows = append(rows, domain.ClassTeacherRow{
					ID:          domain.NewRecordID(),
					ClassName:   args[0],
					TeacherName: args[1],
				})
			}
			if err := saveCollection(app.Store, store.KeyJadualClassTeachers, rows); err != nil {
				return err
			}
			app.State.Notifier().Show("Guru kelas dikemaskini")
			return nil
		},
	}

	cmd.AddCommand(list, set)
	return cmd
}

// ── ucapan perhimpunan ──────────────────────────────────────────────────────

func newJadualUcapanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ucapan",
		Short: "Jadual ucapan perhimpunan",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai ucapan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadCollection(app.Store, store.KeyJadualSpeech, domain.SeedSpeechRows())
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{strconv.FormatInt(r.ID, 10), r.Date, r.Teacher, r.Topic})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TARIKH", "GURU", "TAJUK"}, out))
			return nil
		},
	}

	var date, teacher, topic string
	add := &cobra.Command{
		Use:   "add",
		Short: "Tambah slot ucapan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyJadualSpeech, domain.SeedSpeechRows())
			if err != nil {
				return err
			}
			rows = append(rows, domain.SpeechRow{
				ID:      domain.NewRecordID(),
				Date:    date,
				Teacher: teacher,
				Topic:   topic,
			})
			if err := saveCollection(app.Store, store.KeyJadualSpeech, rows); err != nil {
				return err
			}
			app.State.Notifier().Show("Slot ucapan ditambah")
			return nil
		},
	}
	add.Flags().StringVar(&date, "tarikh", "", "tarikh perhimpunan")
	add.Flags().StringVar(&teacher, "guru", "", "guru bertugas")
	add.Flags().StringVar(&topic, "tajuk", "", "tajuk ucapan")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam slot ucapan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			rows, err := loadCollection(app.Store, store.KeyJadualSpeech, domain.SeedSpeechRows())
			if err != nil {
				return err
			}
			kept := rows[:0]
			for _, r := range rows {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			if err := saveCollection(app.Store, store.KeyJadualSpeech, kept); err != nil {
				return err
			}
			app.State.Notifier().Show("Slot ucapan dipadam")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

// ── slot jadual waktu ───────────────────────────────────────────────────────

func newJadualSlotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Sel jadual waktu kelas",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Senarai sel jadual waktu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := loadSlots(app.Store)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(slots))
			for k := range slots {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := make([][]string, 0, len(keys))
			for _, k := range keys {
				parts := strings.SplitN(k, "|", 3)
				for len(parts) < 3 {
					parts = append(parts, "")
				}
				out = append(out, []string{parts[0], parts[1], parts[2], slots[k]})
			}
			fmt.Print(formatter.RenderTable([]string{"KELAS", "HARI", "MASA", "SUBJEK"}, out))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <kelas> <hari> <masa> <subjek>",
		Short: "Isi sel jadual waktu",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			slots, err := loadSlots(app.Store)
			if err != nil {
				return err
			}
			slots[slotKey(args[0], args[1], args[2])] = args[3]
			if err := app.Store.Set(store.KeyJadualSlots, slots); err != nil {
				return err
			}
			app.State.Notifier().Show("Slot jadual waktu dikemaskini")
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear <kelas> <hari> <masa>",
		Short: "Kosongkan sel jadual waktu",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			slots, err := loadSlots(app.Store)
			if err != nil {
				return err
			}
			delete(slots, slotKey(args[0], args[1], args[2]))
			if err := app.Store.Set(store.KeyJadualSlots, slots); err != nil {
				return err
			}
			app.State.Notifier().Show("Slot jadual waktu dikosongkan")
			return nil
		},
	}

	cmd.AddCommand(list, set, clear)
	return cmd
}
