package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/smaamdev/esekolah/internal/domain"
)

// The record editors are declared as data: each record kind lists its
// fields and field kinds once, and a single renderer turns the
// declaration into a form. Adding a record kind means adding a
// declaration, not another rendering branch.

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldLongText
	fieldSelect
)

type editorField struct {
	title       string
	kind        fieldKind
	placeholder string
	options     []string
	value       *string
}

type editorConfig struct {
	title  string
	fields []editorField
}

// run renders the declared fields as a themed huh form and blocks until
// the user submits or cancels.
func (c editorConfig) run() error {
	// Group in fours so long editors page instead of scrolling.
	const perGroup = 4

	var groups []*huh.Group
	var fields []huh.Field
	flush := func() {
		if len(fields) > 0 {
			groups = append(groups, huh.NewGroup(fields...).Title(c.title))
			fields = nil
		}
	}

	for _, f := range c.fields {
		switch f.kind {
		case fieldLongText:
			fields = append(fields, huh.NewText().
				Title(f.title).
				Lines(3).
				Value(f.value))
		case fieldSelect:
			fields = append(fields, huh.NewSelect[string]().
				Title(f.title).
				Options(huh.NewOptions(f.options...)...).
				Value(f.value))
		default:
			fields = append(fields, huh.NewInput().
				Title(f.title).
				Placeholder(f.placeholder).
				Value(f.value))
		}
		if len(fields) == perGroup {
			flush()
		}
	}
	flush()

	return huh.NewForm(groups...).
		WithTheme(esekolahHuhTheme()).
		WithShowHelp(false).
		Run()
}

// programCategories are the selectable program categories.
var programCategories = []string{"Kurikulum", "HEM", "Kokurikulum", "Sukan", "Lain-lain"}

// runTeacherForm edits a teacher record in place.
func runTeacherForm(t *domain.Teacher) error {
	classes := t.Classes.String()
	cfg := editorConfig{
		title: "Maklumat Guru",
		fields: []editorField{
			{title: "Nama", value: &t.Name, placeholder: "Cikgu Murni"},
			{title: "Subjek", value: &t.Subject, placeholder: "Bahasa Melayu"},
			{title: "Kelas (dipisah koma)", value: &classes, placeholder: "5 Bestari, 4 Cerdik"},
		},
	}
	if err := cfg.run(); err != nil {
		return err
	}
	t.Classes = domain.SplitClasses(classes)
	return nil
}

// runAnnouncementForm edits an announcement record in place.
func runAnnouncementForm(a *domain.Announcement) error {
	cfg := editorConfig{
		title: "Pengumuman",
		fields: []editorField{
			{title: "Tajuk", value: &a.Title},
			{title: "Tarikh", value: &a.Date, placeholder: "25-10-2026"},
			{title: "Ringkasan", kind: fieldLongText, value: &a.Summary},
		},
	}
	return cfg.run()
}

// runProgramForm edits a program record in place.
func runProgramForm(p *domain.Program) error {
	if p.Category == "" {
		p.Category = programCategories[0]
	}
	cfg := editorConfig{
		title: "Program Sekolah",
		fields: []editorField{
			{title: "Tajuk", value: &p.Title},
			{title: "Tarikh", value: &p.Date, placeholder: "15-11-2026"},
			{title: "Masa", value: &p.Time, placeholder: "08:00 Pagi"},
			{title: "Lokasi", value: &p.Location},
			{title: "Kategori", kind: fieldSelect, options: programCategories, value: &p.Category},
			{title: "Keterangan", kind: fieldLongText, value: &p.Description},
			{title: "Imej 1 (URL)", value: &p.Image1},
			{title: "Imej 2 (URL)", value: &p.Image2},
		},
	}
	return cfg.run()
}

// runProfileForm edits the school profile in place.
func runProfileForm(p *domain.SchoolProfile) error {
	cfg := editorConfig{
		title: "Profil Sekolah",
		fields: []editorField{
			{title: "Nama Pengetua", value: &p.PrincipalName},
			{title: "Jawatan Pengetua", value: &p.PrincipalTitle},
			{title: "Imej Pengetua (URL)", value: &p.PrincipalImage},
			{title: "Kata Alu-aluan", kind: fieldLongText, value: &p.PrincipalQuote},
			{title: "Kod Sekolah", value: &p.SchoolCode},
			{title: "Alamat", value: &p.SchoolAddress},
			{title: "E-mel", value: &p.SchoolEmail},
			{title: "Telefon", value: &p.SchoolPhone},
			{title: "Gred", value: &p.SchoolGrade},
			{title: "Bilangan Pelajar", value: &p.StudentCount},
			{title: "Bilangan Guru", value: &p.TeacherCount},
			{title: "Misi", kind: fieldLongText, value: &p.Mission},
			{title: "Visi", kind: fieldLongText, value: &p.Vision},
			{title: "Moto", value: &p.Motto},
			{title: "Slogan", value: &p.Slogan},
			{title: "Piagam Pelanggan", kind: fieldLongText, value: &p.Charter},
		},
	}
	return cfg.run()
}
