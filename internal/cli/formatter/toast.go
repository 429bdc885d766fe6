package formatter

import (
	"fmt"
	"strings"

	"github.com/smaamdev/esekolah/internal/domain"
)

// RenderToast renders the transient notification line shown after a
// mutation or sync operation.
func RenderToast(msg string) string {
	return StyleYellow.Render("» ") + StyleFg.Render(msg)
}

// RenderIdentity renders the logged-in identity for status output.
func RenderIdentity(id *domain.Identity) string {
	if id == nil {
		return Dim("Belum log masuk")
	}
	return fmt.Sprintf("%s %s", StyleBold.Render(id.Name), Dim("("+id.Username+" · "+string(id.Role)+")"))
}

// RenderPermissions renders the module flags as a compact list.
func RenderPermissions(p domain.Permissions) string {
	var b strings.Builder
	for i, name := range domain.ModuleNames() {
		on, _ := p.Enabled(name)
		mark := StyleRed.Render("✗")
		if on {
			mark = StyleGreen.Render("✓")
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(mark + " " + name)
	}
	return b.String()
}

// RenderProfile renders the school profile as a label/value listing.
func RenderProfile(p domain.SchoolProfile) string {
	pairs := []struct{ label, value string }{
		{"Pengetua", p.PrincipalName},
		{"Jawatan", p.PrincipalTitle},
		{"Kod Sekolah", p.SchoolCode},
		{"Alamat", p.SchoolAddress},
		{"E-mel", p.SchoolEmail},
		{"Telefon", p.SchoolPhone},
		{"Gred", p.SchoolGrade},
		{"Bil. Pelajar", p.StudentCount},
		{"Bil. Guru", p.TeacherCount},
		{"Misi", p.Mission},
		{"Visi", p.Vision},
		{"Moto", p.Motto},
		{"Slogan", p.Slogan},
		{"Piagam", p.Charter},
	}

	width := 0
	for _, kv := range pairs {
		if len(kv.label) > width {
			width = len(kv.label)
		}
	}

	var b strings.Builder
	for _, kv := range pairs {
		b.WriteString(Dim(fmt.Sprintf("%-*s", width+2, kv.label)))
		b.WriteString(kv.value)
		b.WriteString("\n")
	}
	return b.String()
}
