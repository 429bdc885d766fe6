package domain

// Role identifies the two administrative roles. There is no credential
// store behind this; the role is supplied at login time.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleAdminSistem Role = "adminsistem"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAdminSistem
}

// Identity is the logged-in user. It lives only in the session store and
// is destroyed on logout.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Permissions holds the enabled flag for each of the eight modules.
// Using a struct (rather than a map) guarantees every key is always
// present once a value is loaded.
type Permissions struct {
	Pentadbiran bool `json:"pentadbiran"`
	Kurikulum   bool `json:"kurikulum"`
	HEM         bool `json:"hem"`
	Kokurikulum bool `json:"kokurikulum"`
	Takwim      bool `json:"takwim"`
	Program     bool `json:"program"`
	Pengumuman  bool `json:"pengumuman"`
	Laporan     bool `json:"laporan"`
}

// ModuleNames lists the permission module names in display order.
func ModuleNames() []string {
	return []string{
		"pentadbiran", "kurikulum", "hem", "kokurikulum",
		"takwim", "program", "pengumuman", "laporan",
	}
}

// Enabled returns the flag for the named module.
func (p Permissions) Enabled(module string) (bool, bool) {
	switch module {
	case "pentadbiran":
		return p.Pentadbiran, true
	case "kurikulum":
		return p.Kurikulum, true
	case "hem":
		return p.HEM, true
	case "kokurikulum":
		return p.Kokurikulum, true
	case "takwim":
		return p.Takwim, true
	case "program":
		return p.Program, true
	case "pengumuman":
		return p.Pengumuman, true
	case "laporan":
		return p.Laporan, true
	}
	return false, false
}

// Set updates the flag for the named module.
func (p *Permissions) Set(module string, on bool) bool {
	switch module {
	case "pentadbiran":
		p.Pentadbiran = on
	case "kurikulum":
		p.Kurikulum = on
	case "hem":
		p.HEM = on
	case "kokurikulum":
		p.Kokurikulum = on
	case "takwim":
		p.Takwim = on
	case "program":
		p.Program = on
	case "pengumuman":
		p.Pengumuman = on
	case "laporan":
		p.Laporan = on
	default:
		return false
	}
	return true
}

// SiteConfig holds the site-wide branding strings and the sync endpoint.
type SiteConfig struct {
	SystemTitle     string `json:"systemTitle"`
	SchoolName      string `json:"schoolName"`
	WelcomeMessage  string `json:"welcomeMessage"`
	GoogleScriptURL string `json:"googleScriptUrl,omitempty" validate:"omitempty,url"`
}

// SchoolProfile is the flat record shown on the school profile page.
type SchoolProfile struct {
	PrincipalName  string `json:"principalName"`
	PrincipalImage string `json:"principalImage"`
	PrincipalTitle string `json:"principalTitle"`
	PrincipalQuote string `json:"principalQuote"`
	SchoolCode     string `json:"schoolCode"`
	SchoolAddress  string `json:"schoolAddress"`
	SchoolEmail    string `json:"schoolEmail" validate:"omitempty,email"`
	SchoolPhone    string `json:"schoolPhone"`
	SchoolGrade    string `json:"schoolGrade"`
	StudentCount   string `json:"studentCount"`
	TeacherCount   string `json:"teacherCount"`
	Mission        string `json:"mission"`
	Vision         string `json:"vision"`
	Motto          string `json:"motto"`
	Slogan         string `json:"slogan"`
	Charter        string `json:"charter"`
}

// Announcement is a school notice. New announcements are prepended so the
// most recent one renders first.
type Announcement struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Summary string `json:"summary" validate:"required"`
	Views   int    `json:"views"`
	Likes   int    `json:"likes"`
}

// Program is a school event or activity.
type Program struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Image1      string `json:"image1,omitempty"`
	Image2      string `json:"image2,omitempty"`
}

// Teacher is a directory entry. Classes is always the canonical list form;
// the legacy comma-joined string is accepted on unmarshal only.
type Teacher struct {
	ID      string    `json:"id"`
	Name    string    `json:"name" validate:"required"`
	Subject string    `json:"subject" validate:"required"`
	Classes ClassList `json:"classes"`
}

// Student is used by the AI report generator. Students are seed data only;
// there is no student directory module.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Grade         string `json:"grade"`
	Attendance    int    `json:"attendance"`
	AverageScore  int    `json:"averageScore"`
	BehaviorScore int    `json:"behaviorScore"`
}

// ReliefRow is one relief-teacher assignment for the day.
type ReliefRow struct {
	ID      int64  `json:"id"`
	Time    string `json:"time"`
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Relief  string `json:"relief"`
	Absent  string `json:"absent"`
}

// ClassTeacherRow maps a class to its class teacher.
type ClassTeacherRow struct {
	ID          int64  `json:"id"`
	ClassName   string `json:"className"`
	TeacherName string `json:"teacherName"`
}

// SpeechRow is one entry in the assembly speech roster.
type SpeechRow struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Teacher string `json:"teacher"`
	Topic   string `json:"topic"`
}

// SchoolWeekRow is one row of the academic calendar week table.
type SchoolWeekRow struct {
	ID         int64  `json:"id"`
	Week       string `json:"week"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
	TotalDays  string `json:"totalDays"`
	TotalWeeks string `json:"totalWeeks"`
	IsHoliday  bool   `json:"isHoliday,omitempty"`
}

/// ExamWeekRow is one row of the exam calendar: internal exams (dalaman),
// religious-stream exams (jaj) and public exams (awam).
type ExamWeekRow struct {
	ID      int64  `json:"id"`
	Week    string `json:"week"`
	Date    string `json:"date"`
	Dalaman string `json:"dalaman"`
	JAJ     string `json:"jaj"`
	Awam    string `json:"awam"`
}
