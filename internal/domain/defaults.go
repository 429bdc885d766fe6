package domain

// DefaultScriptURL is the baked-in Google Apps Script endpoint used when
// no URL is configured.
const DefaultScriptURL = "https://script.google.com/macros/s/AKfycbxZRbQndRE48rCgUpEHjGqBXr_rBd8vWyD4KHbCVW-TXifbk42FfRGPGuzbs9FuRl6gSg/exec"

// StaleScriptURLMarker identifies a retired deployment. A stored config
// whose URL contains this fragment is silently migrated to DefaultScriptURL.
const StaleScriptURLMarker = "AKfycbxpzq6lpFYRe7QQ6lGF7J"

// DefaultPermissions enables every module.
func DefaultPermissions() Permissions {
	return Permissions{
		Pentadbiran: true,
		Kurikulum:   true,
		HEM:         true,
		Kokurikulum: true,
		Takwim:      true,
		Program:     true,
		Pengumuman:  true,
		Laporan:     true,
	}
}

// DefaultSiteConfig returns the SMAAM branding defaults.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SystemTitle:     "PENGURUSAN DIGITAL SMAAM",
		SchoolName:      "SMA Al-Khairiah Al-Islamiah Mersing",
		WelcomeMessage:  "Selamat Datang ke Dashboard Utama",
		GoogleScriptURL: DefaultScriptURL,
	}
}

// DefaultSchoolProfile returns the seed school profile.
func DefaultSchoolProfile() SchoolProfile {
	return SchoolProfile{
		PrincipalName:  "Zulkeffle bin Muhammad",
		PrincipalTitle: "Pengetua SMAAM",
		PrincipalImage: "https://i.postimg.cc/GpTZX8V9/us-zul.png",
		PrincipalQuote: "Selamat datang ke SMA Al-Khairiah Al-Islamiah Mersing. Bersama-sama kita membentuk generasi ulul albab yang cemerlang di dunia dan akhirat.",
		SchoolCode:     "JFT4001",
		SchoolAddress:  "Jalan Dato' Onn, 86800 Mersing, Johor",
		SchoolEmail:    "jft4001@moe.edu.my",
		SchoolPhone:    "07-7996272",
		SchoolGrade:    "A | Luar Bandar",
		StudentCount:   "650",
		TeacherCount:   "45",
		Mission:        "Mengekalkan kegemilangan sekolah dan melahirkan generasi berilmu, beramal dan bertaqwa.",
		Vision:         "Pendidikan Berkualiti, Insan Terdidik, Negara Sejahtera.",
		Motto:          "ILMU. IMAN. AMAL.",
		Slogan:         "SMAAM Gemilang!",
		Charter:        "Kami komited untuk menyampaikan pendidikan yang holistik dan berkualiti kepada setiap pelajar bagi memastikan potensi individu dapat dikembangkan secara menyeluruh.",
	}
}

// SeedAnnouncements returns the announcements shown on first run.
func SeedAnnouncements() []Announcement {
	return []Announcement{
		{
			ID:      1,
			Title:   "Mesyuarat Agung PIBG Kali Ke-15",
			Date:    "25-10-2026",
			Summary: "Semua ibu bapa dan guru dijemput hadir ke Dewan Utama bermula jam 8.00 pagi.",
			Views:   124,
			Likes:   45,
		},
		{
			ID:      2,
			Title:   "Cuti Peristiwa Sempena Sukan Tahunan",
			Date:    "01-11-2026",
			Summary: "Sekolah akan bercuti pada hari Isnin sebagai cuti peristiwa.",
			Views:   312,
			Likes:   89,
		},
	}
}

// SeedPrograms returns the programs shown on first run.
func SeedPrograms() []Program {
	return []Program{
		{
			ID:          1,
			Title:       "Minggu Bahasa & Budaya",
			Date:        "15-11-2026",
			Time:        "08:00 Pagi",
			Location:    "Dewan Terbuka SMAAM",
			Category:    "Kurikulum",
			Description: "Pertandingan pidato, sajak dan penulisan esei yang melibatkan semua pelajar tingkatan 1 hingga 5. Program ini bertujuan memartabatkan bahasa kebangsaan.",
			Image1:      "https://images.unsplash.com/photo-1544531586-fde5298cdd40?q=80&w=600&auto=format&fit=crop",
			Image2:      "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?q=80&w=600&auto=format&fit=crop",
		},
		{
			ID:          2,
			Title:       "Kem Kepimpinan Pengawas",
			Date:        "20-11-2026",
			Time:        "03:00 Petang",
			Location:    "Kem Bina Negara, Mersing",
			Category:    "HEM",
			Description: "Program jati diri untuk semua pengawas lantikan baharu bagi sesi 2027. Aktiviti lasak dan ceramah kepimpinan akan dijalankan selama 3 hari 2 malam.",
			Image1:      "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?q=80&w=600&auto=format&fit=crop",
		},
		{
			ID:          3,
			Title:       "Kejohanan Futsal Antara Rumah",
			Date:        "05-12-2026",
			Time:        "08:00 Pagi",
			Location:    "Gelanggang Futsal Komuniti",
			Category:    "Sukan",
			Description: "Saringan akhir di padang sekolah. Semua rumah sukan wajib menghantar wakil.",
			Image1:      "https://images.unsplash.com/photo-1574629810360-7efbbe195018?q=80&w=600&auto=format&fit=crop",
		},
	}
}

// SeedTeachers returns the teacher directory shown on first run.
func SeedTeachers() []Teacher {
	return []Teacher{
		{ID: "T001", Name: "Cikgu Murni", Subject: "Bahasa Melayu", Classes: ClassList{"5 Bestari", "4 Cerdik"}},
		{ID: "T002", Name: "Mr. Wilson", Subject: "Matematik", Classes: ClassList{"5 Bestari", "3 Amanah"}},
		{ID: "T003", Name: "Puan Devi", Subject: "Sains", Classes: ClassList{"4 Cerdik", "3 Amanah"}},
	}
}

// SeedStudents returns the sample students used by the AI report generator.
func SeedStudents() []Student {
	return []Student{
		{ID: "S001", Name: "Ahmad Albab", Grade: "5 Bestari", Attendance: 95, AverageScore: 88, BehaviorScore: 9},
		{ID: "S002", Name: "Siti Nurhaliza", Grade: "5 Bestari", Attendance: 98, AverageScore: 92, BehaviorScore: 10},
		{ID: "S003", Name: "Chong Wei", Grade: "4 Cerdik", Attendance: 85, AverageScore: 76, BehaviorScore: 7},
		{ID: "S004", Name: "Muthu Sami", Grade: "4 Cerdik", Attendance: 92, AverageScore: 81, BehaviorScore: 8},
		{ID: "S005", Name: "Jessica Tan", Grade: "3 Amanah", Attendance: 78, AverageScore: 65, BehaviorScore: 6},
		{ID: "S006", Name: "Farid Kamil", Grade: "5 Bestari", Attendance: 88, AverageScore: 70, BehaviorScore: 8},
	}
}

// TeacherNames is the staff roster used to seed class-teacher assignments.
var TeacherNames = []string{
	"Zulkeffle bin Muhammad",
	"Noratikah binti Abd. Kadir",
	"Siti Aminah binti Mohamed",
	"Ahmad Albab bin Syukri",
	"Nurul Huda binti Ismail",
	"Razali bin Othman",
}

// ClassCodes lists the school's classes by form and stream.
var ClassCodes = []string{
	"1 AL-HANAFI", "1 AL-MALIKI", "1 AL-SYAFIE",
	"2 AL-HANAFI", "2 AL-MALIKI",
	"3 AL-HANAFI", "3 AL-MALIKI",
	"4 AL-HANAFI", "4 AL-MALIKI",
	"5 AL-HANAFI", "5 AL-MALIKI",
}

// SeedReliefRows returns the first-run relief schedule.
func SeedReliefRows() []ReliefRow {
	return []ReliefRow{
		{ID: 1, Time: "8:00 - 9:00", Class: "5 AL-HANAFI", Subject: "Matematik", Relief: "Cikgu Razali", Absent: "Cikgu Murni"},
	}
}

// SeedClassTeacherRows assigns every class a teacher from the roster,
// cycling when there are more classes than teachers.
func SeedClassTeacherRows() []ClassTeacherRow {
	rows := make([]ClassTeacherRow, 0, len(ClassCodes))
	for i, c := range ClassCodes {
		rows = append(rows, ClassTeacherRow{
			ID:          int64(i),
			ClassName:   c,
			TeacherName: TeacherNames[i%len(TeacherNames)],
		})
	}
	return rows
}

// SeedSpeechRows returns the first-run assembly speech roster.
func SeedSpeechRows() []SpeechRow {
	return []SpeechRow{
		{ID: 1, Date: "12-01-2026", Teacher: "Zulkeffle bin Muhammad", Topic: "Amanat Tahun Baru"},
		{ID: 2, Date: "19-01-2026", Teacher: "Siti Aminah binti Mohamed", Topic: "Disiplin Pelajar"},
	}
}

// SeedSchoolWeeks returns the first-run academic calendar for penggal 1.
func SeedSchoolWeeks() []SchoolWeekRow {
	return []SchoolWeekRow{
		{ID: 1, Week: "1", Date: "12 – 16 Jan 2026", TotalDays: "43", TotalWeeks: "10"},
		{ID: 2, Week: "2", Date: "19 – 23 Jan 2026"},
		{ID: 3, Week: "3", Date: "26 – 30 Jan 2026"},
		{ID: 4, Week: "4", Date: "02 – 06 Feb 2026"},
		{ID: 5, Week: "5", Date: "09 – 13 Feb 2026"},
		{ID: 6, Week: "6", Date: "16 – 20 Feb 2026", Notes: "17 Feb: Awal Ramadan"},
		{ID: 7, Week: "7", Date: "23 – 27 Feb 2026"},
		{ID: 8, Week: "8", Date: "02 – 06 Mac 2026"},
		{ID: 9, Week: "9", Date: "09 – 13 Mac 2026"},
		{ID: 10, Week: "10", Date: "16 – 20 Mac 2026", Notes: "Ujian 1"},
		{ID: 11, Week: "CUTI", Date: "23 – 31 Mac 2026", Notes: "CUTI PERTENGAHAN PENGGAL 1\nHARI RAYA AIDILFITRI", TotalDays: "9", TotalWeeks: "1", IsHoliday: true},
	}
}

// SeedExamWeeks returns the first-run exam calendar.
func SeedExamWeeks() []ExamWeekRow {
	return []ExamWeekRow{
		{ID: 1, Week: "10", Date: "16 – 20 Mac 2026", Dalaman: "Ujian Sumatif 1"},
		{ID: 2, Week: "20", Date: "25 – 29 Mei 2026", Dalaman: "Peperiksaan Pertengahan Tahun"},
		{ID: 3, Week: "35", Date: "14 – 18 Sep 2026", Dalaman: "Percubaan SPM", JAJ: "Percubaan STAM"},
		{ID: 4, Week: "40", Date: "19 – 23 Okt 2026", Dalaman: "Peperiksaan Akhir Tahun"},
		{ID: 5, Week: "42", Date: "02 – 06 Nov 2026", Awam: "SPM Bermula (Jangkaan)"},
	}
}
