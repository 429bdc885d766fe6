package intelligence

import (
	"fmt"

	"github.com/smaamdev/esekolah/internal/domain"
)

func reportPrompt(s domain.Student) string {
	return fmt.Sprintf(`Bertindak sebagai pengetua sekolah yang profesional dan penyayang.
Sila tulis ulasan ringkas (maksimum 100 patah perkataan) untuk laporan prestasi pelajar berikut dalam Bahasa Melayu.

Nama: %s
Kelas: %s
Kehadiran: %d%%
Markah Purata: %d
Skor Kelakuan (1-10): %d

Berikan nasihat yang membina berdasarkan data di atas.`,
		s.Name, s.Grade, s.Attendance, s.AverageScore, s.BehaviorScore)
}

func lessonPlanPrompt(subject, topic, duration string) string {
	return fmt.Sprintf(`Bina satu rancangan pengajaran harian (RPH) ringkas untuk guru sekolah menengah.
Subjek: %s
Topik: %s
Masa: %s

Format output dalam Markdown (gunakan bullet points). Sertakan Objektif, Aktiviti, dan Penutup.
Bahasa: Bahasa Melayu.`, subject, topic, duration)
}

func chatPrompt(message string) string {
	return fmt.Sprintf(`Anda adalah 'Cikgu AI', pembantu maya pintar untuk sistem pengurusan sekolah 'e-Sekolah PINTAR'.
Jawab soalan pengguna berkaitan pengurusan sekolah, pedagogi, atau motivasi pelajar.
Jawab dalam Bahasa Melayu yang sopan dan profesional.

Soalan: %s`, message)
}
