package chat

import (
	"errors"
	"fmt"
	"strings"

	"tugasku/internal/model"
	"tugasku/internal/parser"
)

const (
	MsgUnknown     = "Maaf, saya tidak mengerti permintaan Anda. Coba gunakan format yang lebih jelas."
	MsgTooLong     = "Pesan terlalu panjang. Harap singkatkan."
	MsgEmpty       = "Pesan kosong. Tulis tugas, jadwal, atau catatan."
	MsgSaveFailed  = "Gagal menyimpan data."
	MsgProcessed   = "Permintaan Anda telah diproses."
	MsgPlaceholder = "N/A"
)

// MsgHelp lists example messages per intent.
const MsgHelp = `Cara menggunakan asisten:

Untuk menambah tugas:
  "PR Matematika halaman 20 deadline besok"
  "Tugas Fisika bab 3 untuk lusa, bawa kalkulator"

Untuk menambah jadwal:
  "Jadwal Kimia hari Rabu jam 10:00"
  "Kelas Bahasa Inggris hari Jumat jam 13.00-14.30"

Untuk mencatat:
  "Catat: besok bawa buku gambar"
  "Ingat: wawancara dengan guru BK"`

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return MsgPlaceholder
	}
	return s
}

// ReplySummary describes what was found in a message before it is confirmed.
func ReplySummary(r model.ParseResult) string {
	var b strings.Builder
	b.WriteString("Saya menemukan: ")

	switch rec := r.Record.(type) {
	case model.Task:
		subject := rec.Subject
		if subject == "" {
			subject = "Tugas"
		}
		name := rec.Name
		if name == "" {
			name = "Tugas Umum"
		}
		fmt.Fprintf(&b, "%s | %s | Deadline: %s | Bawa: %s | Peringatan: %s",
			subject, name, orNA(rec.Deadline), orNA(rec.Notes), orNA(rec.Warning))
	case model.Schedule:
		fmt.Fprintf(&b, "%s | Hari: %s | Jam: %s", rec.Label(), orNA(rec.Day), orNA(rec.StartTime))
	case model.Note:
		fmt.Fprintf(&b, "%q", rec.Title)
	default:
		return MsgUnknown
	}

	b.WriteString(". [Tinjau & Simpan]")
	return b.String()
}

// ReplySaved confirms a persisted record.
func ReplySaved(rec model.Record) string {
	switch r := rec.(type) {
	case model.Task:
		return fmt.Sprintf("Tugas %q telah ditambahkan.", r.Title)
	case model.Schedule:
		return fmt.Sprintf("Jadwal %q pada hari %s jam %s telah ditambahkan.", r.Subject, r.Day, r.StartTime)
	case model.Note:
		return fmt.Sprintf("Catatan %q telah disimpan.", r.Title)
	}
	return MsgProcessed
}

// ReplyError turns a pipeline error into a user-facing message.
func ReplyError(err error) string {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return MsgEmpty
	case errors.Is(err, ErrMessageTooLong):
		return MsgTooLong
	case errors.Is(err, parser.ErrMissingRequiredField):
		return "Jadwal belum lengkap: hari dan jam wajib diisi. " + parser.HintSchedule
	case errors.Is(err, parser.ErrUnclassifiedIntent):
		return MsgUnknown
	}
	return MsgSaveFailed
}
