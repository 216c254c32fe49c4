package router_test

import (
	"context"
	"testing"

	"tugasku/internal/router"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestClassify(t *testing.T) {
	r := router.New(&mockLogger{})

	tests := []struct {
		name    string
		message string
		want    router.Intent
	}{
		{name: "PR keyword", message: "PR Matematika halaman 20 untuk besok", want: router.IntentTask},
		{name: "Tugas keyword", message: "Tugas biologi dikumpulkan hari Jumat", want: router.IntentTask},
		{name: "Deadline keyword", message: "deadline laporan 12/05/2024", want: router.IntentTask},
		{name: "Task beats schedule", message: "Jadwal tugas Fisika hari Senin jam 07:00", want: router.IntentTask},
		{name: "Schedule needs noun and weekday", message: "Jadwal Kimia hari Rabu jam 10:00", want: router.IntentSchedule},
		{name: "Weekday alone is not a schedule", message: "Senin nanti ke rumah nenek", want: router.IntentUnknown},
		{name: "Schedule noun alone is not a schedule", message: "jadwal ujian belum keluar", want: router.IntentUnknown},
		{name: "Note keyword", message: "Catat: beli buku tulis baru", want: router.IntentNote},
		{name: "Ingat keyword", message: "ingat bayar uang kas", want: router.IntentNote},
		{name: "PR inside word is ignored", message: "lompat ke program lain", want: router.IntentUnknown},
		{name: "Unknown", message: "halo apa kabar", want: router.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(context.Background(), tt.message)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s (%s), want %s", tt.message, got.Intent, got.Reasoning, tt.want)
			}
		})
	}
}

func TestIsHelpRequest(t *testing.T) {
	r := router.New(&mockLogger{})

	if !r.IsHelpRequest("Bantuan dong") {
		t.Error("IsHelpRequest(Bantuan dong) = false, want true")
	}
	if r.IsHelpRequest("beli kabel") {
		t.Error("IsHelpRequest(beli kabel) = true, want false")
	}
}
