package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tugasku/internal/chat"
	"tugasku/internal/model"
	"tugasku/internal/router"
)

func TestClassify(t *testing.T) {
	tcs := map[string]struct {
		msg        string
		wantErr    error
		wantIntent router.Intent
		wantResult bool
		wantReply  string
	}{
		"empty":      {msg: "", wantErr: chat.ErrEmptyMessage},
		"task":       {msg: "PR Matematika halaman 20 untuk besok", wantIntent: model.KindTask, wantResult: true, wantReply: "Saya menemukan: "},
		"schedule":   {msg: "Jadwal Kimia hari Rabu jam 10:00", wantIntent: model.KindSchedule, wantResult: true, wantReply: "Saya menemukan: "},
		"incomplete": {msg: "jadwal hari senin", wantIntent: model.KindSchedule, wantReply: "Jadwal belum lengkap"},
		"unknown":    {msg: "halo apa kabar", wantIntent: model.KindUnknown, wantReply: chat.MsgUnknown},
		"help":       {msg: "bantuan", wantIntent: model.KindUnknown, wantReply: chat.MsgHelp},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			// An hour-long delay would time the test out if Classify waited.
			uc, _ := newTestUseCase(t, chat.Config{ThinkingDelay: time.Hour})

			out, err := uc.Classify(context.Background(), chat.ClassifyInput{Message: tc.msg})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Classify() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}

			if out.Route.Intent != tc.wantIntent {
				t.Errorf("Intent = %s, want %s", out.Route.Intent, tc.wantIntent)
			}
			if (out.Result != nil) != tc.wantResult {
				t.Errorf("Result = %+v, want present %v", out.Result, tc.wantResult)
			}
			if !strings.HasPrefix(out.Reply, tc.wantReply) {
				t.Errorf("Reply = %q, want prefix %q", out.Reply, tc.wantReply)
			}
		})
	}
}
