package http

import (
	"time"

	"tugasku/internal/chat"
	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/pkg/response"
	"tugasku/pkg/toast"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
}

func (r chatReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{Message: r.Message}
}

func (r chatReq) toClassifyInput() chat.ClassifyInput {
	return chat.ClassifyInput{Message: r.Message}
}

type confirmReq struct {
	ID   string       `json:"-"` // populated from URI param
	Form preview.Form `json:"form"`
}

func (r confirmReq) toInput() preview.ConfirmInput {
	return preview.ConfirmInput{ID: r.ID, Form: r.Form}
}

// --- Response DTOs ---

type previewResp struct {
	ID              string            `json:"id"`
	State           preview.State     `json:"state"`
	Kind            model.Kind        `json:"kind"`
	Title           string            `json:"title"`
	OriginalMessage string            `json:"original_message"`
	Form            preview.Form      `json:"form"`
	Confidence      map[string]string `json:"confidence"`
	CanSaveAsNote   bool              `json:"can_save_as_note"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func newPreviewResp(s preview.Session) previewResp {
	conf := make(map[string]string, len(s.Result.Confidence))
	for f, c := range s.Result.Confidence {
		conf[string(f)] = string(c)
	}
	return previewResp{
		ID:              s.ID,
		State:           s.State,
		Kind:            s.Result.Kind(),
		Title:           s.Result.Title(),
		OriginalMessage: s.Result.OriginalMessage,
		Form:            s.Form,
		Confidence:      conf,
		CanSaveAsNote:   s.CanSaveAsNote(),
		CreatedAt:       response.DateTime(s.CreatedAt),
	}
}

type chatResp struct {
	Reply   string       `json:"reply"`
	Preview *previewResp `json:"preview,omitempty"`
}

func (h *handler) newChatResp(out chat.ProcessOutput) chatResp {
	resp := chatResp{Reply: out.Reply}
	if out.Session != nil {
		p := newPreviewResp(*out.Session)
		resp.Preview = &p
	}
	return resp
}

type savedResp struct {
	State  preview.State `json:"state"`
	Kind   model.Kind    `json:"kind"`
	Record model.Record  `json:"record"`
	Reply  string        `json:"reply"`
}

func (h *handler) newSavedResp(out preview.ConfirmOutput) savedResp {
	return savedResp{
		State:  out.State,
		Kind:   out.Record.Kind(),
		Record: out.Record,
		Reply:  chat.ReplySaved(out.Record),
	}
}

type notificationResp struct {
	Level toast.Level `json:"level"`
	Text  string      `json:"text"`
	At    time.Time   `json:"at"`
}

func newNotificationResp(m toast.Message, ok bool) *notificationResp {
	if !ok {
		return nil
	}
	return &notificationResp{Level: m.Level, Text: m.Text, At: m.At}
}

type classifyResp struct {
	Intent     model.Kind        `json:"intent"`
	Keyword    string            `json:"keyword,omitempty"`
	Reasoning  string            `json:"reasoning"`
	Reply      string            `json:"reply"`
	Record     model.Record      `json:"record,omitempty"`
	Confidence map[string]string `json:"confidence,omitempty"`
}

func newClassifyResp(out chat.ClassifyOutput) classifyResp {
	resp := classifyResp{
		Intent:    out.Route.Intent,
		Keyword:   out.Route.Keyword,
		Reasoning: out.Route.Reasoning,
		Reply:     out.Reply,
	}
	if out.Result != nil {
		resp.Record = out.Result.Record
		resp.Confidence = make(map[string]string, len(out.Result.Confidence))
		for f, c := range out.Result.Confidence {
			resp.Confidence[string(f)] = string(c)
		}
	}
	return resp
}
