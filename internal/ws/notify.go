package ws

import (
	"encoding/json"
	"time"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/application"
)

const (
	EventTyping               = "typing"
	EventChatReply            = "chat_reply"
	EventApplicationSubmitted = "application_submitted"
	EventError                = "error"
)

type Event struct {
	Type        string            `json:"type"`
	Reply       string            `json:"reply,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Message     string            `json:"message,omitempty"`
	Application *ApplicationEvent `json:"application,omitempty"`
	Timestamp   string            `json:"timestamp"`
}

type ApplicationEvent struct {
	ID        string `json:"id"`
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_date"`
}

func newEvent(typ string) Event {
	return Event{Type: typ, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}

// NotifyApplication pushes a submitted application to the account's open chats.
func (h *Hub) NotifyApplication(email string, a application.Application) {
	if h == nil {
		return
	}
	email = account.NormalizeEmail(email)
	if email == "" {
		return
	}

	evt := newEvent(EventApplicationSubmitted)
	evt.Application = &ApplicationEvent{
		ID:        a.ID.String(),
		JobTitle:  a.JobTitle,
		Company:   a.Company,
		Status:    a.Status,
		AppliedAt: a.AppliedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal application event")
		return
	}
	h.SendTo(email, b)
}
