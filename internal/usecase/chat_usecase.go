package usecase

import (
	"strings"
	"unicode/utf8"

	"career-guide/internal/domain/chat"
)

// maxChatMessageLength counts characters, not bytes.
const maxChatMessageLength = 2000

type ChatReply struct {
	Reply string
	Topic string
}

type ChatUsecase interface {
	Reply(message string) (ChatReply, error)
}

type Chat struct {
	responder *chat.Responder
}

func NewChatUsecase(responder *chat.Responder) *Chat {
	if responder == nil {
		responder = chat.NewResponder(nil)
	}
	return &Chat{responder: responder}
}

// Reply trims the message before routing. Blank and oversized messages are rejected.
func (u *Chat) Reply(message string) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" || utf8.RuneCountInString(message) > maxChatMessageLength {
		return ChatReply{}, ErrInvalidInput
	}
	reply, topic := u.responder.RespondWithTopic(message)
	return ChatReply{Reply: reply, Topic: topic}, nil
}
