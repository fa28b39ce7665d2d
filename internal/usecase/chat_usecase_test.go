package usecase

import (
	"strings"
	"testing"

	"career-guide/internal/domain/chat"
	"career-guide/internal/pkg/randsrc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_ReplyTrimsBeforeRouting(t *testing.T) {
	uc := NewChatUsecase(chat.NewResponder(randsrc.Fixed{}))

	got, err := uc.Reply("   hello  ")
	require.NoError(t, err)
	assert.Equal(t, "greeting", got.Topic)
	assert.NotEmpty(t, got.Reply)
}

func TestChat_RejectsBlankAndOversized(t *testing.T) {
	uc := NewChatUsecase(nil)

	_, err := uc.Reply(" \n\t")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Reply(strings.Repeat("a", maxChatMessageLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChat_LengthLimitCountsCharacters(t *testing.T) {
	uc := NewChatUsecase(chat.NewResponder(randsrc.Fixed{}))

	_, err := uc.Reply(strings.Repeat("🙂", 600))
	assert.NoError(t, err)

	_, err = uc.Reply(strings.Repeat("é", maxChatMessageLength))
	assert.NoError(t, err)

	_, err = uc.Reply(strings.Repeat("é", maxChatMessageLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
