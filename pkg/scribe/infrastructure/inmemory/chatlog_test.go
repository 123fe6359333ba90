package inmemory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/scribe/pkg/scribe/domain"
)

func TestChatLog(t *testing.T) {
	chatLog := NewChatLog()
	first := domain.NewChatMessage(chatLog.NextID(), "John", true, "hello", nil)
	second := domain.NewChatMessage(chatLog.NextID(), "Scribe", false, "hi", nil)
	require.NoError(t, chatLog.Append(first))
	require.NoError(t, chatLog.Append(second))

	assert.Equal(t, 2, chatLog.Count())
	assert.NotEqual(t, first.ID, second.ID)

	found, err := chatLog.MessageAt(1)
	assert.NoError(t, err)
	assert.Same(t, second, found)
}

func TestChatLogOutOfRange(t *testing.T) {
	chatLog := NewChatLog()

	_, err := chatLog.MessageAt(0)
	assert.Error(t, err)

	_, err = chatLog.MessageAt(-1)
	assert.Error(t, err)
}
