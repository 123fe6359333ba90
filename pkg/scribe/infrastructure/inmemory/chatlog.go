package inmemory

import (
	"fmt"

	"github.com/google/uuid"

	"kgeyst.com/scribe/pkg/scribe/domain"
)

type chatLog struct {
	messages []*domain.ChatMessage
}

func NewChatLog() domain.ChatLog {
	return &chatLog{}
}

func (c *chatLog) NextID() string {
	return uuid.NewString()
}

func (c *chatLog) Append(message *domain.ChatMessage) error {
	c.messages = append(c.messages, message)
	return nil
}

func (c *chatLog) MessageAt(index int) (*domain.ChatMessage, error) {
	if index < 0 || index >= len(c.messages) {
		return nil, fmt.Errorf("no message with id %d (the chat log has %d messages)", index, len(c.messages))
	}
	return c.messages[index], nil // NOTE: the underlying message object is shared
}

func (c *chatLog) Count() int {
	return len(c.messages)
}
