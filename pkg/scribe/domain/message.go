package domain

import "time"

// Attachment references the image a chat message was captioned from. Whichever of the three
// references is present is used when the image needs to be captioned again (see
// CaptionService.CaptionMessage): a data URI can be decoded in place, a file path is re-encoded,
// a bare URL is re-fetched.
type Attachment struct {
	URL      string
	FilePath string
	DataURI  string
	Format   string
}

type ChatMessage struct {
	ID         string
	Sender     string
	IsUser     bool
	When       time.Time
	Text       string
	Attachment *Attachment // nullable
}

// ChatLog is the ordered log of chat messages. Message indices are zero-based and stable, so
// users can refer back to earlier messages by number.
type ChatLog interface {
	NextID() string
	Append(message *ChatMessage) error
	MessageAt(index int) (*ChatMessage, error)
	Count() int
}

func NewChatMessage(id, sender string, isUser bool, text string, attachment *Attachment) *ChatMessage {
	return &ChatMessage{
		ID:         id,
		Sender:     sender,
		IsUser:     isUser,
		When:       time.Now(),
		Text:       text,
		Attachment: attachment,
	}
}
