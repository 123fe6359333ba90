package domain

import "strings"

// Reviewer shows the composed message to the user for editing before it's sent (the "refine"
// step). It returns the possibly edited text; `accepted` is false when the user declined, which
// aborts the whole caption operation.
type Reviewer interface {
	Review(text string) (edited string, accepted bool, err error)
}

// MessageComposer turns a caption into a chat message using the configured template and appends
// it to the chat log.
type MessageComposer struct {
	chatLog  ChatLog
	settings *Settings
	reviewer Reviewer
}

func NewMessageComposer(chatLog ChatLog, settings *Settings, reviewer Reviewer) *MessageComposer {
	return &MessageComposer{
		chatLog:  chatLog,
		settings: settings,
		reviewer: reviewer,
	}
}

// Compose substitutes the caption into the template. The template is validated when set, but
// the placeholder is checked here once more so that a caption can never get lost.
func (c *MessageComposer) Compose(caption string) string {
	template := c.settings.Template()
	if !strings.Contains(template, CaptionPlaceholder) {
		template += " " + CaptionPlaceholder
	}
	return strings.ReplaceAll(template, CaptionPlaceholder, caption)
}

// Send composes the chat message for `caption` and appends it to the chat log. In refine mode
// the text first goes through the reviewer; a declined review returns ErrReviewCancelled and
// nothing is appended.
func (c *MessageComposer) Send(sender, caption string, attachment *Attachment) (*ChatMessage, error) {
	text := c.Compose(caption)
	if c.settings.RefineMode() && c.reviewer != nil {
		edited, accepted, err := c.reviewer.Review(text)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return nil, ErrReviewCancelled
		}
		if strings.TrimSpace(edited) != "" {
			text = edited
		}
	}
	message := NewChatMessage(c.chatLog.NextID(), sender, true, text, attachment)
	err := c.chatLog.Append(message)
	if err != nil {
		return nil, err
	}
	return message, nil
}
