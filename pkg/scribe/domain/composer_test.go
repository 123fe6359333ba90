package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeSubstitutesCaption(t *testing.T) {
	settings := NewSettings()
	settings.SetTemplate("I see a picture: {{caption}} (end)")
	composer := NewMessageComposer(&fakeChatLog{}, settings, nil)

	assert.Equal(t, "I see a picture: a red fox (end)", composer.Compose("a red fox"))
}

func TestComposeAppendsMissingPlaceholder(t *testing.T) {
	settings := NewSettings()
	// Bypasses SetTemplate's own auto-repair to check the composer's defensive path.
	settings.template = "someone sent an image"
	composer := NewMessageComposer(&fakeChatLog{}, settings, nil)

	assert.Equal(t, "someone sent an image a red fox", composer.Compose("a red fox"))
}

func TestSendAppendsMessage(t *testing.T) {
	settings := NewSettings()
	chatLog := &fakeChatLog{}
	composer := NewMessageComposer(chatLog, settings, nil)
	attachment := &Attachment{DataURI: "data:image/png;base64,aGk=", Format: "png"}

	message, err := composer.Send("John", "a red fox", attachment)

	assert.NoError(t, err)
	assert.Equal(t, 1, chatLog.Count())
	assert.Equal(t, "John", message.Sender)
	assert.True(t, message.IsUser)
	assert.Contains(t, message.Text, "a red fox")
	assert.Same(t, attachment, message.Attachment)
	assert.NotEmpty(t, message.ID)
}

func TestSendDeclinedReviewAppendsNothing(t *testing.T) {
	settings := NewSettings()
	settings.SetRefineMode(true)
	chatLog := &fakeChatLog{}
	reviewer := &fakeReviewer{accepted: false}
	composer := NewMessageComposer(chatLog, settings, reviewer)

	_, err := composer.Send("John", "a red fox", nil)

	assert.ErrorIs(t, err, ErrReviewCancelled)
	assert.Zero(t, chatLog.Count())
	assert.Equal(t, 1, reviewer.calls)
}

func TestSendUsesEditedText(t *testing.T) {
	settings := NewSettings()
	settings.SetRefineMode(true)
	chatLog := &fakeChatLog{}
	composer := NewMessageComposer(chatLog, settings, &fakeReviewer{edited: "my own words", accepted: true})

	message, err := composer.Send("John", "a red fox", nil)

	assert.NoError(t, err)
	assert.Equal(t, "my own words", message.Text)
}

func TestSendSkipsReviewerWhenRefineModeOff(t *testing.T) {
	settings := NewSettings()
	reviewer := &fakeReviewer{accepted: false}
	composer := NewMessageComposer(&fakeChatLog{}, settings, reviewer)

	_, err := composer.Send("John", "a red fox", nil)

	assert.NoError(t, err)
	assert.Zero(t, reviewer.calls)
}
