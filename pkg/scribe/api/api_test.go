package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/scribe/pkg/common"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Log(message string) {
	r.lines = append(r.lines, message)
}

func TestNewAPIReusesFrontendLogger(t *testing.T) {
	logger := &recordingLogger{}

	scribe, err := NewAPI(common.NewConfigFromValues(nil), Frontend{Logger: logger})

	require.NoError(t, err)
	// A single logger instance serves both the front-end and the API, so they don't fight over
	// the same log file with two buffered writers.
	assert.Same(t, logger, scribe.(*api).logger)
}

func TestNewAPIRecordsImageAttachments(t *testing.T) {
	scribe, err := NewAPI(common.NewConfigFromValues(nil), Frontend{Logger: &recordingLogger{}})
	require.NoError(t, err)

	scribe.RecordMessage("John", "look https://example.com/fox.png")
	scribe.RecordMessage("John", "no image here")

	require.Equal(t, 2, scribe.ChatLog().Count())
	withImage, err := scribe.ChatLog().MessageAt(0)
	require.NoError(t, err)
	require.NotNil(t, withImage.Attachment)
	assert.Equal(t, "https://example.com/fox.png", withImage.Attachment.URL)
	plain, err := scribe.ChatLog().MessageAt(1)
	require.NoError(t, err)
	assert.Nil(t, plain.Attachment)
}
