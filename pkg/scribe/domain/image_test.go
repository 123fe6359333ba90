package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedImageRoundTrip(t *testing.T) {
	image := NewEncodedImage([]byte("not really a picture"), "jpg")

	assert.Equal(t, "jpeg", image.Format)
	assert.Equal(t, "jpeg", FormatFromDataURI(image.DataURI))

	decoded, err := EncodedImageFromDataURI(image.DataURI)
	assert.NoError(t, err)
	assert.Equal(t, image.Base64, decoded.Base64)
	assert.Equal(t, image.Format, decoded.Format)
}

func TestFormatFromDataURI(t *testing.T) {
	assert.Equal(t, "png", FormatFromDataURI("data:image/png;base64,aGk="))
	assert.Equal(t, "", FormatFromDataURI("data:text/plain;base64,aGk="))
	assert.Equal(t, "", FormatFromDataURI("just some text"))
}

func TestImageFormatFromFileName(t *testing.T) {
	assert.Equal(t, "jpeg", ImageFormatFromFileName("holiday.JPG"))
	assert.Equal(t, "png", ImageFormatFromFileName("/tmp/pic.png"))
	assert.Equal(t, "webp", ImageFormatFromFileName("https://example.com/a/b.webp?width=100"))
	assert.Equal(t, "", ImageFormatFromFileName("notes.txt"))
	assert.Equal(t, "", ImageFormatFromFileName("https://example.com/page"))
}

func TestEncodedImageFromDataURIRejectsGarbage(t *testing.T) {
	_, err := EncodedImageFromDataURI("hello")
	assert.ErrorIs(t, err, ErrNoImage)
}
