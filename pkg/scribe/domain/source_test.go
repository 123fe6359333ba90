package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCaptionSource(t *testing.T) {
	for _, name := range []string{"local", "extras", "horde", "multimodal"} {
		source, err := ParseCaptionSource(name)
		assert.NoError(t, err)
		assert.Equal(t, name, source.String())
	}
}

func TestParseCaptionSourceUnknown(t *testing.T) {
	_, err := ParseCaptionSource("telepathy")
	assert.ErrorIs(t, err, ErrUnknownSource)
}
