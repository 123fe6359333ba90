package extras

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

func TestCaption(t *testing.T) {
	var receivedImage, receivedAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/caption", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		receivedImage = body["image"]
		receivedAuthorization = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"caption": "a red fox"})
	}))
	defer server.Close()
	captioner := NewCaptioner(common.NewConfigFromValues(map[string]any{
		ConfigKeyExtrasURL: server.URL,
		ConfigKeyExtrasKey: "secret",
	}))

	result, err := captioner.Caption(domain.CaptionRequest{ImageBase64: "aGk="})

	assert.NoError(t, err)
	assert.Equal(t, "a red fox", result.Caption)
	assert.Equal(t, "aGk=", receivedImage)
	assert.Equal(t, "Bearer secret", receivedAuthorization)
}

func TestCaptionServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()
	captioner := NewCaptioner(common.NewConfigFromValues(map[string]any{
		ConfigKeyExtrasURL: server.URL,
	}))

	_, err := captioner.Caption(domain.CaptionRequest{ImageBase64: "aGk="})

	assert.ErrorIs(t, err, domain.ErrCaptionFailed)
}
