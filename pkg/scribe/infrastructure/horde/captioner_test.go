package horde

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

func TestCaptionUsesAnonymousKeyByDefault(t *testing.T) {
	var receivedKey, receivedImage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/interrogate", r.URL.Path)
		receivedKey = r.Header.Get("apikey")
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		receivedImage = body["source_image"]
		_ = json.NewEncoder(w).Encode(map[string]string{"caption": "a fox in the snow"})
	}))
	defer server.Close()
	captioner := NewCaptioner(common.NewConfigFromValues(map[string]any{
		ConfigKeyHordeURL: server.URL,
	}))

	result, err := captioner.Caption(domain.CaptionRequest{ImageBase64: "aGk="})

	assert.NoError(t, err)
	assert.Equal(t, "a fox in the snow", result.Caption)
	assert.Equal(t, "0000000000", receivedKey)
	assert.Equal(t, "aGk=", receivedImage)
}

func TestCaptionNetworkRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()
	captioner := NewCaptioner(common.NewConfigFromValues(map[string]any{
		ConfigKeyHordeURL: server.URL,
	}))

	_, err := captioner.Caption(domain.CaptionRequest{ImageBase64: "aGk="})

	assert.ErrorIs(t, err, domain.ErrCaptionFailed)
}
