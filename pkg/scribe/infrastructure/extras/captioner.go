package extras

import (
	"fmt"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

const (
	// ConfigKeyExtrasURL the base URL of the extras server
	ConfigKeyExtrasURL = "extrasURL"
	// ConfigKeyExtrasKey optional bearer token for the extras server
	ConfigKeyExtrasKey = "extrasKey"
)

const defaultExtrasURL = "http://127.0.0.1:5000"

type captioner struct {
	url    string
	apiKey string
}

// NewCaptioner captions images via a companion "extras" server which exposes a BLIP-style
// captioning pipeline over HTTP.
func NewCaptioner(config *common.Config) domain.Captioner {
	return &captioner{
		url:    config.GetStringOrDefault(ConfigKeyExtrasURL, defaultExtrasURL),
		apiKey: config.GetString(ConfigKeyExtrasKey),
	}
}

func (c *captioner) Caption(request domain.CaptionRequest) (domain.CaptionResult, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.apiKey}
	}
	var response struct {
		Caption string `json:"caption"`
	}
	err := common.PostJSON(
		c.url+"/api/caption",
		map[string]string{"image": request.ImageBase64},
		headers,
		&response,
	)
	if err != nil {
		return domain.CaptionResult{}, fmt.Errorf("%w (extras): %s", domain.ErrCaptionFailed, err.Error())
	}
	return domain.CaptionResult{Caption: response.Caption}, nil
}
