package horde

import (
	"fmt"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

const (
	// ConfigKeyHordeURL the base URL of the crowdsourced compute network's API
	ConfigKeyHordeURL = "hordeURL"
	// ConfigKeyHordeKey the network API key; anonymous access works but is served last
	ConfigKeyHordeKey = "hordeKey"
)

const defaultHordeURL = "https://aihorde.net/api"
const anonymousHordeKey = "0000000000"

type captioner struct {
	url    string
	apiKey string
}

// NewCaptioner captions images via a distributed volunteer compute network. Requests carry the
// raw base64 payload; the network picks a worker with an interrogation model.
func NewCaptioner(config *common.Config) domain.Captioner {
	return &captioner{
		url:    config.GetStringOrDefault(ConfigKeyHordeURL, defaultHordeURL),
		apiKey: config.GetStringOrDefault(ConfigKeyHordeKey, anonymousHordeKey),
	}
}

func (c *captioner) Caption(request domain.CaptionRequest) (domain.CaptionResult, error) {
	var response struct {
		Caption string `json:"caption"`
	}
	err := common.PostJSON(
		c.url+"/v2/interrogate",
		map[string]string{"source_image": request.ImageBase64},
		map[string]string{"apikey": c.apiKey},
		&response,
	)
	if err != nil {
		return domain.CaptionResult{}, fmt.Errorf("%w (horde): %s", domain.ErrCaptionFailed, err.Error())
	}
	return domain.CaptionResult{Caption: response.Caption}, nil
}
