package local

import (
	"fmt"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

// ConfigKeyLocalURL the base URL of the local captioning pipeline
const ConfigKeyLocalURL = "localURL"

const defaultLocalURL = "http://127.0.0.1:5100"

type captioner struct {
	url string
}

// NewCaptioner captions images via a captioning pipeline running on the same machine (no API
// key, no queueing: the pipeline either answers or it doesn't).
func NewCaptioner(config *common.Config) domain.Captioner {
	return &captioner{
		url: config.GetStringOrDefault(ConfigKeyLocalURL, defaultLocalURL),
	}
}

func (c *captioner) Caption(request domain.CaptionRequest) (domain.CaptionResult, error) {
	var response struct {
		Caption string `json:"caption"`
	}
	err := common.PostJSON(
		c.url+"/api/caption",
		map[string]string{"image": request.ImageBase64},
		nil,
		&response,
	)
	if err != nil {
		return domain.CaptionResult{}, fmt.Errorf("%w (local): %s", domain.ErrCaptionFailed, err.Error())
	}
	return domain.CaptionResult{Caption: response.Caption}, nil
}
