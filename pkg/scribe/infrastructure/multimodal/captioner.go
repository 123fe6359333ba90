package multimodal

import (
	"fmt"

	"kgeyst.com/scribe/pkg/scribe/domain"
)

// PromptAsker interactively asks the user what to ask the model about the image. Only consulted
// when the promptAsk setting is on; front-ends without an interactive surface pass nil.
type PromptAsker interface {
	AskPrompt(defaultPrompt string) (string, error)
}

// VisionClient is the shared client multimodal captioning delegates to: it takes the image as a
// data URI plus a prompt and returns the model's description.
type VisionClient interface {
	Describe(imageDataURI, prompt string) (string, error)
}

type captioner struct {
	client   VisionClient
	settings *domain.Settings
	asker    PromptAsker // nullable
}

// NewCaptioner captions images with a multimodal LLM that accepts image input directly.
func NewCaptioner(client VisionClient, settings *domain.Settings, asker PromptAsker) domain.Captioner {
	return &captioner{
		client:   client,
		settings: settings,
		asker:    asker,
	}
}

func (c *captioner) Caption(request domain.CaptionRequest) (domain.CaptionResult, error) {
	caption, err := c.client.Describe(request.ImageDataURI, c.resolvePrompt(request.Prompt))
	if err != nil {
		return domain.CaptionResult{}, fmt.Errorf("%w (multimodal): %s", domain.ErrCaptionFailed, err.Error())
	}
	return domain.CaptionResult{Caption: caption}, nil
}

// resolvePrompt picks the prompt in priority order: an explicit argument wins, then an
// interactive answer (when promptAsk is on), then the configured default, then the hardcoded one.
func (c *captioner) resolvePrompt(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.settings.PromptAsk() && c.asker != nil {
		answer, err := c.asker.AskPrompt(c.settings.Prompt())
		if err == nil && answer != "" {
			return answer
		}
	}
	if c.settings.Prompt() != "" {
		return c.settings.Prompt()
	}
	return domain.DefaultCaptionPrompt
}
