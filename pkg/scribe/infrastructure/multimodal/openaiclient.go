package multimodal

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

const (
	// ConfigKeyMultimodalKey the API key for the multimodal endpoint
	ConfigKeyMultimodalKey = "multimodalKey"
	// ConfigKeyMultimodalCustomURL the base URL used when multimodalAPI is "custom"
	ConfigKeyMultimodalCustomURL = "multimodalCustomURL"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"
const defaultVisionModel = "gpt-4o-mini"
const maxCaptionTokens = 300

var errEmptyModelResponse = errors.New("the model returned no choices")

type openAIVisionClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIVisionClient builds the shared vision client on top of the OpenAI-compatible chat
// completion API, which every supported multimodal endpoint speaks. The base URL is picked by
// the multimodalAPI setting; an allowed reverse proxy overrides it.
func NewOpenAIVisionClient(settings *domain.Settings, config *common.Config) VisionClient {
	clientConfig := openai.DefaultConfig(config.GetString(ConfigKeyMultimodalKey))
	switch settings.MultimodalAPI() {
	case domain.MultimodalAPIOpenRouter:
		clientConfig.BaseURL = openRouterBaseURL
	case domain.MultimodalAPICustom:
		customURL := config.GetString(ConfigKeyMultimodalCustomURL)
		if customURL != "" {
			clientConfig.BaseURL = customURL
		}
	}
	if settings.AllowReverseProxy() && settings.ReverseProxyURL() != "" {
		clientConfig.BaseURL = settings.ReverseProxyURL()
	}
	model := settings.MultimodalModel()
	if model == "" {
		model = defaultVisionModel
	}
	return &openAIVisionClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (o *openAIVisionClient) Describe(imageDataURI, prompt string) (string, error) {
	response, err := o.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model:     o.model,
			MaxTokens: maxCaptionTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: prompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL: imageDataURI,
							},
						},
					},
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errEmptyModelResponse
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
