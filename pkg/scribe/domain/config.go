package domain

import (
	"strings"

	"kgeyst.com/scribe/pkg/common"
)

// A list of built-in config keys understood by the captioning core (backend-specific settings,
// such as endpoint URLs, live next to the backends that read them).

const (
	// ConfigKeyCaptionSource which backend captions images: "local", "extras", "horde" or "multimodal"
	ConfigKeyCaptionSource = "captionSource"
	// ConfigKeyMultimodalAPI which API the multimodal backend talks to: "openai", "openrouter" or "custom"
	ConfigKeyMultimodalAPI = "multimodalAPI"
	// ConfigKeyMultimodalModel the model name passed to the multimodal API
	ConfigKeyMultimodalModel = "multimodalModel"
	// ConfigKeyCaptionPrompt the default prompt sent to the multimodal backend
	ConfigKeyCaptionPrompt = "captionPrompt"
	// ConfigKeyCaptionTemplate how the caption is embedded in the chat message; must contain {{caption}}
	ConfigKeyCaptionTemplate = "captionTemplate"
	// ConfigKeyRefineMode whether the user reviews/edits the composed message before it's sent
	ConfigKeyRefineMode = "refineMode"
	// ConfigKeyPromptAsk whether the user is asked for a prompt on every multimodal caption
	ConfigKeyPromptAsk = "promptAsk"
	// ConfigKeyAllowReverseProxy whether the multimodal backend may be redirected to a reverse proxy
	ConfigKeyAllowReverseProxy = "allowReverseProxy"
	// ConfigKeyReverseProxyURL the reverse proxy endpoint (only used when allowReverseProxy is on)
	ConfigKeyReverseProxyURL = "reverseProxyURL"
)

const (
	MultimodalAPIOpenAI     = "openai"
	MultimodalAPIOpenRouter = "openrouter"
	MultimodalAPICustom     = "custom"
)

const CaptionPlaceholder = "{{caption}}"
const DefaultCaptionPrompt = "What's in this image?"
const DefaultCaptionTemplate = "The image shows: {{caption}}"

// Settings holds the captioning configuration. It's an explicit struct passed to whoever needs it
// (never a process-wide global) and is mutated only through the update methods below. Loaded once
// at startup; the host owns persistence, we don't write anything back.
type Settings struct {
	source            CaptionSource
	multimodalAPI     string
	multimodalModel   string
	prompt            string
	template          string
	refineMode        bool
	promptAsk         bool
	allowReverseProxy bool
	reverseProxyURL   string
}

func NewSettings() *Settings {
	return &Settings{
		source:        SourceLocal,
		multimodalAPI: MultimodalAPIOpenAI,
		prompt:        DefaultCaptionPrompt,
		template:      DefaultCaptionTemplate,
	}
}

func NewSettingsFromConfig(config *common.Config) (*Settings, error) {
	source, err := ParseCaptionSource(config.GetStringOrDefault(ConfigKeyCaptionSource, SourceLocal.String()))
	if err != nil {
		return nil, err
	}
	settings := NewSettings()
	settings.source = source
	settings.multimodalAPI = config.GetStringOrDefault(ConfigKeyMultimodalAPI, MultimodalAPIOpenAI)
	settings.multimodalModel = config.GetString(ConfigKeyMultimodalModel)
	settings.prompt = config.GetStringOrDefault(ConfigKeyCaptionPrompt, DefaultCaptionPrompt)
	settings.SetTemplate(config.GetStringOrDefault(ConfigKeyCaptionTemplate, DefaultCaptionTemplate))
	settings.refineMode = config.GetBoolOrDefault(ConfigKeyRefineMode, false)
	settings.promptAsk = config.GetBoolOrDefault(ConfigKeyPromptAsk, false)
	settings.allowReverseProxy = config.GetBoolOrDefault(ConfigKeyAllowReverseProxy, false)
	settings.reverseProxyURL = config.GetString(ConfigKeyReverseProxyURL)
	return settings, nil
}

func (s *Settings) Source() CaptionSource {
	return s.source
}

func (s *Settings) SetSource(source CaptionSource) {
	s.source = source
}

func (s *Settings) MultimodalAPI() string {
	return s.multimodalAPI
}

func (s *Settings) SetMultimodalAPI(api string) {
	s.multimodalAPI = api
}

func (s *Settings) MultimodalModel() string {
	return s.multimodalModel
}

func (s *Settings) SetMultimodalModel(model string) {
	s.multimodalModel = model
}

func (s *Settings) Prompt() string {
	return s.prompt
}

func (s *Settings) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *Settings) Template() string {
	return s.template
}

// SetTemplate updates the message template. A template without the {{caption}} placeholder would
// silently swallow the caption, so the placeholder is appended if it's missing.
func (s *Settings) SetTemplate(template string) {
	template = strings.TrimSpace(template)
	if template == "" {
		template = DefaultCaptionTemplate
	}
	if !strings.Contains(template, CaptionPlaceholder) {
		template += " " + CaptionPlaceholder
	}
	s.template = template
}

func (s *Settings) RefineMode() bool {
	return s.refineMode
}

func (s *Settings) SetRefineMode(refineMode bool) {
	s.refineMode = refineMode
}

func (s *Settings) PromptAsk() bool {
	return s.promptAsk
}

func (s *Settings) SetPromptAsk(promptAsk bool) {
	s.promptAsk = promptAsk
}

func (s *Settings) AllowReverseProxy() bool {
	return s.allowReverseProxy
}

func (s *Settings) ReverseProxyURL() string {
	return s.reverseProxyURL
}
