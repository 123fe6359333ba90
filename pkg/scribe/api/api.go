package api

import (
	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/extras"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/filesystem"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/horde"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/inmemory"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/local"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/multimodal"
	"kgeyst.com/scribe/pkg/scribe/infrastructure/web"
)

// See domain/config.go
const (
	ConfigKeyAgentName = "agentName"
	ConfigKeyLogPath   = "logPath"
)

// Frontend is what the hosting surface (IRC channel, console...) contributes to the wiring.
// Every field is optional: a nil reviewer disables the interactive part of refine mode, a nil
// asker disables interactive prompts, nil notifier/busy fall back to the log. A front-end that
// already has a logger should pass it here so both ends write through the same file writer.
type Frontend struct {
	Reviewer    domain.Reviewer
	PromptAsker multimodal.PromptAsker
	Notifier    domain.Notifier
	Busy        domain.BusyIndicator
	Logger      common.Logger
}

// API is the entrypoint to Scribe. It shouldn't contain any logic of its own; it glues all the
// components together and exposes the caption operations to front-ends.
type API interface {
	// Execute runs a parsed caption command and returns the caption so front-ends can pipe it
	// onward. On any failure the caption is empty and the user has already been notified.
	Execute(command Command, sender string) string
	// RecordMessage appends a plain chat line to the log. If the line carries an image URL, the
	// URL is remembered as the message's attachment so the image can be captioned later by id.
	RecordMessage(who, what string)
	// Settings exposes the caption settings for runtime tweaking by front-end commands.
	Settings() *domain.Settings
	// ChatLog exposes the ordered chat log (read it to show message ids to the user).
	ChatLog() domain.ChatLog
}

type api struct {
	service  *domain.CaptionService
	settings *domain.Settings
	chatLog  domain.ChatLog
	fetcher  domain.ImageFetcher
	notifier domain.Notifier
	logger   common.Logger
}

func NewAPI(config *common.Config, frontend Frontend) (API, error) {
	logger := frontend.Logger
	if logger == nil {
		logger = common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt"))
	}
	settings, err := domain.NewSettingsFromConfig(config)
	if err != nil {
		return nil, err
	}
	notifier := frontend.Notifier
	if notifier == nil {
		notifier = &logNotifier{logger: logger}
	}
	busy := frontend.Busy
	if busy == nil {
		busy = &noopBusyIndicator{}
	}
	chatLog := inmemory.NewChatLog()
	dispatcher := domain.NewDispatcher(settings)
	dispatcher.Register(domain.SourceLocal, local.NewCaptioner(config))
	dispatcher.Register(domain.SourceExtras, extras.NewCaptioner(config))
	dispatcher.Register(domain.SourceHorde, horde.NewCaptioner(config))
	dispatcher.Register(domain.SourceMultimodal, multimodal.NewCaptioner(
		multimodal.NewOpenAIVisionClient(settings, config),
		settings,
		frontend.PromptAsker,
	))
	fetcher := web.NewImageFetcher()
	service := domain.NewCaptionService(
		dispatcher,
		filesystem.NewImageEncoder(),
		filesystem.NewImageStore(config),
		fetcher,
		domain.NewMessageComposer(chatLog, settings, frontend.Reviewer),
		chatLog,
		busy,
		notifier,
		logger,
	)
	return &api{
		service:  service,
		settings: settings,
		chatLog:  chatLog,
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger,
	}, nil
}

func (a *api) Execute(command Command, sender string) string {
	options := domain.CaptionOptions{
		Sender: sender,
		Prompt: command.Prompt,
		Quiet:  command.Quiet,
	}
	if command.MessageIndex >= 0 {
		return a.service.CaptionMessage(command.MessageIndex, options)
	}
	if command.Target == "" {
		a.notifier.Notify("nothing to caption: give me a file, a URL or a message id")
		return ""
	}
	if isURL(command.Target) {
		return a.service.CaptionURL(command.Target, options)
	}
	return a.service.CaptionFile(command.Target, options)
}

func (a *api) RecordMessage(who, what string) {
	var attachment *domain.Attachment
	imageURL := a.fetcher.FindImageURL(what)
	if imageURL != "" && domain.IsImageFileName(imageURL) {
		attachment = &domain.Attachment{
			URL:    imageURL,
			Format: domain.ImageFormatFromFileName(imageURL),
		}
	}
	message := domain.NewChatMessage(a.chatLog.NextID(), who, true, what, attachment)
	err := a.chatLog.Append(message)
	if err != nil {
		a.logger.Log(err.Error())
	}
}

func (a *api) Settings() *domain.Settings {
	return a.settings
}

func (a *api) ChatLog() domain.ChatLog {
	return a.chatLog
}

type logNotifier struct {
	logger common.Logger
}

func (l *logNotifier) Notify(message string) {
	l.logger.Log("notification: " + message)
}

type noopBusyIndicator struct{}

func (n *noopBusyIndicator) SetBusy(busy bool) {}
