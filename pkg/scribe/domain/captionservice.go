package domain

import (
	"errors"

	"kgeyst.com/scribe/pkg/common"
)

// BusyIndicator is toggled around every caption operation so front-ends can show progress.
type BusyIndicator interface {
	SetBusy(busy bool)
}

// Notifier surfaces operation failures to the user as a transient notification (a "toast").
type Notifier interface {
	Notify(message string)
}

type CaptionOptions struct {
	// Sender is whom the composed chat message is attributed to.
	Sender string
	// Prompt overrides the configured caption prompt (only the multimodal backend uses prompts).
	Prompt string
	// Quiet returns the caption without composing and appending a chat message.
	Quiet bool
}

// CaptionService is the single entry point all front-ends converge on: encode the image, route it
// to the active backend, optionally save the image and post the composed message. Every failure
// is logged, surfaced via the notifier and resolved to an empty caption; nothing propagates past
// this boundary. Note that nothing here prevents two operations from overlapping if a front-end
// triggers them concurrently.
type CaptionService struct {
	dispatcher *Dispatcher
	encoder    ImageEncoder
	store      ImageStore   // nullable
	fetcher    ImageFetcher // nullable
	composer   *MessageComposer
	chatLog    ChatLog
	busy       BusyIndicator
	notifier   Notifier
	logger     common.Logger
}

func NewCaptionService(
	dispatcher *Dispatcher,
	encoder ImageEncoder,
	store ImageStore,
	fetcher ImageFetcher,
	composer *MessageComposer,
	chatLog ChatLog,
	busy BusyIndicator,
	notifier Notifier,
	logger common.Logger,
) *CaptionService {
	return &CaptionService{
		dispatcher: dispatcher,
		encoder:    encoder,
		store:      store,
		fetcher:    fetcher,
		composer:   composer,
		chatLog:    chatLog,
		busy:       busy,
		notifier:   notifier,
		logger:     logger,
	}
}

// CaptionFile captions the image file at `filePath`. Returns the caption, or an empty string if
// anything went wrong.
func (s *CaptionService) CaptionFile(filePath string, options CaptionOptions) string {
	s.busy.SetBusy(true)
	defer s.busy.SetBusy(false)
	image, err := s.encoder.EncodeFile(filePath)
	if err != nil {
		return s.fail(err)
	}
	attachment := &Attachment{FilePath: filePath, DataURI: image.DataURI, Format: image.Format}
	return s.caption(image, attachment, options)
}

// CaptionURL downloads the image at `url` (digging it out of an HTML page if necessary) and
// captions it.
func (s *CaptionService) CaptionURL(url string, options CaptionOptions) string {
	s.busy.SetBusy(true)
	defer s.busy.SetBusy(false)
	if s.fetcher == nil {
		return s.fail(ErrNoImage)
	}
	filePath, err := s.fetcher.FetchImage(url)
	if err != nil {
		return s.fail(err)
	}
	image, err := s.encoder.EncodeFile(filePath)
	if err != nil {
		return s.fail(err)
	}
	attachment := &Attachment{URL: url, FilePath: filePath, DataURI: image.DataURI, Format: image.Format}
	return s.caption(image, attachment, options)
}

// CaptionMessage captions the image attached to the chat log entry at `index` instead of taking
// a new file, so users can refer back to something posted earlier.
func (s *CaptionService) CaptionMessage(index int, options CaptionOptions) string {
	s.busy.SetBusy(true)
	defer s.busy.SetBusy(false)
	message, err := s.chatLog.MessageAt(index)
	if err != nil {
		return s.fail(err)
	}
	image, attachment, err := s.reattach(message)
	if err != nil {
		return s.fail(err)
	}
	return s.caption(image, attachment, options)
}

func (s *CaptionService) caption(image EncodedImage, attachment *Attachment, options CaptionOptions) string {
	result, err := s.dispatcher.Dispatch(CaptionRequest{
		ImageBase64:  image.Base64,
		ImageDataURI: image.DataURI,
		Prompt:       options.Prompt,
	})
	if err != nil {
		return s.fail(err)
	}
	if options.Quiet {
		return result.Caption
	}
	if s.store != nil {
		savedPath, err := s.store.Save(image)
		if err != nil {
			s.logger.Log("failed to save the image: " + err.Error())
		} else {
			attachment.FilePath = savedPath
		}
	}
	_, err = s.composer.Send(options.Sender, result.Caption, attachment)
	if err != nil {
		return s.fail(err)
	}
	return result.Caption
}

// reattach recovers an EncodedImage from whatever reference the attachment still holds.
func (s *CaptionService) reattach(message *ChatMessage) (EncodedImage, *Attachment, error) {
	attachment := message.Attachment
	if attachment == nil {
		return EncodedImage{}, nil, ErrNoImage
	}
	if attachment.DataURI != "" {
		image, err := EncodedImageFromDataURI(attachment.DataURI)
		return image, attachment, err
	}
	if attachment.FilePath != "" {
		image, err := s.encoder.EncodeFile(attachment.FilePath)
		return image, attachment, err
	}
	if attachment.URL != "" && s.fetcher != nil {
		filePath, err := s.fetcher.FetchImage(attachment.URL)
		if err != nil {
			return EncodedImage{}, nil, err
		}
		image, err := s.encoder.EncodeFile(filePath)
		return image, attachment, err
	}
	return EncodedImage{}, nil, ErrNoImage
}

func (s *CaptionService) fail(err error) string {
	s.logger.Log(err.Error())
	if errors.Is(err, ErrReviewCancelled) {
		s.notifier.Notify("captioning cancelled")
	} else {
		s.notifier.Notify("failed to caption the image: " + err.Error())
	}
	return ""
}
