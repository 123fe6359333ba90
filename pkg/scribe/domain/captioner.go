package domain

// CaptionRequest carries the image in the two forms backends expect (some want the raw base64
// payload, multimodal models want the full data URI) plus an optional prompt.
type CaptionRequest struct {
	ImageBase64  string
	ImageDataURI string
	Prompt       string
}

type CaptionResult struct {
	Caption string
}

// Captioner obtains a textual description of an image. Implementations live in infrastructure,
// one per remote captioning service.
type Captioner interface {
	Caption(request CaptionRequest) (CaptionResult, error)
}
