package domain

import "fmt"

// Dispatcher routes a caption request to the backend registered for the currently active source.
type Dispatcher struct {
	settings   *Settings
	captioners map[CaptionSource]Captioner
}

func NewDispatcher(settings *Settings) *Dispatcher {
	return &Dispatcher{
		settings:   settings,
		captioners: make(map[CaptionSource]Captioner),
	}
}

func (d *Dispatcher) Register(source CaptionSource, captioner Captioner) {
	d.captioners[source] = captioner
}

func (d *Dispatcher) Dispatch(request CaptionRequest) (CaptionResult, error) {
	source := d.settings.Source()
	captioner, ok := d.captioners[source]
	if !ok {
		return CaptionResult{}, fmt.Errorf("%w: \"%s\"", ErrUnknownSource, source)
	}
	return captioner.Caption(request)
}
