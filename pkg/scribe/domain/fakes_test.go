package domain

import "fmt"

type fakeCaptioner struct {
	caption     string
	err         error
	calls       int
	lastRequest CaptionRequest
}

func (f *fakeCaptioner) Caption(request CaptionRequest) (CaptionResult, error) {
	f.calls++
	f.lastRequest = request
	if f.err != nil {
		return CaptionResult{}, f.err
	}
	return CaptionResult{Caption: f.caption}, nil
}

type fakeChatLog struct {
	messages []*ChatMessage
}

func (f *fakeChatLog) NextID() string {
	return fmt.Sprintf("id-%d", len(f.messages)+1)
}

func (f *fakeChatLog) Append(message *ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatLog) MessageAt(index int) (*ChatMessage, error) {
	if index < 0 || index >= len(f.messages) {
		return nil, fmt.Errorf("no message with id %d", index)
	}
	return f.messages[index], nil
}

func (f *fakeChatLog) Count() int {
	return len(f.messages)
}

type fakeReviewer struct {
	edited   string
	accepted bool
	calls    int
}

func (f *fakeReviewer) Review(text string) (string, bool, error) {
	f.calls++
	if f.edited == "" {
		return text, f.accepted, nil
	}
	return f.edited, f.accepted, nil
}

type fakeEncoder struct {
	image EncodedImage
	err   error
	calls int
}

func (f *fakeEncoder) EncodeFile(filePath string) (EncodedImage, error) {
	f.calls++
	return f.image, f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

type fakeBusyIndicator struct {
	events []bool
}

func (f *fakeBusyIndicator) SetBusy(busy bool) {
	f.events = append(f.events, busy)
}

type fakeLogger struct {
	lines []string
}

func (f *fakeLogger) Log(message string) {
	f.lines = append(f.lines, message)
}
