package domain

import "fmt"

// CaptionSource identifies which captioning backend is active. The set is fixed: dynamic
// string tags would let typos silently disable captioning.
type CaptionSource int

const (
	SourceLocal = CaptionSource(iota)
	SourceExtras
	SourceHorde
	SourceMultimodal
)

var sourceNames = map[CaptionSource]string{
	SourceLocal:      "local",
	SourceExtras:     "extras",
	SourceHorde:      "horde",
	SourceMultimodal: "multimodal",
}

func (s CaptionSource) String() string {
	name, ok := sourceNames[s]
	if !ok {
		return fmt.Sprintf("source(%d)", int(s))
	}
	return name
}

func ParseCaptionSource(name string) (CaptionSource, error) {
	for source, sourceName := range sourceNames {
		if sourceName == name {
			return source, nil
		}
	}
	return 0, fmt.Errorf("%w: \"%s\"", ErrUnknownSource, name)
}
