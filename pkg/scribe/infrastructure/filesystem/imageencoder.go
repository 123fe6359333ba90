package filesystem

import (
	"fmt"
	"os"

	"kgeyst.com/scribe/pkg/scribe/domain"
)

type imageEncoder struct{}

func NewImageEncoder() domain.ImageEncoder {
	return &imageEncoder{}
}

func (e *imageEncoder) EncodeFile(filePath string) (domain.EncodedImage, error) {
	format := domain.ImageFormatFromFileName(filePath)
	if format == "" {
		return domain.EncodedImage{}, fmt.Errorf("%w: \"%s\" is not an image file", domain.ErrNoImage, filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return domain.EncodedImage{}, err
	}
	return domain.NewEncodedImage(data, format), nil
}
