package filesystem

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

// ConfigKeyImageSavePath where captioned images are saved; defaults to a folder in the temp directory
const ConfigKeyImageSavePath = "imageSavePath"

type imageStore struct {
	directory string
}

// NewImageStore saves captioned images to disk so chat message attachments survive the image's
// original location disappearing (temp files, remote URLs).
func NewImageStore(config *common.Config) domain.ImageStore {
	return &imageStore{
		directory: config.GetStringOrDefault(ConfigKeyImageSavePath, filepath.Join(os.TempDir(), "scribe-images")),
	}
}

func (s *imageStore) Save(image domain.EncodedImage) (string, error) {
	err := os.MkdirAll(s.directory, 0755)
	if err != nil {
		return "", err
	}
	data, err := base64.StdEncoding.DecodeString(image.Base64)
	if err != nil {
		return "", err
	}
	filePath := filepath.Join(s.directory, uuid.NewString()+"."+image.Format)
	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return "", err
	}
	return filePath, nil
}
