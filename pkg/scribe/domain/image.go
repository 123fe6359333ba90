package domain

import (
	"encoding/base64"
	"path"
	"strings"

	"kgeyst.com/scribe/pkg/common"
)

// EncodedImage is an image prepared for a caption backend: the same payload with and without
// the data URI prefix, plus the image format (a MIME subtype, such as "jpeg").
type EncodedImage struct {
	Base64  string
	DataURI string
	Format  string
}

const dataURIPrefix = "data:image/"
const dataURIMarker = ";base64,"

var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "bmp"}

func NewEncodedImage(data []byte, format string) EncodedImage {
	format = NormalizeImageFormat(format)
	encoded := base64.StdEncoding.EncodeToString(data)
	return EncodedImage{
		Base64:  encoded,
		DataURI: dataURIPrefix + format + dataURIMarker + encoded,
		Format:  format,
	}
}

// EncodedImageFromDataURI rebuilds an EncodedImage from a previously produced data URI
// (for example, one remembered as a chat message attachment).
func EncodedImageFromDataURI(dataURI string) (EncodedImage, error) {
	markerIndex := strings.Index(dataURI, dataURIMarker)
	if !strings.HasPrefix(dataURI, dataURIPrefix) || markerIndex == -1 {
		return EncodedImage{}, ErrNoImage
	}
	return EncodedImage{
		Base64:  dataURI[markerIndex+len(dataURIMarker):],
		DataURI: dataURI,
		Format:  dataURI[len(dataURIPrefix):markerIndex],
	}, nil
}

// FormatFromDataURI extracts the MIME subtype from a data URI. Returns an empty string if the URI
// doesn't describe an image.
func FormatFromDataURI(dataURI string) string {
	markerIndex := strings.Index(dataURI, dataURIMarker)
	if !strings.HasPrefix(dataURI, dataURIPrefix) || markerIndex == -1 {
		return ""
	}
	return dataURI[len(dataURIPrefix):markerIndex]
}

// ImageFormatFromFileName returns the normalized image format of the file (or URL) based on its
// extension, or an empty string if the extension isn't a known image format.
func ImageFormatFromFileName(name string) string {
	// URLs can carry a query string after the extension.
	if queryIndex := strings.IndexByte(name, '?'); queryIndex != -1 {
		name = name[:queryIndex]
	}
	extension := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if !common.IsStringInSlice(extension, imageExtensions) {
		return ""
	}
	return NormalizeImageFormat(extension)
}

func IsImageFileName(name string) bool {
	return ImageFormatFromFileName(name) != ""
}

// NormalizeImageFormat maps file extensions to MIME subtypes ("jpg" => "jpeg").
func NormalizeImageFormat(format string) string {
	format = strings.ToLower(format)
	if format == "jpg" {
		return "jpeg"
	}
	return format
}

// ImageEncoder converts an image file on disk to an EncodedImage.
type ImageEncoder interface {
	EncodeFile(filePath string) (EncodedImage, error)
}

// ImageStore optionally persists captioned images. Returns the path of the saved file.
type ImageStore interface {
	Save(image EncodedImage) (string, error)
}

// ImageFetcher locates and downloads images referenced in chat text. FetchImage returns the path
// of a local file with the image content; if the URL points to an HTML page, implementations may
// dig the actual image out of the page first.
type ImageFetcher interface {
	FetchImage(url string) (string, error)
	FindImageURL(text string) string
}
