package web

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mvdan/xurls"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

type imageFetcher struct{}

// NewImageFetcher downloads images referenced in chat text. A URL which points straight at an
// image file is downloaded as is; for an HTML page, the first <img> on the page is used instead.
func NewImageFetcher() domain.ImageFetcher {
	return &imageFetcher{}
}

func (f *imageFetcher) FindImageURL(text string) string {
	urls := xurls.Relaxed.FindAllString(text, -1)
	for _, found := range urls {
		if domain.IsImageFileName(found) {
			return found
		}
	}
	// No direct image link; the first URL may still be a page with an image on it.
	if len(urls) != 0 {
		return urls[0]
	}
	return ""
}

func (f *imageFetcher) FetchImage(imageURL string) (string, error) {
	if domain.IsImageFileName(imageURL) {
		return f.download(imageURL)
	}
	embedded, err := f.findEmbeddedImage(imageURL)
	if err != nil {
		return "", err
	}
	return f.download(embedded)
}

func (f *imageFetcher) download(imageURL string) (string, error) {
	format := domain.ImageFormatFromFileName(imageURL)
	if format == "" {
		return "", fmt.Errorf("%w: \"%s\" doesn't look like an image", domain.ErrNoImage, imageURL)
	}
	filePath := filepath.Join(os.TempDir(), "scribe_"+uuid.NewString()+"."+format)
	err := common.DownloadFromURL(imageURL, filePath)
	if err != nil {
		return "", err
	}
	return filePath, nil
}

// findEmbeddedImage loads the page and returns the address of the first <img> element, resolved
// against the page URL when it's relative.
func (f *imageFetcher) findEmbeddedImage(pageURL string) (string, error) {
	page, err := common.ReadAllFromURL(pageURL)
	if err != nil {
		return "", err
	}
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}
	src, ok := document.Find("img").First().Attr("src")
	if !ok || src == "" {
		return "", fmt.Errorf("%w: no image found at \"%s\"", domain.ErrNoImage, pageURL)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	resolved, err := base.Parse(src)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}
