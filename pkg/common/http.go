package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ReadAllFromURL reads all content from the URL.
// TODO Unsafe if the URL is a dynamic page which infinitely streams output -- we can crash with an OOM in that case.
func ReadAllFromURL(url string) ([]byte, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	content, err := io.ReadAll(res.Body)
	defer func() {
		_ = res.Body.Close()
	}()
	if err != nil {
		return nil, err
	}
	return content, nil
}

// PostJSON sends `body` to the URL as a JSON POST request and decodes the answer into `result` (if it's not nil).
// Additional headers can be passed via `headers` (useful for API keys). A non-2xx status is reported as an error.
func PostJSON(url string, body any, headers map[string]string, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	res, err := http.DefaultClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("unexpected status \"%s\" from %s", res.Status, url)
	}
	if result == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(result)
}

// DownloadFromURL saves the content of the URL to the file at `filePath`.
func DownloadFromURL(url, filePath string) error {
	content, err := ReadAllFromURL(url)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, content, 0644)
}
