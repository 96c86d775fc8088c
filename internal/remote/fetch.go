package remote

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0"

// maxAssetBytes caps a single fetched asset. Anything larger than this is not
// a plausible face texture.
const maxAssetBytes = 32 << 20

// fetch GETs url and returns the response body. Any status other than 200 is
// treated as "asset absent" and reported as an error; callers decide whether
// that is worth logging.
func (l *Loader) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote: HTTP %d for %s", resp.StatusCode, url)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("remote: %s exceeds %d bytes", url, maxAssetBytes)
	}
	return data, nil
}

func newClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
