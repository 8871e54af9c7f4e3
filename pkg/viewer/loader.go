package viewer

import (
	"fmt"
	"io"
	"net/http"
)

// HTTPLoader fetches high-quality variants over plain HTTP. It backs the
// viewer when it runs outside a browser (CLI tooling and integration tests).
type HTTPLoader struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
	// Base is prefixed to proxy paths like /api/image/<id>.
	Base string
}

// Load begins fetching url and reports the outcome on the returned channel.
func (l *HTTPLoader) Load(url string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		ch <- LoadResult{URL: url, Err: l.fetch(url)}
	}()
	return ch
}

// Preload fetches url in the background, discarding the outcome.
func (l *HTTPLoader) Preload(url string) {
	go func() {
		_ = l.fetch(url)
	}()
}

func (l *HTTPLoader) fetch(url string) error {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(l.Base + url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
