package viewer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPLoaderLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/image/good" {
			_, _ = w.Write([]byte("hq bytes"))
			return
		}
		http.Error(w, "no such file", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := &HTTPLoader{Base: srv.URL}

	res := <-loader.Load("/api/image/good?t=123")
	assert.NoError(t, res.Err)
	assert.Equal(t, "/api/image/good?t=123", res.URL)

	res = <-loader.Load("/api/image/bad?t=123")
	assert.Error(t, res.Err)
}
