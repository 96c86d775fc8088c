package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func assetServer(t *testing.T, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data, ok := files[r.URL.Path]; ok {
			_, _ = w.Write(data)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbeLoadsOnlyExistingFiles(t *testing.T) {
	srv := assetServer(t, map[string][]byte{
		"/boxes/Back.png":  pngBytes(t, 300, 200),
		"/boxes/Right.png": pngBytes(t, 160, 200),
	})

	results := NewLoader(nil).Probe(srv.URL, "boxes")
	require.Len(t, results, 2)

	faces := []string{string(results[0].Face), string(results[1].Face)}
	sort.Strings(faces)
	assert.Equal(t, []string{"back", "right"}, faces)
	for _, r := range results {
		assert.NotEmpty(t, r.Data)
		assert.Contains(t, r.Source, srv.URL+"/boxes/")
	}
}

func TestProbeAllMissing(t *testing.T) {
	srv := assetServer(t, nil)
	results := NewLoader(nil).Probe(srv.URL, "nothing-here")
	assert.Empty(t, results)
}

func TestProbeSurvivesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/d/Front.png" {
			_, _ = w.Write(pngBytes(t, 10, 10))
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	results := NewLoader(nil).Probe(srv.URL, "d")
	require.Len(t, results, 1)
	assert.Equal(t, texture.FaceFront, results[0].Face)
	assert.Equal(t, len(candidates), calls, "every candidate probed despite failures")
}

func TestProbeTrailingSlashBase(t *testing.T) {
	srv := assetServer(t, map[string][]byte{"/d/Map.png": pngBytes(t, 10, 10)})
	results := NewLoader(nil).Probe(srv.URL+"/", "d")
	require.Len(t, results, 1)
	assert.Equal(t, texture.FaceMap, results[0].Face)
}

func TestProbeAsyncDeliversOneBatch(t *testing.T) {
	srv := assetServer(t, map[string][]byte{"/d/Top.png": pngBytes(t, 10, 10)})
	out := make(chan []Result, 1)
	NewLoader(nil).ProbeAsync(srv.URL, "d", out)
	select {
	case batch := <-out:
		require.Len(t, batch, 1)
		assert.Equal(t, texture.FaceTop, batch[0].Face)
	case <-time.After(10 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestCandidateVocabulary(t *testing.T) {
	require.Len(t, candidates, 7)
	seen := map[texture.FaceKey]bool{}
	for _, c := range candidates {
		assert.True(t, texture.Valid(c.Face))
		seen[c.Face] = true
	}
	assert.Len(t, seen, 7, "each candidate maps to a distinct face")
}
