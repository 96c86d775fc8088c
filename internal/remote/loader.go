// Package remote probes a remote asset directory for a fixed set of face
// texture filenames at session start and hands whatever exists to the session
// as one batch.
package remote

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/logger"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// candidates are the seven filenames probed under the asset directory. Each
// maps to one face key.
var candidates = []struct {
	File string
	Face texture.FaceKey
}{
	{"Front.png", texture.FaceFront},
	{"Back.png", texture.FaceBack},
	{"Left.png", texture.FaceLeft},
	{"Right.png", texture.FaceRight},
	{"Top.png", texture.FaceTop},
	{"Bottom.png", texture.FaceBottom},
	{"Map.png", texture.FaceMap},
}

// Result is one successfully fetched face asset. Decoding happens later, on
// the UI thread, when the batch is merged.
type Result struct {
	Face   texture.FaceKey
	Source string
	Data   []byte
}

// Loader probes the seven candidate files concurrently. Probes are
// independent; a failed probe is logged and leaves its face unbound, never
// failing the others.
type Loader struct {
	client *http.Client
	log    *logger.Logger
}

func NewLoader(log *logger.Logger) *Loader {
	return &Loader{client: newClient(), log: log}
}

// Probe fetches every candidate under baseURL/dir and blocks until all probes
// finish. The returned results are a complete batch: callers merge them in one
// state update so partial loads are never observed.
func (l *Loader) Probe(baseURL, dir string) []Result {
	base := strings.TrimSuffix(baseURL, "/")
	var (
		mu      sync.Mutex
		results []Result
		wg      sync.WaitGroup
	)
	for _, c := range candidates {
		wg.Add(1)
		go func(file string, face texture.FaceKey) {
			defer wg.Done()
			src := base + "/" + url.PathEscape(dir) + "/" + file
			data, err := l.fetch(src)
			if err != nil {
				if l.log != nil {
					l.log.Logf("autoload: %s skipped: %v", file, err)
				}
				return
			}
			mu.Lock()
			results = append(results, Result{Face: face, Source: src, Data: data})
			mu.Unlock()
		}(c.File, c.Face)
	}
	wg.Wait()
	return results
}

// ProbeAsync runs Probe on a goroutine and delivers the finished batch on out.
// The caller drains out on the UI thread and applies the batch there.
func (l *Loader) ProbeAsync(baseURL, dir string, out chan<- []Result) {
	go func() {
		out <- l.Probe(baseURL, dir)
	}()
}
