// api/classifier/loader.go
package classifier

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Where the model artifact lives locally and where to fetch it from when the
// local copy is missing. Both can be overridden via MODEL_PATH / MODEL_URL.
const (
	DefaultModelPath = "model.txt"
	DefaultModelURL  = "https://storage.googleapis.com/shoppersignal-models/purchase_lgbm.txt"
)

// Loader owns the once-per-process classifier instance. The first Get loads
// (downloading the artifact first if needed); every later Get returns the
// same classifier, or the same error — a failed load is not retried for the
// process lifetime.
type Loader struct {
	path string
	url  string

	once   sync.Once
	clf    Classifier
	err    error
	loaded atomic.Bool
}

// NewLoader resolves the artifact location from the environment, falling back
// to the defaults above.
func NewLoader() *Loader {
	path := os.Getenv("MODEL_PATH")
	if path == "" {
		log.Println("MODEL_PATH environment variable not set. Using default:", DefaultModelPath)
		path = DefaultModelPath
	}
	url := os.Getenv("MODEL_URL")
	if url == "" {
		url = DefaultModelURL
	}
	return &Loader{path: path, url: url}
}

// NewLoaderAt builds a loader for an explicit path and download URL.
func NewLoaderAt(path, url string) *Loader {
	return &Loader{path: path, url: url}
}

// Get returns the process-wide classifier, initializing it on first call.
func (l *Loader) Get() (Classifier, error) {
	l.once.Do(func() {
		l.clf, l.err = l.load()
		if l.err != nil {
			log.Printf("ERROR: Failed to load classifier: %v", l.err)
		} else {
			l.loaded.Store(true)
			log.Printf("Classifier loaded from %s", l.path)
		}
	})
	return l.clf, l.err
}

// Loaded reports whether the classifier has been initialized successfully.
// It never triggers a load.
func (l *Loader) Loaded() bool {
	return l.loaded.Load()
}

func (l *Loader) load() (Classifier, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		log.Printf("Model artifact not found at %s, downloading from %s", l.path, l.url)
		if err := l.download(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrModelUnavailable, l.path, err)
	}
	return NewLightGBM(l.path)
}

// download fetches the artifact to a temp file and renames it into place so
// a partial download never becomes the cached copy.
func (l *Loader) download() error {
	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Get(l.url)
	if err != nil {
		return fmt.Errorf("fetching model artifact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching model artifact: unexpected status %s", resp.Status)
	}

	dir := filepath.Dir(l.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating model directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "model-*.download")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing model artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing model artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("moving model artifact into place: %w", err)
	}

	log.Printf("Model artifact cached at %s", l.path)
	return nil
}
