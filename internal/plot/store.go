package plot

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/KaramelBytes/likelens/internal/utils"
)

// ArtifactKey is the storage key for a category's chart.
func ArtifactKey(category string) string {
	return category + "_views_likes_plot"
}

// Artifact references a persisted chart.
type Artifact struct {
	Key  string `json:"key"`
	Path string `json:"-"`
	URL  string `json:"url"`
}

// Store persists chart PNGs under Root as {key}.png. A newer save for the
// same key replaces the previous file.
type Store struct {
	Root string
	// URLPrefix is prepended to the file name to build Artifact.URL.
	URLPrefix string

	locks sync.Map // key -> *sync.Mutex
}

// NewStore returns a store rooted at root, serving files under urlPrefix.
func NewStore(root, urlPrefix string) *Store {
	return &Store{Root: root, URLPrefix: urlPrefix}
}

// Save writes png for category. Writers for the same key are serialized and
// each write lands atomically, so readers never observe a partial file.
func (s *Store) Save(category string, png []byte) (Artifact, error) {
	key := ArtifactKey(category)
	name := key + ".png"
	dst := filepath.Join(s.Root, name)

	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("mkdir artifact dir: %w", err)
	}
	if err := utils.SafeWriteFile(dst, png); err != nil {
		return Artifact{}, fmt.Errorf("write artifact %s: %w", key, err)
	}
	return Artifact{Key: key, Path: dst, URL: path.Join(s.URLPrefix, name)}, nil
}

func (s *Store) lock(key string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}
