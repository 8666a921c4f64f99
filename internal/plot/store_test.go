package plot

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "static")
	s := NewStore(root, "/static")

	a1, err := s.Save("food", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, "food_views_likes_plot", a1.Key)
	assert.Equal(t, filepath.Join(root, "food_views_likes_plot.png"), a1.Path)
	assert.Equal(t, "/static/food_views_likes_plot.png", a1.URL)

	a2, err := s.Save("food", []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	b, err := os.ReadFile(a2.Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreConcurrentSameKey(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root, "/static")
	payloads := []string{"aaaa", "bbbbbbbb", "cccccccccccc", "dd"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			_, err := s.Save("songs", []byte(p))
			assert.NoError(t, err)
		}(payloads[i%len(payloads)])
	}
	wg.Wait()

	b, err := os.ReadFile(filepath.Join(root, "songs_views_likes_plot.png"))
	require.NoError(t, err)
	assert.Contains(t, payloads, string(b))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestArtifactKey(t *testing.T) {
	assert.Equal(t, "vlogs_views_likes_plot", ArtifactKey("vlogs"))
}
