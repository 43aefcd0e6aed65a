package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGetDelete(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	require.NoError(t, s.Save("exports/abc/image.png", strings.NewReader("png-bytes")))
	assert.True(t, s.Exists("exports/abc/image.png"))

	r, err := s.Get("exports/abc/image.png")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// overwrite replaces the content
	require.NoError(t, s.Save("exports/abc/image.png", strings.NewReader("v2")))
	r, err = s.Get("exports/abc/image.png")
	require.NoError(t, err)
	data, _ = io.ReadAll(r)
	r.Close()
	assert.Equal(t, "v2", string(data))

	require.NoError(t, s.Delete("exports/abc"))
	assert.False(t, s.Exists("exports/abc/image.png"))
}

func TestRejectsEscapingKeys(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	tests := []string{"../outside", "a/../../outside", "/etc/passwd", "", "."}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, s.Save(key, strings.NewReader("x")))
			assert.False(t, s.Exists(key))
			_, err := s.Get(key)
			assert.Error(t, err)
		})
	}
}
