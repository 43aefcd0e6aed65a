package compositor

import (
	"testing"

	"github.com/gogpu/gg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackByWeight(t *testing.T) {
	fonts, err := NewFontRegistry(nil)
	require.NoError(t, err)
	defer fonts.Close()

	assert.Same(t, fonts.regular, fonts.Source("sans-serif", 100))
	assert.Same(t, fonts.regular, fonts.Source("Inter", 400))
	assert.Same(t, fonts.medium, fonts.Source("Roboto", 600))
	assert.Same(t, fonts.bold, fonts.Source("Open Sans", 700))
	assert.Same(t, fonts.bold, fonts.Source("Dela Gothic One", 900))
}

func TestMissingFontFileFallsBack(t *testing.T) {
	fonts, err := NewFontRegistry(map[string]map[string]string{
		"noto sans jp": {"400": "/nonexistent/NotoSansJP.ttf"},
	})
	require.NoError(t, err)
	defer fonts.Close()

	assert.Empty(t, fonts.Loaded())
	assert.Same(t, fonts.regular, fonts.Source("Noto Sans JP", 400))
}

func TestConfiguredFamilyIsCaseInsensitive(t *testing.T) {
	fonts, err := NewFontRegistry(nil)
	require.NoError(t, err)
	defer fonts.Close()

	// reuse the embedded bold font as a stand-in family file
	fonts.register("zen kaku gothic new", 700, fonts.bold)

	assert.Equal(t, []string{"zen kaku gothic new"}, fonts.Loaded())
	assert.Same(t, fonts.bold, fonts.Source("Zen Kaku Gothic New", 100))

	face := fonts.Face("Zen Kaku Gothic New", 400, 48)
	assert.Equal(t, 48.0, face.Size())
}

func TestNearestWeight(t *testing.T) {
	weights := map[int]*text.FontSource{300: nil, 700: nil}

	assert.Equal(t, 300, nearestWeight(weights, 100))
	assert.Equal(t, 300, nearestWeight(weights, 400))
	assert.Equal(t, 700, nearestWeight(weights, 500))
	assert.Equal(t, 700, nearestWeight(weights, 900))
}

func TestSplitRunsUsesFallbackForJapanese(t *testing.T) {
	fonts, err := NewFontRegistry(nil)
	require.NoError(t, err)
	defer fonts.Close()

	primary := fonts.Face("sans-serif", 400, 40)
	fallback := fonts.Fallback(40)

	tests := []struct {
		name  string
		input string
		want  []string
		faces []text.Face
	}{
		{"latin only", "Hello", []string{"Hello"}, []text.Face{primary}},
		{"japanese only", "新しいテキスト", []string{"新しいテキスト"}, []text.Face{fallback}},
		{"mixed", "Go言語 v2", []string{"Go", "言語", " v2"}, []text.Face{primary, fallback, primary}},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := splitRuns(tt.input, primary, fallback)
			require.Len(t, runs, len(tt.want))
			for i, run := range runs {
				assert.Equal(t, tt.want[i], run.text)
				assert.Same(t, tt.faces[i], run.face)
			}
		})
	}
}
