package compositor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// FontRegistry resolves a family and weight to a parsed font source.
// Sources are parsed once and shared between renders.
type FontRegistry struct {
	mu       sync.RWMutex
	families map[string]map[int]*text.FontSource
	regular  *text.FontSource
	medium   *text.FontSource
	bold     *text.FontSource
	// glyphs missing from the chosen font (kana, kanji) are drawn from cjk
	cjk *text.FontSource
}

// NewFontRegistry loads the embedded fallback fonts and every configured family file.
// families maps family name to weight ("400") to font file path. A file that fails to
// load is logged and skipped; that weight falls back to the embedded fonts.
func NewFontRegistry(families map[string]map[string]string) (*FontRegistry, error) {
	r := &FontRegistry{families: make(map[string]map[int]*text.FontSource)}

	var err error
	if r.regular, err = text.NewFontSource(goregular.TTF); err != nil {
		return nil, fmt.Errorf("load fallback regular font: %w", err)
	}
	if r.medium, err = text.NewFontSource(gomedium.TTF); err != nil {
		return nil, fmt.Errorf("load fallback medium font: %w", err)
	}
	if r.bold, err = text.NewFontSource(gobold.TTF); err != nil {
		return nil, fmt.Errorf("load fallback bold font: %w", err)
	}
	if r.cjk, err = text.NewFontSource(fonts.MPlus1pRegular_ttf); err != nil {
		return nil, fmt.Errorf("load fallback japanese font: %w", err)
	}

	for family, files := range families {
		for weightKey, path := range files {
			weight, err := strconv.Atoi(weightKey)
			if err != nil {
				logrus.WithFields(logrus.Fields{"family": family, "weight": weightKey}).
					Warn("Skipping font with non-numeric weight")
				continue
			}
			source, err := text.NewFontSourceFromFile(path)
			if err != nil {
				logrus.WithFields(logrus.Fields{"family": family, "path": path}).
					Warnf("Font file not loaded, using fallback: %v", err)
				continue
			}
			r.register(family, weight, source)
		}
	}

	return r, nil
}

func (r *FontRegistry) register(family string, weight int, source *text.FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := familyKey(family)
	if r.families[key] == nil {
		r.families[key] = make(map[int]*text.FontSource)
	}
	r.families[key][weight] = source
}

// Source returns the font source for a family and weight. A configured family uses its
// nearest configured weight; anything else uses the embedded Go fonts.
func (r *FontRegistry) Source(family string, weight int) *text.FontSource {
	r.mu.RLock()
	weights := r.families[familyKey(family)]
	r.mu.RUnlock()

	if len(weights) > 0 {
		return weights[nearestWeight(weights, weight)]
	}

	switch {
	case weight >= 700:
		return r.bold
	case weight >= 500:
		return r.medium
	default:
		return r.regular
	}
}

// Face returns a face of the given pixel size.
func (r *FontRegistry) Face(family string, weight int, size float64) text.Face {
	return r.Source(family, weight).Face(size)
}

// Fallback returns the embedded Japanese face, used for runes the resolved font has
// no glyph for.
func (r *FontRegistry) Fallback(size float64) text.Face {
	return r.cjk.Face(size)
}

// Loaded returns the families that have at least one font file loaded.
func (r *FontRegistry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *FontRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, weights := range r.families {
		for _, source := range weights {
			_ = source.Close()
		}
	}
	r.families = make(map[string]map[int]*text.FontSource)

	_ = r.regular.Close()
	_ = r.medium.Close()
	_ = r.cjk.Close()
	return r.bold.Close()
}

// viper lowercases map keys, so families are matched case-insensitively.
func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func nearestWeight(weights map[int]*text.FontSource, want int) int {
	best, bestDist := 0, -1
	for w := range weights {
		dist := w - want
		if dist < 0 {
			dist = -dist
		}
		// ties go to the heavier weight
		if bestDist < 0 || dist < bestDist || (dist == bestDist && w > best) {
			best, bestDist = w, dist
		}
	}
	return best
}
