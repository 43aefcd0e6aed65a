package cache

import (
	"context"
	"testing"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTracksRenderedState(t *testing.T) {
	layer := &entity.TextLayer{ID: "l", Text: "hi", X: 10, Y: 20, FontSize: 300}
	base := entity.State{BackgroundVersion: "v1", Layer: layer}
	base2 := entity.State{BackgroundVersion: "v1", Layer: &entity.TextLayer{ID: "l", Text: "hi", X: 10, Y: 20, FontSize: 300}}

	assert.Equal(t, Key(base, true, 0), Key(base2, true, 0))

	moved := *layer
	moved.Y = 30
	tests := []struct {
		name  string
		state entity.State
		guide bool
		width int
	}{
		{"guides off", base, false, 0},
		{"display width", base, true, 500},
		{"new background", entity.State{BackgroundVersion: "v2", Layer: layer}, true, 0},
		{"moved layer", entity.State{BackgroundVersion: "v1", Layer: &moved}, true, 0},
		{"no layer", entity.State{BackgroundVersion: "v1"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, Key(base, true, 0), Key(tt.state, tt.guide, tt.width))
		})
	}
}

func TestNopCache(t *testing.T) {
	var c FrameCache = NopCache{}
	require.NoError(t, c.Set(context.Background(), "k", []byte("v")))

	data, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}
