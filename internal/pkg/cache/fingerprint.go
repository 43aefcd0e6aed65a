package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/ds124wfegd/catchcraft/internal/entity"
)

type fingerprint struct {
	Background   string            `json:"b"`
	Layer        *entity.TextLayer `json:"l,omitempty"`
	Guides       bool              `json:"g"`
	DisplayWidth int               `json:"w"`
}

// Key fingerprints everything a frame is rendered from. The background is identified
// by the version assigned on upload.
func Key(state entity.State, guides bool, displayWidth int) string {
	data, _ := json.Marshal(fingerprint{
		Background:   state.BackgroundVersion,
		Layer:        state.Layer,
		Guides:       guides,
		DisplayWidth: displayWidth,
	})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
