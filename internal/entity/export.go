package entity

import "time"

// ExportEvent is published once per successful export.
type ExportEvent struct {
	SessionID  string    `json:"session_id"`
	Filename   string    `json:"filename"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Bytes      int       `json:"bytes"`
	HasText    bool      `json:"has_text"`
	Font       string    `json:"font,omitempty"`
	ExportedAt time.Time `json:"exported_at"`
}

// ExportRecord is the archived metadata of an exported image.
type ExportRecord struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Layer     *TextLayer `json:"text_layer,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
