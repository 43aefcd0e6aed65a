package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/cache"
	"github.com/ds124wfegd/catchcraft/internal/pkg/compositor"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (s *editorService) CreateSession() string {
	id := uuid.NewString()
	s.sessions.Save(editor.NewSession(id, s.settings.Editor, s.now()))

	logrus.WithField("session_id", id).Info("Session created")
	return id
}

func (s *editorService) GetSession(id string) (*entity.SessionResponse, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := &entity.SessionResponse{ID: id}
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		resp.Width, resp.Height = e.CanvasSize()
		resp.HasImage = e.HasBackground()
		resp.Mode = e.Mode()
		resp.Dragging = e.Dragging()
		if layer, ok := e.Layer(); ok {
			resp.Layer = &layer
			resp.Font = compositor.FontSpec(layer)
		}
		return nil
	})
	resp.LastActivity = session.LastActivity()
	return resp, nil
}

func (s *editorService) DeleteSession(id string) error {
	if err := s.sessions.Delete(id); err != nil {
		return err
	}
	logrus.WithField("session_id", id).Info("Session deleted")
	return nil
}

// SweepIdle drops sessions idle for longer than the session TTL.
func (s *editorService) SweepIdle(now time.Time) int {
	if s.settings.SessionTTL <= 0 {
		return 0
	}
	removed := s.sessions.DeleteIdle(now.Add(-s.settings.SessionTTL))
	for _, id := range removed {
		logrus.WithField("session_id", id).Info("Idle session removed")
	}
	return len(removed)
}

func (s *editorService) SessionCount() int {
	return s.sessions.Count()
}

// UploadBackground decodes outside the session lock, then swaps the background in.
// A failed decode leaves the previous background in place.
func (s *editorService) UploadBackground(id string, data []byte) (*entity.UploadResponse, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, err
	}

	img, format, err := s.processor.Decode(data)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session_id": id, "bytes": len(data)}).
			Warnf("Background rejected: %v", err)
		return nil, err
	}

	resp := &entity.UploadResponse{ID: id, Format: format}
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		e.SetBackground(img, uuid.NewString())
		resp.Width, resp.Height = e.CanvasSize()
		return nil
	})

	logrus.WithFields(logrus.Fields{
		"session_id": id,
		"format":     format,
		"width":      resp.Width,
		"height":     resp.Height,
	}).Info("Background loaded")
	return resp, nil
}

func (s *editorService) AddText(id string) (entity.TextLayer, bool, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return entity.TextLayer{}, false, err
	}

	var (
		layer   entity.TextLayer
		created bool
	)
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		layer, created = e.AddText()
		return nil
	})

	if created {
		logrus.WithFields(logrus.Fields{"session_id": id, "layer_id": layer.ID}).Info("Text layer added")
	}
	return layer, created, nil
}

func (s *editorService) EditText(id string, edit entity.TextEdit) (entity.TextLayer, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return entity.TextLayer{}, err
	}

	var layer entity.TextLayer
	err = session.Do(s.now(), func(e *editor.Editor) error {
		var err error
		layer, err = e.EditText(edit)
		return err
	})
	return layer, err
}

func (s *editorService) ToggleMoveMode(id string) (entity.Mode, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return entity.ModeNormal, err
	}

	var mode entity.Mode
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		mode = e.ToggleMoveMode()
		return nil
	})

	logrus.WithFields(logrus.Fields{"session_id": id, "mode": mode.String()}).Debug("Mode toggled")
	return mode, nil
}

func (s *editorService) KeyDown(id string, key string) (*entity.MoveResponse, error) {
	return s.move(id, func(e *editor.Editor) bool { return e.KeyDown(key) })
}

func (s *editorService) PointerDown(id string, req entity.PointerDownRequest) (*entity.MoveResponse, error) {
	return s.move(id, func(e *editor.Editor) bool {
		return e.PointerDown(
			entity.Point{X: req.X, Y: req.Y},
			entity.Size{Width: req.DisplayedWidth, Height: req.DisplayedHeight},
		)
	})
}

func (s *editorService) PointerMove(id string, req entity.PointerMoveRequest) (*entity.MoveResponse, error) {
	return s.move(id, func(e *editor.Editor) bool {
		return e.PointerMove(entity.Point{X: req.X, Y: req.Y})
	})
}

func (s *editorService) PointerUp(id string) (*entity.MoveResponse, error) {
	return s.move(id, func(e *editor.Editor) bool { return e.PointerUp() })
}

// move runs an interaction event and reports the resulting layer.
func (s *editorService) move(id string, event func(e *editor.Editor) bool) (*entity.MoveResponse, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := &entity.MoveResponse{}
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		resp.Moved = event(e)
		if layer, ok := e.Layer(); ok {
			resp.Layer = &layer
		}
		return nil
	})
	return resp, nil
}

func (s *editorService) snapshot(id string) (entity.State, error) {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return entity.State{}, err
	}

	var state entity.State
	_ = session.Do(s.now(), func(e *editor.Editor) error {
		state = e.Snapshot()
		return nil
	})
	if state.Background == nil {
		return entity.State{}, entity.ErrNoBackground
	}
	return state, nil
}

// Frame renders the editing view with guide lines, scaled to displayWidth when given.
func (s *editorService) Frame(ctx context.Context, id string, displayWidth int) ([]byte, error) {
	state, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}

	key := cache.Key(state, true, displayWidth)
	if data, ok := s.cached(ctx, key); ok {
		return data, nil
	}

	frame, err := s.compositor.Render(state, true)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.processor.EncodePNG(&buf, s.processor.Preview(frame, displayWidth)); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	s.store(ctx, key, buf.Bytes())
	return buf.Bytes(), nil
}

// Export renders the output image without guide lines. The editing view is not touched,
// so editing continues with guides on the next frame.
func (s *editorService) Export(ctx context.Context, id string) ([]byte, string, error) {
	state, err := s.snapshot(id)
	if err != nil {
		return nil, "", err
	}

	key := cache.Key(state, false, 0)
	data, ok := s.cached(ctx, key)
	if !ok {
		data, err = s.compositor.Export(state)
		if err != nil {
			return nil, "", err
		}
		s.store(ctx, key, data)
	}

	return data, s.recordExport(ctx, id, state, data), nil
}

func (s *editorService) ExportFilename() string {
	return ExportFilename
}

// recordExport publishes the export event and archives the image, returning the archive
// id. Failures are logged and never fail the download.
func (s *editorService) recordExport(ctx context.Context, id string, state entity.State, data []byte) string {
	bounds := state.Background.Bounds()
	event := entity.ExportEvent{
		SessionID:  id,
		Filename:   ExportFilename,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Bytes:      len(data),
		HasText:    state.Layer != nil,
		ExportedAt: s.now().UTC(),
	}
	if state.Layer != nil {
		event.Font = compositor.FontSpec(*state.Layer)
	}

	entry := logrus.WithFields(logrus.Fields{
		"session_id": id,
		"width":      event.Width,
		"height":     event.Height,
		"bytes":      event.Bytes,
	})

	if err := s.producer.SendMessage(ctx, id, event); err != nil {
		entry.Errorf("Failed to publish export event: %v", err)
	}

	var exportID string
	if s.exports != nil {
		record := &entity.ExportRecord{
			ID:        uuid.NewString(),
			SessionID: id,
			Width:     event.Width,
			Height:    event.Height,
			Layer:     state.Layer,
			CreatedAt: event.ExportedAt,
		}
		if err := s.exports.Save(record, data); err != nil {
			entry.Errorf("Failed to archive export: %v", err)
		} else {
			exportID = record.ID
			entry = entry.WithField("export_id", exportID)
		}
	}

	entry.Info("Image exported")
	return exportID
}

func (s *editorService) GetExport(exportID string) (*entity.ExportRecord, error) {
	if err := s.checkExportID(exportID); err != nil {
		return nil, err
	}
	return s.exports.FindByID(exportID)
}

func (s *editorService) GetExportImage(exportID string) ([]byte, error) {
	if err := s.checkExportID(exportID); err != nil {
		return nil, err
	}
	return s.exports.FindImage(exportID)
}

func (s *editorService) DeleteExport(exportID string) error {
	if err := s.checkExportID(exportID); err != nil {
		return err
	}
	if err := s.exports.Delete(exportID); err != nil {
		return err
	}
	logrus.WithField("export_id", exportID).Info("Archived export deleted")
	return nil
}

// checkExportID rejects lookups when the archive is off and ids that were never issued.
func (s *editorService) checkExportID(exportID string) error {
	if s.exports == nil {
		return entity.ErrExportNotFound
	}
	if _, err := uuid.Parse(exportID); err != nil {
		return fmt.Errorf("%w: %q", entity.ErrExportNotFound, exportID)
	}
	return nil
}

func (s *editorService) cached(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logrus.Warnf("Frame cache read failed: %v", err)
		}
		return nil, false
	}
	return data, ok
}

func (s *editorService) store(ctx context.Context, key string, data []byte) {
	if err := s.cache.Set(ctx, key, data); err != nil {
		logrus.Warnf("Frame cache write failed: %v", err)
	}
}
