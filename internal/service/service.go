package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/database"
	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/cache"
	"github.com/ds124wfegd/catchcraft/internal/pkg/compositor"
	"github.com/ds124wfegd/catchcraft/internal/pkg/kafka"
	"github.com/ds124wfegd/catchcraft/internal/pkg/processor"
)

type EditorService interface {
	CreateSession() string
	GetSession(id string) (*entity.SessionResponse, error)
	DeleteSession(id string) error
	SweepIdle(now time.Time) int
	SessionCount() int

	UploadBackground(id string, data []byte) (*entity.UploadResponse, error)
	AddText(id string) (layer entity.TextLayer, created bool, err error)
	EditText(id string, edit entity.TextEdit) (entity.TextLayer, error)
	ToggleMoveMode(id string) (entity.Mode, error)

	KeyDown(id string, key string) (*entity.MoveResponse, error)
	PointerDown(id string, req entity.PointerDownRequest) (*entity.MoveResponse, error)
	PointerMove(id string, req entity.PointerMoveRequest) (*entity.MoveResponse, error)
	PointerUp(id string) (*entity.MoveResponse, error)

	Frame(ctx context.Context, id string, displayWidth int) ([]byte, error)
	// Export returns the PNG and the archive id, empty when the archive is off.
	Export(ctx context.Context, id string) ([]byte, string, error)
	ExportFilename() string

	GetExport(exportID string) (*entity.ExportRecord, error)
	GetExportImage(exportID string) ([]byte, error)
	DeleteExport(exportID string) error
}

// ExportFilename is the name every exported image is downloaded as.
const ExportFilename = "catchcraft-image.png"

type Settings struct {
	Editor     editor.Settings
	SessionTTL time.Duration
}

type editorService struct {
	sessions   database.SessionRepository
	exports    database.ExportRepository
	compositor compositor.Compositor
	processor  processor.ImageProcessor
	cache      cache.FrameCache
	producer   kafka.Producer
	settings   Settings
	now        func() time.Time
}

// NewEditorService wires the editor service. exports may be nil to disable the archive.
func NewEditorService(
	sessions database.SessionRepository,
	exports database.ExportRepository,
	compositor compositor.Compositor,
	processor processor.ImageProcessor,
	cache cache.FrameCache,
	producer kafka.Producer,
	settings Settings,
) EditorService {
	return &editorService{
		sessions:   sessions,
		exports:    exports,
		compositor: compositor,
		processor:  processor,
		cache:      cache,
		producer:   producer,
		settings:   settings,
		now:        time.Now,
	}
}
