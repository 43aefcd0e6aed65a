package database

import (
	"time"

	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/entity"
)

type SessionRepository interface {
	Save(session *editor.Session)
	FindByID(id string) (*editor.Session, error)
	Delete(id string) error
	DeleteIdle(cutoff time.Time) []string
	Count() int
}

type ExportRepository interface {
	Save(record *entity.ExportRecord, png []byte) error
	FindByID(id string) (*entity.ExportRecord, error)
	FindImage(id string) ([]byte, error)
	Delete(id string) error
}
