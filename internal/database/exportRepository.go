package database

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/storage"
)

type fileExportRepository struct {
	storage storage.FileStorage
}

// NewExportRepository archives exported images and their metadata in file storage.
func NewExportRepository(storage storage.FileStorage) ExportRepository {
	return &fileExportRepository{storage: storage}
}

func (r *fileExportRepository) Save(record *entity.ExportRecord, png []byte) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.storage.Save(imagePath(record.ID), bytes.NewReader(png)); err != nil {
		return err
	}
	return r.storage.Save(metadataPath(record.ID), bytes.NewReader(data))
}

func (r *fileExportRepository) FindByID(id string) (*entity.ExportRecord, error) {
	reader, err := r.storage.Get(metadataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, entity.ErrExportNotFound
		}
		return nil, err
	}
	defer reader.Close()

	var record entity.ExportRecord
	if err := json.NewDecoder(reader).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *fileExportRepository) FindImage(id string) ([]byte, error) {
	reader, err := r.storage.Get(imagePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, entity.ErrExportNotFound
		}
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func (r *fileExportRepository) Delete(id string) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}

	if err := r.storage.Delete(metadataPath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := r.storage.Delete(imagePath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func metadataPath(id string) string {
	return path.Join("metadata", id+".json")
}

func imagePath(id string) string {
	return path.Join("exports", id+".png")
}
