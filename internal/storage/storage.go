// Package storage сохраняет полное состояние реестра.
//
// Каждое хранилище пишет состояние целиком, без частичной записи.
package storage

import (
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/config"
	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
)

// ErrCorrupt - сохранённое состояние есть, но не читается.
var ErrCorrupt = errors.New("stored state is corrupt")

// Storage - хранилище реестра ссылок.
type Storage interface {
	// Load возвращает сохранённое состояние или пустое, если ничего не сохранено.
	Load() (*models.State, error)
	// Save заменяет сохранённое состояние на state.
	Save(state *models.State) error
	Close() error
}

// New выбирает хранилище по конфигурации: postgres, если задан DSN,
// иначе JSON файл.
func New(cfg *config.Config) (Storage, error) {
	if cfg.DatabaseDSN != "" {
		logger.Log.Info("Create storage DB")
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			logger.Log.Error("Error create storage DB", zap.Error(err))
			return nil, err
		}
		store, err := NewDBStorage(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil
	}

	logger.Log.Info("Create storage file", zap.String("file", cfg.MemoryFile))
	return NewFileStorage(cfg.MemoryFile), nil
}
