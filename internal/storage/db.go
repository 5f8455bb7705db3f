package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
)

const dbTimeout = 5 * time.Second

const (
	createLinksQuery = `
	CREATE TABLE IF NOT EXISTS links (
		id BIGINT PRIMARY KEY,
		code VARCHAR(8) NOT NULL,
		url TEXT NOT NULL,
		clicks BIGINT NOT NULL DEFAULT 0,
		last_clicked TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		deleted BOOL NOT NULL DEFAULT false);`
	createActiveCodeIndexQuery = `
	CREATE UNIQUE INDEX IF NOT EXISTS links_active_code ON links (code) WHERE NOT deleted;`
	createMetaQuery = `
	CREATE TABLE IF NOT EXISTS registry_meta (
		id INT PRIMARY KEY,
		last_id BIGINT NOT NULL);`

	selectLastIDQuery = "SELECT last_id FROM registry_meta WHERE id = 1"
	selectLinksQuery  = "SELECT id, code, url, clicks, last_clicked, created_at, deleted FROM links ORDER BY id"
	upsertLinkQuery   = `
	INSERT INTO links (id, code, url, clicks, last_clicked, created_at, deleted)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		code = EXCLUDED.code,
		url = EXCLUDED.url,
		clicks = EXCLUDED.clicks,
		last_clicked = EXCLUDED.last_clicked,
		created_at = EXCLUDED.created_at,
		deleted = EXCLUDED.deleted;`
	deleteMissingQuery = "DELETE FROM links WHERE id <> ALL($1)"
	upsertLastIDQuery  = `
	INSERT INTO registry_meta (id, last_id) VALUES (1, $1)
	ON CONFLICT (id) DO UPDATE SET last_id = EXCLUDED.last_id;`
)

// DBStorage - хранит состояние в postgres, одна строка на ссылку.
type DBStorage struct {
	DB *sql.DB
}

// NewDBStorage - хранилище в postgres, недостающие таблицы создаются.
func NewDBStorage(db *sql.DB) (*DBStorage, error) {
	d := &DBStorage{DB: db}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if err := d.CreateTables(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateTables - создаёт таблицы links и registry_meta, если их нет.
func (d *DBStorage) CreateTables(ctx context.Context) error {
	logger.Log.Info("Create tables")
	for _, query := range []string{createLinksQuery, createActiveCodeIndexQuery, createMetaQuery} {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			logger.Log.Error("Error created table", zap.Error(err))
			return err
		}
	}
	return nil
}

// Load читает все ссылки, включая удалённые, в порядке id.
func (d *DBStorage) Load() (*models.State, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	state := models.NewState()
	err := d.DB.QueryRowContext(ctx, selectLastIDQuery).Scan(&state.LastID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		if isUndefinedTable(err) {
			logger.Log.Warn("registry tables are missing, starting empty")
			return models.NewState(), nil
		}
		logger.Log.Error("Load last id error", zap.Error(err))
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, selectLinksQuery)
	if err != nil {
		if isUndefinedTable(err) {
			return models.NewState(), nil
		}
		logger.Log.Error("Load links query error", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			l           models.Link
			lastClicked sql.NullTime
			deleted     bool
		)
		if err := rows.Scan(&l.ID, &l.Code, &l.URL, &l.Clicks, &lastClicked, &l.CreatedAt, &deleted); err != nil {
			logger.Log.Error("Load links scan error", zap.Error(err))
			return nil, err
		}
		if lastClicked.Valid {
			t := lastClicked.Time.UTC()
			l.LastClicked = &t
		}
		l.CreatedAt = l.CreatedAt.UTC()
		l.Deleted = models.DeletedFlag(deleted)
		state.Links = append(state.Links, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	state.Normalize()
	return state, nil
}

// Save приводит таблицы к state в одной транзакции.
func (d *DBStorage) Save(state *models.State) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertLinkQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(state.Links))
	for _, l := range state.Links {
		_, err := stmt.ExecContext(ctx, l.ID, l.Code, l.URL, l.Clicks, l.LastClicked, l.CreatedAt, bool(l.Deleted))
		if err != nil {
			logger.Log.Error("Save link error", zap.Int64("id", l.ID), zap.Error(err))
			return fmt.Errorf("save link %d: %w", l.ID, err)
		}
		ids = append(ids, l.ID)
	}

	if _, err := tx.ExecContext(ctx, deleteMissingQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("prune links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsertLastIDQuery, state.LastID); err != nil {
		return fmt.Errorf("save last id: %w", err)
	}

	return tx.Commit()
}

// Ping проверяет соединение.
func (d *DBStorage) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (d *DBStorage) Close() error {
	return d.DB.Close()
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}
