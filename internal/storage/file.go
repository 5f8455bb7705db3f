package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
)

// Producer - пишет состояние в файл, заменяя его содержимое.
type Producer struct {
	file    *os.File
	encoder *json.Encoder
}

// Consumer - читает состояние из файла.
type Consumer struct {
	file    *os.File
	decoder *json.Decoder
}

// NewProducer - открывает filename на полную перезапись, создавая недостающие каталоги.
func NewProducer(filename string) (*Producer, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return &Producer{
		file:    file,
		encoder: encoder,
	}, nil
}

// WriteState - кодирует state одним JSON документом.
func (p *Producer) WriteState(state *models.State) error {
	return p.encoder.Encode(state)
}

// Close - закрывает файл; запись завершена, только если Close успешен.
func (p *Producer) Close() error {
	return p.file.Close()
}

// NewConsumer - открывает filename на чтение.
func NewConsumer(filename string) (*Consumer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		file:    file,
		decoder: json.NewDecoder(file),
	}, nil
}

// ReadState - декодирует состояние. Пустой файл - пустое состояние.
func (c *Consumer) ReadState() (*models.State, error) {
	state := models.NewState()
	if err := c.decoder.Decode(state); err != nil {
		if errors.Is(err, io.EOF) {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	state.Normalize()
	return state, nil
}

// Close - закрывает файл.
func (c *Consumer) Close() error {
	return c.file.Close()
}

// FileStorage - хранит состояние в одном JSON файле.
type FileStorage struct {
	File string
}

// NewFileStorage - файловое хранилище по пути file. До первого Load или Save файл не трогается.
func NewFileStorage(file string) *FileStorage {
	return &FileStorage{File: file}
}

// Load читает файл. Отсутствующий файл - пустое состояние.
func (f *FileStorage) Load() (*models.State, error) {
	c, err := NewConsumer(f.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.Info("no link file yet", zap.String("file", f.File))
			return models.NewState(), nil
		}
		return nil, err
	}
	defer c.Close()

	return c.ReadState()
}

// Save перезаписывает файл целиком.
func (f *FileStorage) Save(state *models.State) error {
	p, err := NewProducer(f.File)
	if err != nil {
		logger.Log.Error("producer error", zap.Error(err))
		return err
	}
	if err := p.WriteState(state); err != nil {
		_ = p.Close()
		return err
	}
	return p.Close()
}

// Close - файл не держится открытым между вызовами.
func (f *FileStorage) Close() error {
	return nil
}
