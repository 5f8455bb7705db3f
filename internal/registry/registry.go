// Package registry владеет набором коротких ссылок: проверяет и генерирует
// коды, следит за уникальностью кодов среди активных ссылок, мягко удаляет
// ссылки и считает переходы. Каждое изменение целиком перезаписывает состояние
// в хранилище до того, как считается выполненным.
package registry

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
	"github.com/darkseear/tinylink/internal/storage"
)

const (
	// MinCodeLength и MaxCodeLength ограничивают длину любого кода.
	MinCodeLength = 6
	MaxCodeLength = 8

	// DefaultCodeLength - длина генерируемых кодов.
	DefaultCodeLength = 7
	// DefaultMaxAttempts - число попыток найти свободный код.
	DefaultMaxAttempts = 20
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// ValidCode - похож ли code на короткий код.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Options - настройки генерации кодов. Нулевые поля берут значения по умолчанию.
type Options struct {
	CodeLength  int
	MaxAttempts int
	Alphabet    string
	Generator   Generator
	Clock       Clock
}

func (o *Options) withDefaults() (Options, error) {
	opts := *o
	if opts.CodeLength == 0 {
		opts.CodeLength = DefaultCodeLength
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Alphabet == "" {
		opts.Alphabet = DefaultAlphabet
	}
	if opts.CodeLength < MinCodeLength || opts.CodeLength > MaxCodeLength {
		return opts, fmt.Errorf("code length %d outside %d..%d", opts.CodeLength, MinCodeLength, MaxCodeLength)
	}
	if opts.MaxAttempts < 1 {
		return opts, fmt.Errorf("max attempts %d must be positive", opts.MaxAttempts)
	}
	for i := 0; i < len(opts.Alphabet); i++ {
		c := opts.Alphabet[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return opts, fmt.Errorf("alphabet contains %q, only letters and digits are allowed", c)
		}
	}
	if opts.Generator == nil {
		opts.Generator = NewRandomGenerator(opts.Alphabet, opts.CodeLength)
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return opts, nil
}

// Registry - состояние ссылок в памяти, сквозная запись в хранилище.
// Методы безопасны для конкурентного вызова и выполняются по одному.
type Registry struct {
	mu    sync.Mutex
	store storage.Storage
	state *models.State
	opts  Options
}

// New загружает состояние из store. Испорченное состояние заменяется пустым,
// остальные ошибки загрузки возвращаются.
func New(store storage.Storage, opts Options) (*Registry, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	state, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, fmt.Errorf("load links: %w", err)
		}
		logger.Log.Warn("stored links are unreadable, starting empty", zap.Error(err))
		state = models.NewState()
	}
	state.Normalize()

	logger.Log.Info("registry loaded", zap.Int64("lastId", state.LastID), zap.Int("links", len(state.Links)))
	return &Registry{store: store, state: state, opts: o}, nil
}

// Create регистрирует url под кодом code или под сгенерированным, если code пуст.
func (r *Registry) Create(rawURL, code string) (models.LinkView, error) {
	if !validURL(rawURL) {
		return models.LinkView{}, ErrInvalidURL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if code != "" {
		if !ValidCode(code) {
			return models.LinkView{}, ErrInvalidCodeFormat
		}
		if r.find(code) != nil {
			return models.LinkView{}, ErrCodeExists
		}
	} else {
		generated, err := r.generate()
		if err != nil {
			return models.LinkView{}, err
		}
		code = generated
	}

	prevLastID := r.state.LastID
	r.state.LastID++
	link := &models.Link{
		ID:        r.state.LastID,
		Code:      code,
		URL:       rawURL,
		CreatedAt: r.now(),
	}
	r.state.Links = append(r.state.Links, link)

	if err := r.save(); err != nil {
		r.state.Links = r.state.Links[:len(r.state.Links)-1]
		r.state.LastID = prevLastID
		return models.LinkView{}, err
	}

	logger.Log.Info("link created", zap.String("code", code), zap.String("url", rawURL), zap.Int64("id", link.ID))
	return link.View(), nil
}

// List возвращает активные ссылки, сначала самые новые.
func (r *Registry) List() []models.LinkView {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := make([]models.LinkView, 0, len(r.state.Links))
	for i := len(r.state.Links) - 1; i >= 0; i-- {
		if l := r.state.Links[i]; !l.Deleted {
			views = append(views, l.View())
		}
	}
	// при равном времени первым идёт больший id
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// Get возвращает активную ссылку с кодом code. Некорректный код не найдётся.
func (r *Registry) Get(code string) (models.LinkView, bool) {
	if !ValidCode(code) {
		return models.LinkView{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	l := r.find(code)
	if l == nil {
		return models.LinkView{}, false
	}
	return l.View(), true
}

// Delete мягко удаляет активную ссылку с кодом code. false, если такой ссылки
// нет; код сравнивается как есть, без проверки формата.
func (r *Registry) Delete(code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := r.find(code)
	if l == nil {
		return false, nil
	}

	l.Deleted = true
	if err := r.save(); err != nil {
		l.Deleted = false
		return false, err
	}

	logger.Log.Info("link deleted", zap.String("code", code), zap.Int64("id", l.ID))
	return true, nil
}

// IncrementClick засчитывает переход по code. Неизвестные коды пропускаются,
// ошибка сохранения только логируется: учёт переходов не ломает редирект.
func (r *Registry) IncrementClick(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := r.find(code)
	if l == nil {
		return
	}

	prevClicks, prevLastClicked := l.Clicks, l.LastClicked
	now := r.now()
	if now.Before(l.CreatedAt) {
		now = l.CreatedAt
	}
	l.Clicks++
	l.LastClicked = &now

	if err := r.save(); err != nil {
		l.Clicks, l.LastClicked = prevClicks, prevLastClicked
		logger.Log.Error("click not recorded", zap.String("code", code), zap.Error(err))
		return
	}
	logger.Log.Debug("click recorded", zap.String("code", code), zap.Int64("clicks", l.Clicks))
}

// Snapshot возвращает копию всего состояния, включая удалённые ссылки.
func (r *Registry) Snapshot() *models.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

func (r *Registry) find(code string) *models.Link {
	for _, l := range r.state.Links {
		if l.Code == code && !l.Deleted {
			return l
		}
	}
	return nil
}

func (r *Registry) generate() (string, error) {
	for attempt := 0; attempt < r.opts.MaxAttempts; attempt++ {
		code := r.opts.Generator.Generate()
		if r.find(code) == nil {
			return code, nil
		}
		logger.Log.Debug("generated code collides", zap.String("code", code), zap.Int("attempt", attempt+1))
	}
	logger.Log.Warn("code generation exhausted", zap.Int("attempts", r.opts.MaxAttempts))
	return "", ErrGenerationExhausted
}

func (r *Registry) save() error {
	if err := r.store.Save(r.state); err != nil {
		logger.Log.Error("save links error", zap.Error(err))
		return fmt.Errorf("save links: %w", err)
	}
	return nil
}

func (r *Registry) now() time.Time {
	return r.opts.Clock.Now().UTC().Round(0)
}

// validURL принимает абсолютные http(s) URL с хостом. Форма
// "http:example.com" без хоста отклоняется.
func validURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return false
	}
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return false
		}
	}
	return true
}
