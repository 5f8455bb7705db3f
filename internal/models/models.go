// Package models описывает записи реестра ссылок и структуры,
// которыми он обменивается с вызывающими.
package models

import (
	"bytes"
	"fmt"
	"time"
)

// DeletedFlag - признак мягкого удаления ссылки.
// Хранится как 0/1; при чтении принимаются и true/false.
type DeletedFlag bool

// MarshalJSON пишет признак как 0 или 1.
func (d DeletedFlag) MarshalJSON() ([]byte, error) {
	if d {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON читает 0/1, true/false или null.
func (d *DeletedFlag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "1", "true":
		*d = true
	case "0", "false", "null":
		*d = false
	default:
		return fmt.Errorf("invalid deleted flag %s", b)
	}
	return nil
}

// Link - хранимая короткая ссылка вместе со служебными полями.
type Link struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`
	URL         string      `json:"url"`
	Clicks      int64       `json:"clicks"`
	LastClicked *time.Time  `json:"last_clicked"`
	CreatedAt   time.Time   `json:"created_at"`
	Deleted     DeletedFlag `json:"deleted"`
}

// LinkView - публичное представление ссылки, без id и признака удаления.
type LinkView struct {
	Code        string     `json:"code"`
	URL         string     `json:"url"`
	Clicks      int64      `json:"clicks"`
	LastClicked *time.Time `json:"last_clicked"`
	CreatedAt   time.Time  `json:"created_at"`
}

// View возвращает публичное представление ссылки.
func (l *Link) View() LinkView {
	return LinkView{
		Code:        l.Code,
		URL:         l.URL,
		Clicks:      l.Clicks,
		LastClicked: cloneTime(l.LastClicked),
		CreatedAt:   l.CreatedAt,
	}
}

// Clone возвращает глубокую копию ссылки.
func (l *Link) Clone() *Link {
	c := *l
	c.LastClicked = cloneTime(l.LastClicked)
	return &c
}

// State - весь реестр: последний выданный id и все ссылки в порядке добавления.
type State struct {
	LastID int64   `json:"lastId"`
	Links  []*Link `json:"links"`
}

// NewState возвращает пустое состояние.
func NewState() *State {
	return &State{Links: []*Link{}}
}

// Clone возвращает глубокую копию состояния.
func (s *State) Clone() *State {
	c := &State{LastID: s.LastID, Links: make([]*Link, 0, len(s.Links))}
	for _, l := range s.Links {
		c.Links = append(c.Links, l.Clone())
	}
	return c
}

// Normalize чинит только что загруженное состояние: nil превращается в пустой
// список, LastID поднимается до наибольшего сохранённого id.
func (s *State) Normalize() {
	if s.Links == nil {
		s.Links = []*Link{}
	}
	for _, l := range s.Links {
		if l.ID > s.LastID {
			s.LastID = l.ID
		}
	}
}

// CreateRequest - тело POST /api/links.
type CreateRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

// ErrorJSON - тело ошибки HTTP API.
type ErrorJSON struct {
	Error string `json:"error"`
}

// HealthJSON - тело ответа GET /healthz.
type HealthJSON struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
