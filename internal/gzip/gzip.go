package gzip

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// CompressWriter - http.ResponseWriter, сжимающий JSON и HTML ответы.
// Решение принимается при записи статуса по Content-Type ответа.
type CompressWriter struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

// NewCompressWriter оборачивает w.
func NewCompressWriter(w http.ResponseWriter) *CompressWriter {
	return &CompressWriter{w: w}
}

// Header возвращает заголовки ответа.
func (c *CompressWriter) Header() http.Header {
	return c.w.Header()
}

// Write пишет p, сжимая, если ответ подлежит сжатию.
func (c *CompressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw != nil {
		return c.zw.Write(p)
	}
	return c.w.Write(p)
}

// WriteHeader ставит Content-Encoding для сжимаемых ответов и пишет статус.
func (c *CompressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	if bodyAllowed(statusCode) && compressible(c.w.Header()) {
		c.w.Header().Del("Content-Length")
		c.w.Header().Set("Content-Encoding", "gzip")
		c.zw = gzip.NewWriter(c.w)
	}
	c.w.WriteHeader(statusCode)
}

// Close дописывает gzip-поток, если он был начат.
func (c *CompressWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	return c.zw.Close()
}

// CompressReader - io.ReadCloser, распаковывающий сжатое тело запроса.
type CompressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

// NewCompressReader оборачивает r. Ошибка, если r не начинается с заголовка gzip.
func NewCompressReader(r io.ReadCloser) (*CompressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &CompressReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read читает распакованные данные.
func (c CompressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

// Close закрывает исходное тело и gzip reader.
func (c *CompressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// GzipMiddleware - распаковывает сжатые запросы и сжимает JSON/HTML ответы
// для клиентов, которые это принимают.
func GzipMiddleware(h http.Handler) http.Handler {
	gzipFn := func(w http.ResponseWriter, r *http.Request) {
		ow := w
		if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			w.Header().Add("Vary", "Accept-Encoding")
			cw := NewCompressWriter(w)
			ow = cw
			defer cw.Close()
		}

		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			cr, err := NewCompressReader(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer cr.Close()
		}

		h.ServeHTTP(ow, r)
	}
	return http.HandlerFunc(gzipFn)
}

// compressible - можно ли сжать ответ с заголовками h.
// Диапазоны байтов и уже закодированные ответы отдаются как есть.
func compressible(h http.Header) bool {
	if h.Get("Content-Range") != "" || h.Get("Content-Encoding") != "" {
		return false
	}
	contentType := h.Get("Content-Type")
	return strings.Contains(contentType, "application/json") || strings.Contains(contentType, "text/html")
}

func bodyAllowed(status int) bool {
	return status >= http.StatusOK &&
		status != http.StatusNoContent &&
		status != http.StatusPartialContent &&
		status != http.StatusNotModified
}
