package middlewares

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// MaxRequestBodySize предел тела запроса после распаковки.
const MaxRequestBodySize = 1 << 20

var gzipWriterPool = sync.Pool{
	New: func() any {
		gz, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
		return gz
	},
}

// gzipWriter обертка над gin.ResponseWriter, сжимающая тело ответа.
// Заголовок Content-Encoding выставляется при первой записи тела, поэтому ответы
// без тела (204, 307) уходят как есть.
type gzipWriter struct {
	gin.ResponseWriter
	writer  *gzip.Writer
	started bool
}

func (g *gzipWriter) start() {
	if g.started {
		return
	}
	g.started = true
	h := g.ResponseWriter.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	g.start()
	return g.writer.Write(data) //nolint:wrapcheck
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	g.start()
	return g.writer.Write([]byte(s)) //nolint:wrapcheck
}

// GzipMiddleware создает middleware для сжатия ответов и распаковки запросов в формате gzip.
//
// Для ответов:
//   - Проверяет поддержку gzip в заголовке Accept-Encoding
//   - Сжимает тело, если оно есть, и выставляет Content-Encoding: gzip
//
// Для запросов:
//   - Обрабатывает только POST, PUT, PATCH запросы с заголовком Content-Encoding: gzip
//   - Подменяет тело запроса распакованным, не больше MaxRequestBodySize (иначе 413)
func GzipMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !readGzip(ctx) {
			return
		}
		writeGzip(ctx)
	}
}

func writeGzip(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodHead ||
		!strings.Contains(ctx.Request.Header.Get("Accept-Encoding"), "gzip") {
		ctx.Next()
		return
	}

	gzw := gzipWriterPool.Get().(*gzip.Writer) //nolint:errcheck,forcetypeassert
	gzw.Reset(ctx.Writer)

	gzWriter := &gzipWriter{
		ResponseWriter: ctx.Writer,
		writer:         gzw,
	}
	ctx.Writer = gzWriter

	defer func() {
		if !gzWriter.started {
			gzw.Reset(io.Discard)
		}
		if closeErr := gzw.Close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip writer: %w", closeErr))
		}
		gzipWriterPool.Put(gzw)
		ctx.Writer = gzWriter.ResponseWriter
	}()

	ctx.Next()
}

// readGzip распаковывает тело сжатого запроса. Возвращает false, если запрос прерван.
func readGzip(ctx *gin.Context) bool {
	if !slices.Contains([]string{http.MethodPost, http.MethodPut, http.MethodPatch}, ctx.Request.Method) {
		return true
	}
	if !strings.Contains(ctx.Request.Header.Get("Content-Encoding"), "gzip") {
		return true
	}

	gzReader, gzErr := gzip.NewReader(ctx.Request.Body)
	if gzErr != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", gzErr))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return false
	}
	defer func() {
		if closeErr := gzReader.Close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip reader: %w", closeErr))
		}
	}()
	bodyBytes, err := io.ReadAll(io.LimitReader(gzReader, MaxRequestBodySize+1))
	if err != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return false
	}
	if len(bodyBytes) > MaxRequestBodySize {
		_ = ctx.Error(fmt.Errorf("gzip body exceeds %d bytes", MaxRequestBodySize))
		ctx.AbortWithStatus(http.StatusRequestEntityTooLarge)
		return false
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	ctx.Request.Header.Del("Content-Encoding")
	ctx.Request.ContentLength = int64(len(bodyBytes))
	return true
}
