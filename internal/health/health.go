// Package health отдаёт JSON-сводку по состоянию зависимостей сервиса и probe-эндпоинты.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// checkTimeout ограничивает один прогон всех проверок.
const checkTimeout = 2 * time.Second

// ErrDegraded помечает некритичный отказ: компонент работает с ограничениями,
// сервис остаётся готовым. Проверка сообщает о нём через fmt.Errorf("...: %w", ErrDegraded).
var ErrDegraded = errors.New("degraded")

// Checker проверяет один компонент. nil означает, что компонент здоров.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc позволяет использовать функцию как Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// Pinger - всё, что умеет проверить соединение (например, postgres.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPingChecker проверяет доступность внешнего хранилища.
func NewPingChecker(p Pinger) Checker { return CheckerFunc(p.Ping) }

// Result - итог одной проверки.
type Result struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Summary - тело ответа /healthz. Проверки отсортированы по имени.
type Summary struct {
	Status        Status    `json:"status"`
	Version       string    `json:"version,omitempty"`
	CheckedAt     time.Time `json:"checked_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Checks        []Result  `json:"checks,omitempty"`
}

// Handler хранит именованные проверки и отвечает на probe-запросы.
type Handler struct {
	version string
	started time.Time

	mu       sync.RWMutex
	checkers map[string]Checker
}

func NewHandler(version string) *Handler {
	return &Handler{version: version, started: time.Now(), checkers: map[string]Checker{}}
}

// RegisterChecker добавляет или заменяет проверку с именем name.
func (h *Handler) RegisterChecker(name string, c Checker) {
	h.mu.Lock()
	h.checkers[name] = c
	h.mu.Unlock()
}

// Names возвращает имена зарегистрированных проверок по алфавиту.
func (h *Handler) Names() []string {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Evaluate запускает все проверки параллельно и сводит их в Summary.
func (h *Handler) Evaluate(ctx context.Context) Summary {
	names := h.Names()
	h.mu.RLock()
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = h.checkers[name]
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	results := make([]Result, len(names))
	var wg sync.WaitGroup
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = run(ctx, names[i], checkers[i])
		}(i)
	}
	wg.Wait()

	summary := Summary{
		Status:        StatusHealthy,
		Version:       h.version,
		CheckedAt:     time.Now().UTC(),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Checks:        results,
	}
	for _, r := range results {
		switch {
		case r.Status == StatusUnhealthy:
			summary.Status = StatusUnhealthy
		case r.Status == StatusDegraded && summary.Status == StatusHealthy:
			summary.Status = StatusDegraded
		}
	}
	return summary
}

func run(ctx context.Context, name string, c Checker) Result {
	start := time.Now()
	err := c.Check(ctx)
	r := Result{Name: name, Status: StatusHealthy, DurationMs: time.Since(start).Milliseconds()}
	switch {
	case err == nil:
	case errors.Is(err, ErrDegraded):
		r.Status, r.Message = StatusDegraded, err.Error()
	default:
		r.Status, r.Message = StatusUnhealthy, err.Error()
	}
	return r
}

// ServeHTTP отдаёт Summary; 503, если хотя бы одна проверка unhealthy.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary := h.Evaluate(r.Context())

	code := http.StatusOK
	if summary.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(summary)
}

// ReadinessHandler отвечает 503, пока какая-либо проверка unhealthy.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if h.Evaluate(r.Context()).Status == StatusUnhealthy {
		writeText(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LivenessHandler отвечает 200, пока процесс жив.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
