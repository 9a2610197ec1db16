package host

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/minikit/core/logger"
)

// Compile-time check that LogUI implements UI.
var _ UI = (*LogUI)(nil)

// LogUI is a headless UI that turns every primitive into a log record.
// It also remembers the last navigation target and whether the loading
// overlay is visible, which CLIs and tests can inspect.
type LogUI struct {
	logger *slog.Logger

	mu      sync.Mutex
	loading bool
	path    string
}

// NewLogUI creates a LogUI writing to l. A nil logger discards output.
func NewLogUI(l *slog.Logger) *LogUI {
	if l == nil {
		l = logger.NewNop()
	}
	return &LogUI{logger: l.With(logger.Component("ui"))}
}

func (u *LogUI) ShowLoading(title string) {
	u.mu.Lock()
	u.loading = true
	u.mu.Unlock()
	u.logger.Info("loading", slog.String("title", title))
}

func (u *LogUI) HideLoading() {
	u.mu.Lock()
	u.loading = false
	u.mu.Unlock()
	u.logger.Debug("loading hidden")
}

func (u *LogUI) ShowToast(t Toast) {
	u.logger.Info("toast",
		slog.String("title", t.Title),
		slog.String("icon", t.Icon),
		logger.Duration(t.Duration),
	)
}

func (u *LogUI) NavigateTo(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	u.mu.Lock()
	u.path = path
	u.mu.Unlock()
	u.logger.Info("navigate", slog.String("path", path))
	return nil
}

// Loading reports whether the overlay is currently shown.
func (u *LogUI) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

// Path returns the last navigation target.
func (u *LogUI) Path() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.path
}
