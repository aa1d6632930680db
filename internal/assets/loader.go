// Package assets loads character-art sprites in the background.
// Sprites are plain text files; every line is one row and spaces are
// transparent. The built-in set is embedded, and a user directory can
// override individual files.
package assets

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

//go:embed sprites/*.txt
var builtin embed.FS

// ErrEmptySprite is reported for sprite files without any visible cell.
var ErrEmptySprite = errors.New("assets: empty sprite")

// Loader starts sprite loads and caches the tasks by id.
// It is safe for concurrent use.
type Loader struct {
	sources []fs.FS
	log     *log.Logger

	mu    sync.Mutex
	tasks map[string]*Task
}

// NewLoader creates a loader that searches the given file systems in
// order and then the built-in sprites.
func NewLoader(logger *log.Logger, overrides ...fs.FS) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	sprites, _ := fs.Sub(builtin, "sprites")
	return &Loader{
		sources: append(overrides, sprites),
		log:     logger,
		tasks:   make(map[string]*Task),
	}
}

// LoadImage starts loading src and returns its task immediately.
// Repeated calls with the same id return the first task.
func (l *Loader) LoadImage(id, src string) core.ImageTask {
	return l.load(id, src)
}

func (l *Loader) load(id, src string) *Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.tasks[id]; ok {
		return t
	}
	t := &Task{done: make(chan struct{})}
	l.tasks[id] = t

	go func() {
		sprite, err := l.read(src)
		if err != nil {
			l.log.Warn("sprite load failed, using primitives", "id", id, "src", src, "error", err)
		}
		t.finish(sprite, err)
	}()
	return t
}

// LoadImages loads a manifest of id to source and waits for all of them.
// It returns the first failure; the other loads still complete.
func (l *Loader) LoadImages(ctx context.Context, manifest map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	for id, src := range manifest {
		t := l.load(id, src)
		g.Go(func() error {
			if err := t.Wait(ctx); err != nil {
				return fmt.Errorf("assets: %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// read finds src in the first source that has it and parses it.
func (l *Loader) read(src string) (*core.Sprite, error) {
	var lastErr error
	for _, fsys := range l.sources {
		data, err := fs.ReadFile(fsys, src)
		if err != nil {
			lastErr = err
			continue
		}
		return ParseSprite(data)
	}
	if lastErr == nil {
		lastErr = fs.ErrNotExist
	}
	return nil, fmt.Errorf("assets: cannot read %s: %w", src, lastErr)
}

// ParseSprite turns text into a sprite. Trailing whitespace on each row
// and trailing blank rows are dropped.
func ParseSprite(data []byte) (*core.Sprite, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptySprite
	}
	return &core.Sprite{Rows: rows}, nil
}

// Task is a sprite load in flight.
type Task struct {
	done chan struct{}

	mu     sync.Mutex
	sprite *core.Sprite
	err    error
	status core.LoadStatus
}

func (t *Task) finish(sprite *core.Sprite, err error) {
	t.mu.Lock()
	t.sprite, t.err = sprite, err
	if err != nil {
		t.status = core.LoadFailed
	} else {
		t.status = core.LoadReady
	}
	t.mu.Unlock()
	close(t.done)
}

// Poll returns the sprite once it has loaded. It never blocks.
func (t *Task) Poll() (*core.Sprite, core.LoadStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sprite, t.status
}

// Wait blocks until the load finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ core.AssetProvider = (*Loader)(nil)
