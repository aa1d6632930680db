package assets

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

func quietLoader(overrides ...fs.FS) *Loader {
	return NewLoader(log.New(io.Discard), overrides...)
}

func waitReady(t *testing.T, task core.ImageTask) (*core.Sprite, core.LoadStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sprite, status := task.Poll()
		if status != core.LoadPending {
			return sprite, status
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("task still pending")
	return nil, core.LoadPending
}

func TestLoaderBuiltinSprites(t *testing.T) {
	l := quietLoader()

	for _, src := range []string{"bird.txt", "bird_flap.txt"} {
		sprite, status := waitReady(t, l.LoadImage(src, src))
		if status != core.LoadReady {
			t.Fatalf("%s: status = %v, want ready", src, status)
		}
		if sprite.Height() == 0 || sprite.Width() == 0 {
			t.Errorf("%s: empty sprite %+v", src, sprite)
		}
	}
}

func TestLoaderOverride(t *testing.T) {
	override := fstest.MapFS{
		"bird.txt": {Data: []byte("<o)\n")},
	}
	l := quietLoader(override)

	sprite, status := waitReady(t, l.LoadImage("idle", "bird.txt"))
	if status != core.LoadReady {
		t.Fatalf("status = %v, want ready", status)
	}
	if len(sprite.Rows) != 1 || sprite.Rows[0] != "<o)" {
		t.Errorf("Rows = %q, want the override", sprite.Rows)
	}
}

func TestLoaderMissingFails(t *testing.T) {
	l := quietLoader()

	sprite, status := waitReady(t, l.LoadImage("ghost", "ghost.txt"))
	if status != core.LoadFailed {
		t.Errorf("status = %v, want failed", status)
	}
	if sprite != nil {
		t.Errorf("sprite = %+v, want nil", sprite)
	}
}

func TestLoaderCachesByID(t *testing.T) {
	l := quietLoader()

	a := l.LoadImage("idle", "bird.txt")
	b := l.LoadImage("idle", "bird_flap.txt")
	if a != b {
		t.Error("same id returned different tasks")
	}
}

func TestLoadImages(t *testing.T) {
	l := quietLoader()
	ctx := context.Background()

	err := l.LoadImages(ctx, map[string]string{
		"idle": "bird.txt",
		"flap": "bird_flap.txt",
	})
	if err != nil {
		t.Fatalf("LoadImages() = %v", err)
	}

	err = l.LoadImages(ctx, map[string]string{
		"idle":  "bird.txt",
		"ghost": "ghost.txt",
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadImages() = %v, want not-exist error", err)
	}
}

func TestTaskWaitCancelled(t *testing.T) {
	task := &Task{done: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := task.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
	if _, status := task.Poll(); status != core.LoadPending {
		t.Errorf("status = %v, want pending", status)
	}
}

func TestParseSprite(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"rows", " (o>\n_/)\n", []string{" (o>", "_/)"}, nil},
		{"crlf and trailing blanks", "ab  \r\ncd\r\n\r\n\n", []string{"ab", "cd"}, nil},
		{"empty", "\n\n", nil, ErrEmptySprite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSprite([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSprite() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got.Rows) != len(tt.want) {
				t.Fatalf("Rows = %q, want %q", got.Rows, tt.want)
			}
			for i := range tt.want {
				if got.Rows[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got.Rows[i], tt.want[i])
				}
			}
		})
	}
}
