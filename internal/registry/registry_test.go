package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubDisplay struct {
	opts Options
}

func (d *stubDisplay) Size() (int, int)                { return d.opts.Width, d.opts.Height }
func (d *stubDisplay) Present(*core.PixelBuffer) error { return nil }
func (d *stubDisplay) ReportRates(int, int)            {}
func (d *stubDisplay) ReportError(string) error        { return nil }
func (d *stubDisplay) Run(ctx context.Context) error   { <-ctx.Done(); return nil }

func TestRegisterCreate(t *testing.T) {
	Register("test-stub", "stub display", func(opts Options) (Display, error) {
		return &stubDisplay{opts: opts}, nil
	})

	if !Exists("test-stub") {
		t.Fatal("Exists() = false after Register")
	}

	d, err := Create("test-stub", Options{Width: 40, Height: 30})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if w, h := d.Size(); w != 40 || h != 30 {
		t.Errorf("Size() = %dx%d, expected 40x30", w, h)
	}
	if d.(*stubDisplay).opts.Input == nil {
		t.Error("Create should supply an InputState when none is given")
	}

	found := false
	for _, info := range List() {
		if info.Name == "test-stub" {
			found = info.Description == "stub display"
		}
	}
	if !found {
		t.Errorf("List() = %v, expected test-stub with its description", List())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-display", Options{}); err == nil {
		t.Error("expected error for unknown display")
	}

	boom := errors.New("no tty")
	Register("test-failing", "always fails", func(Options) (Display, error) {
		return nil, boom
	})
	if _, err := Create("test-failing", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Display, error) { return &stubDisplay{}, nil }
	Register("test-dup", "", f)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", "", f)
}

func TestListSorted(t *testing.T) {
	f := func(Options) (Display, error) { return &stubDisplay{}, nil }
	Register("test-zz", "", f)
	Register("test-aa", "", f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
