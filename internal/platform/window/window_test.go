package window

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func TestToRGBA(t *testing.T) {
	src := core.NewPixelBuffer(2, 1)
	src.Set(0, 0, core.RGB(0x11, 0x22, 0x33))
	src.Set(1, 0, core.ColorBackground)

	dst := make([]byte, 8)
	toRGBA(dst, src)

	want := []byte{0x11, 0x22, 0x33, 0xff, 0x6e, 0x6e, 0x00, 0xff}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = % x, expected % x", dst, want)
		}
	}
}

func TestEveryDirectionHasKeys(t *testing.T) {
	for _, dir := range core.Directions {
		if len(keyBindings[dir]) == 0 {
			t.Errorf("%v has no key binding", dir)
		}
	}
}

func TestPresentChecksSize(t *testing.T) {
	d := NewDisplay(registry.Options{Title: "Tetris", Width: 4, Height: 3})

	if err := d.Present(core.NewPixelBuffer(4, 3)); err != nil {
		t.Errorf("Present() error = %v", err)
	}
	if !d.fresh {
		t.Error("Present should mark the frame for upload")
	}
	if err := d.Present(core.NewPixelBuffer(5, 3)); err == nil {
		t.Error("expected error for a frame of the wrong size")
	}
	if w, h := d.Layout(1000, 1000); w != 4 || h != 3 {
		t.Errorf("Layout() = %dx%d, expected 4x3", w, h)
	}
}

func TestReportRatesTitle(t *testing.T) {
	d := NewDisplay(registry.Options{Title: "Tetris", Width: 4, Height: 3})
	d.ReportRates(60, 58)
	if got := *d.status.Load(); got != "Tetris ups: 60, fps: 58" {
		t.Errorf("title = %q", got)
	}
	if err := d.ReportError("x"); err == nil {
		t.Error("ReportError before Run should fail")
	}
}

func TestWindowBackendRejectsEmptySize(t *testing.T) {
	if _, err := registry.Create("window", registry.Options{}); err == nil {
		t.Error("expected error for a zero-size window")
	}
}
