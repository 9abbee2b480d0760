package canvas

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func fillLayer(l *Layer, c color.NRGBA) {
	b := l.Pix.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l.Pix.SetNRGBA(x, y, c)
		}
	}
}

func TestNew(t *testing.T) {
	img := New(8, 6)
	if img.W != 8 || img.H != 6 {
		t.Fatalf("size = %dx%d, want 8x6", img.W, img.H)
	}
	if len(img.Layers) != 1 {
		t.Fatalf("layer count = %d, want 1", len(img.Layers))
	}
	if img.Layers[0].State != LayerVisible {
		t.Errorf("initial layer state = %v, want visible", img.Layers[0].State)
	}
	if got := img.Layers[0].Pix.NRGBAAt(3, 3); got != (color.NRGBA{}) {
		t.Errorf("initial layer pixel = %v, want transparent", got)
	}
	if img.Format != "png" {
		t.Errorf("default format = %q, want png", img.Format)
	}
}

func TestAddAndDuplicateLayer(t *testing.T) {
	img := New(4, 4)
	fillLayer(img.Layers[0], red)

	if i := img.AddLayer(); i != 1 {
		t.Fatalf("AddLayer index = %d, want 1", i)
	}
	if got := img.Layers[1].Pix.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("added layer pixel = %v, want transparent", got)
	}

	if i := img.DuplicateLayer(0); i != 2 {
		t.Fatalf("DuplicateLayer index = %d, want 2", i)
	}
	if got := img.Layers[2].Pix.NRGBAAt(2, 2); got != red {
		t.Errorf("duplicated pixel = %v, want %v", got, red)
	}

	// The duplicate owns its pixels.
	img.Layers[2].Pix.SetNRGBA(2, 2, blue)
	if got := img.Layers[0].Pix.NRGBAAt(2, 2); got != red {
		t.Errorf("source pixel changed to %v after editing duplicate", got)
	}
}

func TestFirstAliveAndCount(t *testing.T) {
	img := New(2, 2)
	img.AddLayer()
	img.AddLayer()
	img.Layers[0].State = LayerDeleted
	img.Layers[1].State = LayerHidden

	if n := img.AliveCount(); n != 2 {
		t.Errorf("AliveCount = %d, want 2", n)
	}
	if i := img.FirstAlive(-1); i != 1 {
		t.Errorf("FirstAlive(-1) = %d, want 1 (hidden layers are alive)", i)
	}
	if i := img.FirstAlive(1); i != 2 {
		t.Errorf("FirstAlive(1) = %d, want 2", i)
	}

	img.Layers[1].State = LayerDeleted
	img.Layers[2].State = LayerDeleted
	if i := img.FirstAlive(-1); i != -1 {
		t.Errorf("FirstAlive with all deleted = %d, want -1", i)
	}
}

func TestFlatten(t *testing.T) {
	img := New(6, 6)
	fillLayer(img.Layers[0], red)

	top := img.Layers[img.AddLayer()]
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			top.Pix.SetNRGBA(x, y, blue)
		}
	}

	flat := img.Flatten()
	if got := flat.NRGBAAt(1, 1); got != blue {
		t.Errorf("covered pixel = %v, want %v", got, blue)
	}
	if got := flat.NRGBAAt(5, 5); got != red {
		t.Errorf("uncovered pixel = %v, want %v", got, red)
	}

	// Hidden and deleted layers do not contribute.
	top.State = LayerHidden
	if got := img.Flatten().NRGBAAt(1, 1); got != red {
		t.Errorf("pixel under hidden layer = %v, want %v", got, red)
	}
	top.State = LayerDeleted
	if got := img.Flatten().NRGBAAt(1, 1); got != red {
		t.Errorf("pixel under deleted layer = %v, want %v", got, red)
	}
}

func TestSampleColor(t *testing.T) {
	img := New(4, 4)
	fillLayer(img.Layers[0], red)

	s := img.SampleColor(2, 2)
	if s.Color != red {
		t.Errorf("sampled color = %v, want %v", s.Color, red)
	}
	if s.Hex != "#FF0000" {
		t.Errorf("hex = %q, want #FF0000", s.Hex)
	}

	out := img.SampleColor(9, 9)
	if out.Color != (color.NRGBA{}) {
		t.Errorf("out-of-bounds sample = %v, want transparent", out.Color)
	}
}

func TestResample(t *testing.T) {
	img := New(8, 8)
	fillLayer(img.Layers[0], red)
	img.AddLayer()

	img.Resample(4, 2)
	if img.W != 4 || img.H != 2 {
		t.Fatalf("size = %dx%d, want 4x2", img.W, img.H)
	}
	for _, l := range img.Layers {
		b := l.Pix.Bounds()
		if b.Dx() != 4 || b.Dy() != 2 {
			t.Fatalf("layer bounds = %v, want 4x2", b)
		}
	}
	// A uniform layer stays uniform through resampling.
	if got := img.Layers[0].Pix.NRGBAAt(2, 1); got != red {
		t.Errorf("resampled uniform pixel = %v, want %v", got, red)
	}

	img.Resample(0, 5)
	if img.W != 4 || img.H != 2 {
		t.Errorf("size after degenerate resample = %dx%d, want unchanged", img.W, img.H)
	}
}

func TestResizeCanvas(t *testing.T) {
	img := New(4, 4)
	fillLayer(img.Layers[0], red)

	img.ResizeCanvas(6, 6)
	if img.W != 6 || img.H != 6 {
		t.Fatalf("size = %dx%d, want 6x6", img.W, img.H)
	}
	if got := img.Layers[0].Pix.NRGBAAt(3, 3); got != red {
		t.Errorf("kept pixel = %v, want %v", got, red)
	}
	if got := img.Layers[0].Pix.NRGBAAt(5, 5); got != (color.NRGBA{}) {
		t.Errorf("padded pixel = %v, want transparent", got)
	}

	img.ResizeCanvas(2, 2)
	if b := img.Layers[0].Pix.Bounds(); b != image.Rect(0, 0, 2, 2) {
		t.Fatalf("layer bounds after crop = %v, want 2x2", b)
	}
	if got := img.Layers[0].Pix.NRGBAAt(1, 1); got != red {
		t.Errorf("cropped pixel = %v, want %v", got, red)
	}
}

func TestClone(t *testing.T) {
	img := New(4, 4)
	fillLayer(img.Layers[0], red)
	img.AddLayer()
	img.Layers[1].State = LayerHidden
	img.Path = "out.jpg"
	img.Format = "jpeg"
	img.Quality = 75

	cp := img.Clone()
	if cp.Path != "out.jpg" || cp.Format != "jpeg" || cp.Quality != 75 {
		t.Errorf("metadata not copied: %+v", cp)
	}
	if cp.Layers[1].State != LayerHidden {
		t.Errorf("layer state not copied")
	}

	cp.Layers[0].Pix.SetNRGBA(0, 0, blue)
	if got := img.Layers[0].Pix.NRGBAAt(0, 0); got != red {
		t.Errorf("original pixel changed to %v after editing clone", got)
	}
}
