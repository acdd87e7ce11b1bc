package turtle

import (
	"bytes"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	p := NewPixmap(16, 16)

	p.SetPixel(3, 5, Red)
	got := p.GetPixel(3, 5)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel = %+v, want red", got)
	}

	// Out of bounds reads are transparent, writes are ignored.
	p.SetPixel(-1, 0, Red)
	p.SetPixel(16, 16, Red)
	if got := p.GetPixel(-1, 0); got.A != 0 {
		t.Errorf("out-of-bounds read = %+v, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(8, 8)
	p.Clear(Yellow)
	got := p.GetPixel(7, 7)
	if got.R < 0.99 || got.G < 0.99 || got.B > 0.01 {
		t.Errorf("pixel after Clear = %+v, want yellow", got)
	}
}

func TestPixmapBlend(t *testing.T) {
	p := NewPixmap(4, 4)
	p.Clear(White)

	// Half coverage black over white gives mid gray.
	p.BlendPixel(1, 1, Black, 0.5)
	got := p.GetPixel(1, 1)
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("blended R = %v, want about 0.5", got.R)
	}

	// Full coverage replaces.
	p.BlendPixel(2, 2, Black, 1)
	got = p.GetPixel(2, 2)
	if got.R > 0.01 {
		t.Errorf("blended R = %v, want 0", got.R)
	}

	// Zero coverage is a no-op.
	p.BlendPixel(3, 3, Black, 0)
	got = p.GetPixel(3, 3)
	if got.R < 0.99 {
		t.Errorf("blended R = %v, want 1", got.R)
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	p := NewPixmap(5, 5)
	p.Clear(Blue)
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
