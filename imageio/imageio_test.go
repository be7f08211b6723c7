package imageio

import (
	"bytes"
	"testing"

	"github.com/ochrevis/slray/color"
)

func sampleImage() *color.HdrImage {
	img := color.NewHdrImage(3, 2)
	img.Set(0, 0, color.Color{R: 1, G: 0, B: 0})
	img.Set(1, 0, color.Color{R: 0, G: 1, B: 0})
	img.Set(2, 0, color.Color{R: 0, G: 0, B: 1})
	img.Set(0, 1, color.Color{R: 0.25, G: 0.25, B: 0.25})
	img.Set(1, 1, color.Color{R: 2, G: 2, B: 2})
	img.Set(2, 1, color.Black)
	return img
}

func TestPFMRoundTrip(t *testing.T) {
	img := sampleImage()
	var buf bytes.Buffer
	if err := WritePFM(&buf, img); err != nil {
		t.Fatalf("WritePFM: %v", err)
	}
	got, err := ReadPFM(&buf)
	if err != nil {
		t.Fatalf("ReadPFM: %v", err)
	}
	if got.Width != img.Width || got.Height != img.Height {
		t.Fatalf("dimensions: got %dx%d want %dx%d", got.Width, got.Height, img.Width, img.Height)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if !got.Get(x, y).Eq(img.Get(x, y)) {
				t.Errorf("pixel (%d,%d): got %+v want %+v", x, y, got.Get(x, y), img.Get(x, y))
			}
		}
	}
}

func TestPFMHeaderFields(t *testing.T) {
	img := color.NewHdrImage(4, 2)
	var buf bytes.Buffer
	if err := WritePFM(&buf, img); err != nil {
		t.Fatalf("WritePFM: %v", err)
	}
	header := buf.String()[:len("PF\n4 2\n")]
	if header != "PF\n4 2\n" {
		t.Errorf("header: got %q", header)
	}
}

func TestReadPFMRejectsBadMagic(t *testing.T) {
	if _, err := ReadPFM(bytes.NewBufferString("XX\n1 1\n-1.0\n\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")); err == nil {
		t.Error("expected an error for a bad magic number")
	}
}

func TestWriteLDRProducesPNG(t *testing.T) {
	img := sampleImage()
	var buf bytes.Buffer
	if err := WriteLDR(&buf, img, 1.0, 1.0, 0, 0); err != nil {
		t.Fatalf("WriteLDR: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output does not start with a PNG signature")
	}
}

func TestWriteLDRResamples(t *testing.T) {
	img := sampleImage()
	var buf bytes.Buffer
	if err := WriteLDR(&buf, img, 1.0, 2.2, 6, 4); err != nil {
		t.Fatalf("WriteLDR: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output does not start with a PNG signature")
	}
}
