package imageio

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/ochrevis/slray/color"
)

// ToneMap converts an HDR image to a display-ready image.NRGBA using the
// standard two-stage tone-mapping pipeline: normalize each pixel by the
// image's average luminosity scaled by aFactor, compress it into [0,1)
// with the Reinhard-style l/(1+l) operator, then gamma-encode.
func ToneMap(img *color.HdrImage, aFactor, gamma float64) *image.NRGBA {
	avg := averageLuminosity(img)
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Get(x, y)
			r := toneComponent(float64(c.R), avg, aFactor, gamma)
			g := toneComponent(float64(c.G), avg, aFactor, gamma)
			b := toneComponent(float64(c.B), avg, aFactor, gamma)
			i := out.PixOffset(x, y)
			out.Pix[i] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 255
		}
	}
	return out
}

func toneComponent(v, avg, aFactor, gamma float64) uint8 {
	if avg > 0 {
		v = v * aFactor / avg
	}
	v = v / (1 + v)
	v = math.Pow(v, 1/gamma)
	return clampByte(v * 255)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// averageLuminosity returns the log-average (geometric mean) luminosity
// across every pixel,
// skipping exact zeros so a large background of unlit pixels doesn't drag
// the whole image's normalization down to nothing.
func averageLuminosity(img *color.HdrImage) float64 {
	sum, n := 0.0, 0
	for _, p := range img.Pixels() {
		l := float64(p.Luminosity())
		if l <= 0 {
			continue
		}
		sum += math.Log(1e-10 + l)
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Exp(sum / float64(n))
}

// WriteLDR tone-maps img and writes it as a PNG to w, resampled to
// width x height via golang.org/x/image/draw's Catmull-Rom interpolator if
// either dimension differs from img's own. Pass width=0 (or height=0) to
// skip resampling entirely.
func WriteLDR(w io.Writer, img *color.HdrImage, aFactor, gamma float64, width, height int) error {
	mapped := ToneMap(img, aFactor, gamma)
	if width <= 0 || height <= 0 || (width == img.Width && height == img.Height) {
		return png.Encode(w, mapped)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), mapped, mapped.Bounds(), draw.Over, nil)
	return png.Encode(w, dst)
}
