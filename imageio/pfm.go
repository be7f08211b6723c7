// Package imageio implements the two on-disk image formats a render pass
// produces: the lossless floating-point PFM format a renderer writes its
// raw HDR output to, and the tone-mapped LDR format (PNG, via
// golang.org/x/image/draw for resampling) a preview is exported as.
package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ochrevis/slray/color"
)

// little is the byte-order scale factor WritePFM advertises in its header;
// -1.0 means the float32 payload is little-endian, the convention most
// PFM readers (and this package's own ReadPFM) expect on x86/arm64.
const little = -1.0

// WritePFM writes img to w in the PFM format: a "PF" color header, the
// width and height, a byte-order scale marker, and then width*height RGB
// float32 triples walked bottom row first — the on-disk row order required
// by the format, the mirror image of HdrImage's own top-left-origin
// in-memory layout (color.HdrImage).
func WritePFM(w io.Writer, img *color.HdrImage) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n%g\n", img.Width, img.Height, little); err != nil {
		return err
	}
	buf := make([]byte, 4)
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			c := img.Get(x, y)
			for _, comp := range [3]float32{c.R, c.G, c.B} {
				binary.LittleEndian.PutUint32(buf, math.Float32bits(comp))
				if _, err := bw.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// ReadPFM reads a PFM color image from r into a new HdrImage.
func ReadPFM(r io.Reader) (*color.HdrImage, error) {
	br := bufio.NewReader(r)

	magic, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if magic != "PF" {
		return nil, fmt.Errorf("imageio: unsupported PFM magic %q", magic)
	}

	dims, err := readLine(br)
	if err != nil {
		return nil, err
	}
	var width, height int
	if _, err := fmt.Sscanf(dims, "%d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("imageio: malformed PFM dimensions %q: %w", dims, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imageio: invalid PFM dimensions %dx%d", width, height)
	}

	scaleLine, err := readLine(br)
	if err != nil {
		return nil, err
	}
	var scale float64
	if _, err := fmt.Sscanf(scaleLine, "%g", &scale); err != nil {
		return nil, fmt.Errorf("imageio: malformed PFM scale %q: %w", scaleLine, err)
	}
	order := binary.ByteOrder(binary.BigEndian)
	if scale < 0 {
		order = binary.LittleEndian
	}

	img := color.NewHdrImage(width, height)
	buf := make([]byte, 4)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			var rgb [3]float32
			for i := range rgb {
				if _, err := io.ReadFull(br, buf); err != nil {
					return nil, fmt.Errorf("imageio: truncated PFM payload: %w", err)
				}
				rgb[i] = math.Float32frombits(order.Uint32(buf))
			}
			img.Set(x, y, color.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
		}
	}
	return img, nil
}

// readLine reads one newline-terminated header line, stripping the
// trailing newline.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("imageio: reading PFM header: %w", err)
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line, nil
}
