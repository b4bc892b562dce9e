// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Decode reads a still image in any stdlib-registered format and
// converts it to a 4-channel u8 ImageBuf, synthesizing an opaque alpha
// channel when the source has none.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a standard library image.Image into a 4-channel
// u8 ImageBuf.
func FromImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	spec := NewImageSpec(bounds.Dx(), bounds.Dy(), 4, ComponentU8)
	buf := NewImageBuf(spec)

	rgba, ok := img.(*image.RGBA)
	if !ok {
		tmp := image.NewRGBA(bounds)
		draw.Draw(tmp, bounds, img, bounds.Min, draw.Src)
		rgba = tmp
	}
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			r, g, b, a := rgba.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Set(x, y, 0, float64(r)/65535.0)
			buf.Set(x, y, 1, float64(g)/65535.0)
			buf.Set(x, y, 2, float64(b)/65535.0)
			buf.Set(x, y, 3, float64(a)/65535.0)
		}
	}
	return buf
}

// ToImage converts an ImageBuf (any channel count) to a standard
// library *image.RGBA for encoding or resizing.
func (b *ImageBuf) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, b.Spec.Width, b.Spec.Height))
	for y := 0; y < b.Spec.Height; y++ {
		for x := 0; x < b.Spec.Width; x++ {
			r := uint8(clamp01(b.At(x, y, 0)) * 255.0)
			g := uint8(clamp01(b.At(x, y, 1)) * 255.0)
			bl := uint8(clamp01(b.At(x, y, 2)) * 255.0)
			a := uint8(clamp01(b.At(x, y, 3)) * 255.0)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: a})
		}
	}
	return out
}

// Encode writes b to w in the still-image format implied by ext (a
// filename extension such as ".png" or ".jpg"), defaulting to PNG for
// any unrecognized extension.
func (b *ImageBuf) Encode(w io.Writer, ext string) error {
	img := b.ToImage()
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(w, img)
	}
}

// Resize scales b to the given width/height using the supplied
// golang.org/x/image/draw scaler, defaulting to bilinear when scaler
// is nil.
func (b *ImageBuf) Resize(width, height int, scaler xdraw.Scaler) *ImageBuf {
	if scaler == nil {
		scaler = xdraw.BiLinear
	}
	src := b.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return FromImage(dst)
}
