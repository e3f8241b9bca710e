package render

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// logoMaxHeight bounds the composited logo so it stays a corner mark.
const logoMaxHeight = 64

// logoMargin is the gap between the logo and the chart edges.
const logoMargin = 10

// overlayLogo decodes the rendered chart PNG, places the logo image in the
// bottom-right corner, and re-encodes. Every failure is reported as a
// *LogoLoadError so the caller can treat it as non-fatal.
func overlayLogo(chartPNG []byte, logoPath string) ([]byte, error) {
	base, err := png.Decode(bytes.NewReader(chartPNG))
	if err != nil {
		return nil, &LogoLoadError{Path: logoPath, Err: err}
	}

	f, err := os.Open(logoPath)
	if err != nil {
		return nil, &LogoLoadError{Path: logoPath, Err: err}
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return nil, &LogoLoadError{Path: logoPath, Err: err}
	}

	lb := logo.Bounds()
	w, h := lb.Dx(), lb.Dy()
	if h > logoMaxHeight {
		w = w * logoMaxHeight / h
		h = logoMaxHeight
	}

	bb := base.Bounds()
	canvas := image.NewRGBA(bb)
	xdraw.Draw(canvas, bb, base, bb.Min, xdraw.Src)

	dst := image.Rect(bb.Max.X-logoMargin-w, bb.Max.Y-logoMargin-h, bb.Max.X-logoMargin, bb.Max.Y-logoMargin)
	xdraw.ApproxBiLinear.Scale(canvas, dst, logo, lb, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, &LogoLoadError{Path: logoPath, Err: err}
	}
	return buf.Bytes(), nil
}
