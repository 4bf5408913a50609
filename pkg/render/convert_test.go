package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/cellstack/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPNG(t *testing.T) {
	if !CanConvert() {
		_, err := ToPNG([]byte(tinySVG), 1)
		if errors.GetCode(err) != errors.ErrCodeUnsupported {
			t.Fatalf("expected UNSUPPORTED without rsvg-convert, got %v", err)
		}
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG([]byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestToPDF(t *testing.T) {
	if !CanConvert() {
		t.Skip("rsvg-convert not installed")
	}

	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}
