// Package screenshot writes the current frame to disk and the clipboard.
package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

const prefix = "tapbeat"

type Saver struct {
	Dir string
	Now func() time.Time
	// Copy receives the encoded PNG. Nil disables clipboard copies.
	Copy func(png []byte) error
}

func New(dir string) *Saver {
	return &Saver{
		Dir:  dir,
		Now:  time.Now,
		Copy: copyToClipboard,
	}
}

// FileName is the name a capture taken at t is saved under.
func FileName(t time.Time) string {
	return fmt.Sprintf("%s-%s.png", prefix, t.Format("20060102-150405.000"))
}

// Capture saves the screen. It must be called from Draw, after the frame is
// rendered.
func (s *Saver) Capture(screen *ebiten.Image) (string, error) {
	b := screen.Bounds()
	img := image.NewRGBA(b)
	screen.ReadPixels(img.Pix)
	return s.Save(img)
}

// Save encodes img as PNG into Dir and returns the written path.
func (s *Saver) Save(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("screenshot: encode: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", s.Dir, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	path := filepath.Join(s.Dir, FileName(now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	log.Printf("screenshot: saved %s (%s)", path, humanize.Bytes(uint64(buf.Len())))

	if s.Copy != nil {
		if err := s.Copy(buf.Bytes()); err != nil {
			log.Printf("screenshot: clipboard: %v", err)
		}
	}
	return path, nil
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func copyToClipboard(data []byte) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
