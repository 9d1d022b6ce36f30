package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *
var assetsFS embed.FS

const SampleRate = 44100

var audioContext = audio.NewContext(SampleRate)

// AudioContext returns the process-wide audio context.
func AudioContext() *audio.Context {
	return audioContext
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// Exists reports whether an embedded asset is present.
func Exists(path string) bool {
	_, err := assetsFS.Open(cleanAssetPath(path))
	return err == nil
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return newPlayer(path, b)
}

// OpenAudioPlayer decodes an audio file from disk.
func OpenAudioPlayer(path string) (*audio.Player, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newPlayer(path, b)
}

func newPlayer(path string, b []byte) (*audio.Player, error) {
	stream, err := decode(path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if stream == nil {
		// Already-decoded PCM in Ebiten's native format.
		return audioContext.NewPlayerFromBytes(b), nil
	}
	return audioContext.NewPlayer(stream)
}

func decode(path string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), r)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(audioContext.SampleRate(), r)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %q: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(audioContext.SampleRate(), r)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", path, err)
		}
		return stream, nil
	default:
		return nil, nil
	}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
