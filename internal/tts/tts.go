// Package tts defines the contract between the HTTP gateway and the
// text-to-speech provider backend.
//
// The gateway synthesizes with a single fixed voice, engine, and language;
// the only caller-controlled knobs are the output format and the text type.
package tts

import (
	"context"
	"errors"
	"strings"
)

// Format is the audio output format a caller may request.
type Format string

const (
	// FormatMP3 is the default output format.
	FormatMP3 Format = "mp3"

	// FormatOGG selects Ogg Vorbis output.
	FormatOGG Format = "ogg"
)

// ParseFormat maps a caller-supplied format string to a Format.
// Any value other than "ogg" (including empty) falls back to mp3 rather
// than erroring.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatOGG)) {
		return FormatOGG
	}
	return FormatMP3
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatOGG {
		return "audio/ogg"
	}
	return "audio/mpeg"
}

// Ext returns the file extension for the format, without a leading dot.
func (f Format) Ext() string {
	if f == FormatOGG {
		return "ogg"
	}
	return "mp3"
}

// Filename returns the attachment filename for synthesized audio.
func (f Format) Filename() string {
	return "speech." + f.Ext()
}

// Text type wire values. Anything else is handed to the provider as-is and
// rejected there, not here.
const (
	TextTypePlain = "text"
	TextTypeSSML  = "ssml"
)

// ErrEmptyText is returned when the text to synthesize is missing or blank.
var ErrEmptyText = errors.New("text must not be empty")

// Request describes one synthesis call. It lives for the duration of a
// single HTTP request and is never stored.
type Request struct {
	// Text is the content to synthesize. Must be non-empty after trimming.
	Text string

	// Format selects the audio container. Zero value behaves as mp3.
	Format Format

	// TextType is "text" or "ssml". Empty defaults to "text".
	TextType string
}

// Result holds fully assembled audio. The backend buffers the provider's
// stream to completion before returning, so Audio is always the whole body.
type Result struct {
	// Audio is the synthesized audio bytes.
	Audio []byte

	// ContentType is the MIME type of Audio.
	ContentType string
}

// Voice describes one provider voice, as exposed by the listing endpoint.
type Voice struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Gender       string   `json:"gender"`
	LanguageCode string   `json:"languageCode"`
	LanguageName string   `json:"languageName"`
	Engines      []string `json:"engines"`
}

// Synthesizer converts text to audio through an external provider.
//
// Implementations are constructed once at startup and must be safe for
// concurrent use by independent request handlers.
type Synthesizer interface {
	// Synthesize generates audio for the request, buffering the provider's
	// byte stream into a single result.
	Synthesize(ctx context.Context, req Request) (*Result, error)

	// Voices lists the voices available for the gateway's fixed language.
	Voices(ctx context.Context) ([]Voice, error)

	// Close releases any resources held by the synthesizer.
	Close() error
}
