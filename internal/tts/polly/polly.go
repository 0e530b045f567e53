// Package polly implements the TTS Synthesizer backed by AWS Polly.
//
// The client is built once at startup from the default AWS credential chain
// and the configured region, then shared read-only across request handlers.
// Voice, engine, and language are fixed at construction; request bodies can
// only choose the output format and the text type.
package polly

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"

	"github.com/harshkhalkar/aws-polly-tts/internal/config"
	"github.com/harshkhalkar/aws-polly-tts/internal/tts"
)

// api is the slice of the Polly client the synthesizer uses. Tests provide
// a capturing fake.
type api interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
	DescribeVoices(ctx context.Context, params *polly.DescribeVoicesInput, optFns ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error)
}

// Synthesizer implements tts.Synthesizer using AWS Polly.
type Synthesizer struct {
	client   api
	voice    types.VoiceId
	engine   types.Engine
	language types.LanguageCode
}

// New builds a Polly synthesizer from gateway config. Credentials come from
// the ambient AWS chain (env, shared config, instance role).
func New(ctx context.Context, region string, cfg config.TTSConfig) (*Synthesizer, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &Synthesizer{
		client:   polly.NewFromConfig(awsCfg),
		voice:    types.VoiceId(cfg.Voice),
		engine:   types.Engine(cfg.Engine),
		language: types.LanguageCode(cfg.Language),
	}, nil
}

// Synthesize calls Polly and buffers the returned audio stream to completion.
// No retry is attempted; any provider or stream failure surfaces as one
// wrapped error carrying the provider's message.
func (s *Synthesizer) Synthesize(ctx context.Context, req tts.Request) (*tts.Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, tts.ErrEmptyText
	}

	textType := req.TextType
	if textType == "" {
		textType = tts.TextTypePlain
	}

	input := &polly.SynthesizeSpeechInput{
		Engine:       s.engine,
		LanguageCode: s.language,
		OutputFormat: outputFormat(req.Format),
		Text:         aws.String(text),
		TextType:     types.TextType(textType),
		VoiceId:      s.voice,
	}

	slog.Debug("polly synthesize",
		"text_length", len(text),
		"format", req.Format,
		"text_type", textType)

	out, err := s.client.SynthesizeSpeech(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}
	defer out.AudioStream.Close()

	audio, err := collect(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("reading audio stream: %w", err)
	}

	return &tts.Result{
		Audio:       audio,
		ContentType: req.Format.ContentType(),
	}, nil
}

// collect drains the provider's byte stream in order into one contiguous
// buffer. The whole body is assembled before the caller writes any response.
func collect(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Voices lists Polly voices for the fixed language code, mapped verbatim.
func (s *Synthesizer) Voices(ctx context.Context) ([]tts.Voice, error) {
	out, err := s.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{
		Engine:       s.engine,
		LanguageCode: s.language,
	})
	if err != nil {
		return nil, fmt.Errorf("describing voices: %w", err)
	}

	voices := make([]tts.Voice, 0, len(out.Voices))
	for _, v := range out.Voices {
		engines := make([]string, 0, len(v.SupportedEngines))
		for _, e := range v.SupportedEngines {
			engines = append(engines, string(e))
		}
		voices = append(voices, tts.Voice{
			ID:           string(v.Id),
			Name:         aws.ToString(v.Name),
			Gender:       string(v.Gender),
			LanguageCode: string(v.LanguageCode),
			LanguageName: aws.ToString(v.LanguageName),
			Engines:      engines,
		})
	}
	return voices, nil
}

// Close implements tts.Synthesizer. The Polly client holds no connections
// that need explicit teardown.
func (s *Synthesizer) Close() error { return nil }

func outputFormat(f tts.Format) types.OutputFormat {
	if f == tts.FormatOGG {
		return types.OutputFormatOggVorbis
	}
	return types.OutputFormatMp3
}
