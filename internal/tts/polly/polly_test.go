package polly

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aws/aws-sdk-go-v2/aws"
	awspolly "github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"

	"github.com/harshkhalkar/aws-polly-tts/internal/tts"
)

// fakeClient captures call inputs and returns canned outputs.
type fakeClient struct {
	synthInputs []*awspolly.SynthesizeSpeechInput
	synthOut    *awspolly.SynthesizeSpeechOutput
	synthErr    error

	descInputs []*awspolly.DescribeVoicesInput
	descOut    *awspolly.DescribeVoicesOutput
	descErr    error
}

func (f *fakeClient) SynthesizeSpeech(ctx context.Context, params *awspolly.SynthesizeSpeechInput, optFns ...func(*awspolly.Options)) (*awspolly.SynthesizeSpeechOutput, error) {
	f.synthInputs = append(f.synthInputs, params)
	if f.synthErr != nil {
		return nil, f.synthErr
	}
	return f.synthOut, nil
}

func (f *fakeClient) DescribeVoices(ctx context.Context, params *awspolly.DescribeVoicesInput, optFns ...func(*awspolly.Options)) (*awspolly.DescribeVoicesOutput, error) {
	f.descInputs = append(f.descInputs, params)
	if f.descErr != nil {
		return nil, f.descErr
	}
	return f.descOut, nil
}

func newTestSynthesizer(client api) *Synthesizer {
	return &Synthesizer{
		client:   client,
		voice:    types.VoiceIdJoanna,
		engine:   types.EngineNeural,
		language: types.LanguageCodeEnUs,
	}
}

func audioStream(data []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(data))
}

func TestSynthesizeForcesFixedParameters(t *testing.T) {
	fake := &fakeClient{synthOut: &awspolly.SynthesizeSpeechOutput{
		AudioStream: audioStream([]byte("mp3data")),
	}}
	s := newTestSynthesizer(fake)

	requests := []tts.Request{
		{Text: "hello"},
		{Text: "bonjour", Format: tts.FormatOGG},
		{Text: "<speak>hi</speak>", TextType: tts.TextTypeSSML},
	}
	for _, req := range requests {
		fake.synthOut = &awspolly.SynthesizeSpeechOutput{AudioStream: audioStream([]byte("x"))}
		if _, err := s.Synthesize(context.Background(), req); err != nil {
			t.Fatalf("Synthesize(%q): %v", req.Text, err)
		}
	}

	if len(fake.synthInputs) != len(requests) {
		t.Fatalf("provider called %d times, want %d", len(fake.synthInputs), len(requests))
	}
	for i, in := range fake.synthInputs {
		if in.VoiceId != types.VoiceIdJoanna {
			t.Errorf("call %d: voice = %q, want Joanna", i, in.VoiceId)
		}
		if in.Engine != types.EngineNeural {
			t.Errorf("call %d: engine = %q, want neural", i, in.Engine)
		}
		if in.LanguageCode != types.LanguageCodeEnUs {
			t.Errorf("call %d: language = %q, want en-US", i, in.LanguageCode)
		}
	}
}

func TestSynthesizeFormatAndTextTypeMapping(t *testing.T) {
	tests := []struct {
		name         string
		req          tts.Request
		wantFormat   types.OutputFormat
		wantTextType types.TextType
	}{
		{"defaults", tts.Request{Text: "hi"}, types.OutputFormatMp3, types.TextTypeText},
		{"ogg", tts.Request{Text: "hi", Format: tts.FormatOGG}, types.OutputFormatOggVorbis, types.TextTypeText},
		{"ssml", tts.Request{Text: "<speak>hi</speak>", TextType: tts.TextTypeSSML}, types.OutputFormatMp3, types.TextTypeSsml},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeClient{synthOut: &awspolly.SynthesizeSpeechOutput{
				AudioStream: audioStream([]byte("x")),
			}}
			s := newTestSynthesizer(fake)

			if _, err := s.Synthesize(context.Background(), tt.req); err != nil {
				t.Fatal(err)
			}
			in := fake.synthInputs[0]
			if in.OutputFormat != tt.wantFormat {
				t.Errorf("output format = %q, want %q", in.OutputFormat, tt.wantFormat)
			}
			if in.TextType != tt.wantTextType {
				t.Errorf("text type = %q, want %q", in.TextType, tt.wantTextType)
			}
			if aws.ToString(in.Text) != strings.TrimSpace(tt.req.Text) {
				t.Errorf("text = %q, want %q", aws.ToString(in.Text), tt.req.Text)
			}
		})
	}
}

func TestSynthesizeCollectsWholeStream(t *testing.T) {
	// OneByteReader forces many small reads to exercise the append loop.
	data := bytes.Repeat([]byte("audio-chunk-"), 100)
	fake := &fakeClient{synthOut: &awspolly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(iotest.OneByteReader(bytes.NewReader(data))),
	}}
	s := newTestSynthesizer(fake)

	result, err := s.Synthesize(context.Background(), tts.Request{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(result.Audio, data) {
		t.Errorf("collected %d bytes, want %d matching the stream", len(result.Audio), len(data))
	}
	if result.ContentType != "audio/mpeg" {
		t.Errorf("content type = %q, want audio/mpeg", result.ContentType)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	fake := &fakeClient{}
	s := newTestSynthesizer(fake)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := s.Synthesize(context.Background(), tts.Request{Text: text})
		if !errors.Is(err, tts.ErrEmptyText) {
			t.Errorf("Synthesize(%q) error = %v, want ErrEmptyText", text, err)
		}
	}
	if len(fake.synthInputs) != 0 {
		t.Errorf("provider called %d times for empty text, want 0", len(fake.synthInputs))
	}
}

func TestSynthesizeProviderError(t *testing.T) {
	fake := &fakeClient{synthErr: errors.New("TextLengthExceededException: text too long")}
	s := newTestSynthesizer(fake)

	_, err := s.Synthesize(context.Background(), tts.Request{Text: "hello"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "text too long") {
		t.Errorf("error %q does not carry the provider message", err)
	}
}

func TestSynthesizeStreamError(t *testing.T) {
	stream := io.MultiReader(
		bytes.NewReader([]byte("partial")),
		iotest.ErrReader(errors.New("connection reset")),
	)
	fake := &fakeClient{synthOut: &awspolly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(stream),
	}}
	s := newTestSynthesizer(fake)

	_, err := s.Synthesize(context.Background(), tts.Request{Text: "hello"})
	if err == nil {
		t.Fatal("expected error for mid-stream failure, got nil")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("error %q does not carry the stream failure", err)
	}
}

func TestVoices(t *testing.T) {
	fake := &fakeClient{descOut: &awspolly.DescribeVoicesOutput{
		Voices: []types.Voice{
			{
				Id:               types.VoiceIdJoanna,
				Name:             aws.String("Joanna"),
				Gender:           types.GenderFemale,
				LanguageCode:     types.LanguageCodeEnUs,
				LanguageName:     aws.String("US English"),
				SupportedEngines: []types.Engine{types.EngineNeural, types.EngineStandard},
			},
		},
	}}
	s := newTestSynthesizer(fake)

	voices, err := s.Voices(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(voices) != 1 {
		t.Fatalf("got %d voices, want 1", len(voices))
	}
	v := voices[0]
	if v.ID != "Joanna" || v.Gender != "Female" || v.LanguageCode != "en-US" {
		t.Errorf("voice = %+v, not mapped from provider descriptor", v)
	}
	if len(v.Engines) != 2 || v.Engines[0] != "neural" {
		t.Errorf("engines = %v, want [neural standard]", v.Engines)
	}

	in := fake.descInputs[0]
	if in.LanguageCode != types.LanguageCodeEnUs || in.Engine != types.EngineNeural {
		t.Errorf("DescribeVoices input = %+v, want fixed language and engine", in)
	}
}

func TestVoicesProviderError(t *testing.T) {
	fake := &fakeClient{descErr: errors.New("AccessDeniedException")}
	s := newTestSynthesizer(fake)

	if _, err := s.Voices(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
