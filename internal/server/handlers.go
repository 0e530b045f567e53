package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/harshkhalkar/aws-polly-tts/internal/tts"
)

// synthesizeRequest is the POST /synthesize body.
type synthesizeRequest struct {
	Text     string `json:"text" example:"Hello, world"`
	Format   string `json:"format,omitempty" enums:"mp3,ogg" example:"mp3"`
	TextType string `json:"textType,omitempty" enums:"text,ssml" example:"text"`
}

// errorResponse is the JSON body returned for any failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// handleSynthesize converts a text payload to audio.
//
// @Summary     Synthesize speech from text
// @Description Sends the text to AWS Polly using the gateway's fixed voice, engine, and language,
// @Description buffers the full audio stream, and returns it as a downloadable attachment.
// @Tags        tts
// @Accept      json
// @Produce     audio/mpeg
// @Produce     audio/ogg
// @Param       request  body  synthesizeRequest  true  "Text to synthesize. Unrecognized format values fall back to mp3."
// @Success     200  {file}    binary         "Synthesized audio"
// @Failure     400  {object}  errorResponse  "Missing or blank text, or undecodable body"
// @Failure     500  {object}  errorResponse  "Provider or stream failure"
// @Router      /synthesize [post]
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	format := tts.ParseFormat(req.Format)

	result, err := s.synth.Synthesize(r.Context(), tts.Request{
		Text:     req.Text,
		Format:   format,
		TextType: req.TextType,
	})
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("synthesis failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename())
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Audio)))
	_, _ = w.Write(result.Audio)
}

// handleVoices lists the provider voices for the gateway's language.
//
// @Summary     List available voices
// @Description Passes through the provider's voice descriptors for the gateway's fixed language code.
// @Tags        tts
// @Produce     json
// @Success     200  {array}   tts.Voice
// @Failure     500  {object}  errorResponse  "Provider failure"
// @Router      /voices [get]
func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := s.synth.Voices(r.Context())
	if err != nil {
		slog.Error("listing voices failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if voices == nil {
		voices = []tts.Voice{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(voices)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
