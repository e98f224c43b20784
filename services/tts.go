package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// Voice selection per poem language.
var ttsVoices = map[string]struct {
	languageCode string
	name         string
}{
	"urdu":    {"ur-IN", "ur-IN-Wavenet-A"},
	"hindi":   {"hi-IN", "hi-IN-Wavenet-A"},
	"english": {"en-IN", "en-IN-Wavenet-A"},
}

// SynthesizeRecitation turns a poem body into MP3 audio with Google Cloud
// Text-to-Speech. language selects the voice; rate <= 0 falls back to 1.0.
func SynthesizeRecitation(ctx context.Context, text, language string, rate float64) ([]byte, error) {
	if len(text) == 0 {
		return nil, errors.New("text is empty")
	}
	voice, ok := ttsVoices[language]
	if !ok {
		return nil, NewValidationError("unsupported language: %s", language)
	}
	if rate <= 0 {
		rate = 1.0
	}

	credPath := os.Getenv("GOOGLE_CREDENTIALS_JSON")
	if credPath == "" {
		return nil, errors.New("GOOGLE_CREDENTIALS_JSON environment variable is not set")
	}

	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credPath))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	// Poems are short, but stay under the 5000-byte request limit anyway.
	chunks := splitTextToChunksByByte(text, 4500)
	var allAudio []byte

	for _, chunk := range chunks {
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{
					Text: chunk,
				},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: voice.languageCode,
				Name:         voice.name,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding: texttospeechpb.AudioEncoding_MP3,
				SpeakingRate:  rate,
			},
		}

		resp, err := client.SynthesizeSpeech(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("speech synthesis failed: %w", err)
		}
		allAudio = append(allAudio, resp.AudioContent...)
	}

	return allAudio, nil
}

// splitTextToChunksByByte splits text on a byte budget, preferring to cut
// at punctuation or line breaks and never inside a UTF-8 sequence.
func splitTextToChunksByByte(text string, maxBytes int) []string {
	var chunks []string
	remaining := text

	for len(remaining) > 0 {
		if len(remaining) <= maxBytes {
			chunks = append(chunks, remaining)
			break
		}

		cutPos := maxBytes
		for i := cutPos; i > 0; i-- {
			if remaining[i-1] == '.' || remaining[i-1] == '!' || remaining[i-1] == '?' || remaining[i-1] == '\n' {
				cutPos = i
				break
			}
		}

		for cutPos < len(remaining) && (remaining[cutPos]&0xC0) == 0x80 {
			cutPos++
		}

		chunks = append(chunks, remaining[:cutPos])
		remaining = remaining[cutPos:]
	}

	return chunks
}
