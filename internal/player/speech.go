package player

import (
	"vocab-coach/internal/config"
	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"

	"go.uber.org/zap"
)

// PronunciationRequest asks for the spoken form of a quiz word.
type PronunciationRequest struct {
	QuestionID int
	Text       string
}

// PlaybackDirective tells the presentation layer how to produce audio for a
// word: either play a file or synthesize speech with the given voice
// configuration.
type PlaybackDirective struct {
	Strategy string  `json:"strategy"`
	AudioURL string  `json:"audioUrl,omitempty"`
	Text     string  `json:"text,omitempty"`
	Lang     string  `json:"lang,omitempty"`
	Rate     float64 `json:"rate,omitempty"`
	Pitch    float64 `json:"pitch,omitempty"`
}

// PlaybackStrategy is one way of producing audio for a word. Strategies are
// tried in order; each reports success or failure instead of nesting error
// handlers.
type PlaybackStrategy interface {
	Name() string
	Attempt(req PronunciationRequest) (*PlaybackDirective, error)
}

// FallbackChain tries an ordered list of playback strategies until one
// succeeds.
type FallbackChain struct {
	strategies []PlaybackStrategy
}

func NewFallbackChain(strategies ...PlaybackStrategy) *FallbackChain {
	return &FallbackChain{strategies: strategies}
}

// Resolve returns the first successful directive. All strategies failing is
// a playback failure the caller can report; it has no core-state impact.
func (c *FallbackChain) Resolve(req PronunciationRequest) (*PlaybackDirective, error) {
	for _, strategy := range c.strategies {
		directive, err := strategy.Attempt(req)
		if err == nil {
			return directive, nil
		}
		logger.Get().Debug("Playback strategy failed, trying next",
			zap.String("strategy", strategy.Name()),
			zap.Int("question_id", req.QuestionID),
			zap.Error(err),
		)
	}
	return nil, domain.NewPlaybackError("No playback strategy available for this word", nil)
}

// WordAudioLocator resolves the pre-generated pronunciation file for a
// question, if one exists on disk.
type WordAudioLocator interface {
	WordAudioURL(questionID int) (string, error)
}

// AudioFileStrategy plays the pre-generated per-word audio file.
type AudioFileStrategy struct {
	locator WordAudioLocator
}

func NewAudioFileStrategy(locator WordAudioLocator) *AudioFileStrategy {
	return &AudioFileStrategy{locator: locator}
}

func (s *AudioFileStrategy) Name() string {
	return "audio-file"
}

func (s *AudioFileStrategy) Attempt(req PronunciationRequest) (*PlaybackDirective, error) {
	url, err := s.locator.WordAudioURL(req.QuestionID)
	if err != nil {
		return nil, err
	}
	return &PlaybackDirective{
		Strategy: s.Name(),
		AudioURL: url,
	}, nil
}

// SpeechSynthesisStrategy falls back to synthesized speech with a fixed
// accent, rate and pitch. Voice selection within the configured language is
// best effort on the presentation side.
type SpeechSynthesisStrategy struct {
	cfg config.SpeechConfig
}

func NewSpeechSynthesisStrategy(cfg config.SpeechConfig) *SpeechSynthesisStrategy {
	return &SpeechSynthesisStrategy{cfg: cfg}
}

func (s *SpeechSynthesisStrategy) Name() string {
	return "speech-synthesis"
}

func (s *SpeechSynthesisStrategy) Attempt(req PronunciationRequest) (*PlaybackDirective, error) {
	if req.Text == "" {
		return nil, domain.NewInvalidInputError("Nothing to speak")
	}
	return &PlaybackDirective{
		Strategy: s.Name(),
		Text:     req.Text,
		Lang:     s.cfg.Lang,
		Rate:     s.cfg.Rate,
		Pitch:    s.cfg.Pitch,
	}, nil
}
