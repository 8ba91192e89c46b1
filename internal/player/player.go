// Package player implements the listening-practice audio player: transport
// state, word-jump navigation and time-synchronized subtitle display. The
// player drives an external media element through the MediaController
// command interface and treats the element's own lifecycle events as the
// single source of truth for playback state.
package player

import (
	"context"

	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"
	"vocab-coach/internal/render"
	"vocab-coach/internal/util"

	"go.uber.org/zap"
)

// State identifies the player's transport state.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoaded   State = "loaded"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
)

// MediaController issues commands toward the playback primitive. Commands
// are requests: the player updates its own flags only when the corresponding
// confirmation event arrives, so a rejected request (autoplay policy, missing
// file) cannot drift the state.
type MediaController interface {
	Load(src string)
	Play()
	Pause()
	Seek(seconds float64)
	SetRate(rate float64)
}

// TimestampSource fetches the optional timestamp track for a session.
// A nil track with nil error is a valid outcome, not a failure.
type TimestampSource interface {
	FetchTimestamps(ctx context.Context, sessionID int) ([]domain.TimestampEntry, error)
}

// Player owns playback state for one client. Like the quiz engine it is a
// run-to-completion command machine; callers must serialize access.
type Player struct {
	media      MediaController
	timestamps TimestampSource
	renderer   render.Renderer

	// secondsPerWord is the estimated-jump heuristic used when a session
	// has no timestamp track. An approximation, not a guarantee.
	secondsPerWord float64

	state   State
	session *domain.ListeningSession
	track   []domain.TimestampEntry

	duration    float64
	currentTime float64
	isPlaying   bool
	isLooping   bool
	rate        float64

	subtitleIndex int
	lastFragment  string
}

// NewPlayer creates an unloaded player.
func NewPlayer(media MediaController, timestamps TimestampSource, renderer render.Renderer, secondsPerWord float64) *Player {
	return &Player{
		media:          media,
		timestamps:     timestamps,
		renderer:       renderer,
		secondsPerWord: secondsPerWord,
		state:          StateUnloaded,
		rate:           1.0,
		subtitleIndex:  -1,
	}
}

// State returns the current transport state.
func (p *Player) State() State {
	return p.state
}

// LoadSession points the playback source at the session's audio file and
// tries to fetch the session's timestamp track. A track fetch failure is
// non-fatal: subtitles and precise word jumps degrade to the estimated
// heuristic, playback is never blocked.
func (p *Player) LoadSession(ctx context.Context, session *domain.ListeningSession) error {
	if session == nil {
		err := domain.NewInvalidSelectionError("Please select a session first")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	p.session = session
	p.media.Load(session.AudioFile)

	track, err := p.timestamps.FetchTimestamps(ctx, session.ID)
	if err != nil {
		logger.Get().Warn("Timestamp track unavailable, subtitles disabled",
			zap.Int("session_id", session.ID),
			zap.Error(err),
		)
		track = nil
	}
	p.track = track

	p.state = StateLoaded
	p.duration = 0
	p.currentTime = 0
	p.isPlaying = false
	p.subtitleIndex = -1
	p.lastFragment = ""
	p.renderer.RenderSubtitle("")
	p.renderTransport()

	logger.Get().Info("Session loaded",
		zap.Int("session_id", session.ID),
		zap.String("title", session.Title),
		zap.Bool("timestamps", track != nil),
	)
	return nil
}

// Play requests playback. On no loaded source this is a rejected no-op
// reported to the caller, never a crash.
func (p *Player) Play() error {
	if p.session == nil {
		err := domain.NewInvalidSelectionError("Please load a session first")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	p.media.Play()
	return nil
}

// Pause requests a pause of the loaded source.
func (p *Player) Pause() error {
	if p.session == nil {
		err := domain.NewInvalidSelectionError("Please load a session first")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	p.media.Pause()
	return nil
}

// Seek moves the playback position, clamped to [0, duration].
func (p *Player) Seek(seconds float64) error {
	if p.session == nil {
		err := domain.NewInvalidSelectionError("Please load a session first")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	p.media.Seek(p.clampPosition(seconds))
	return nil
}

// JumpToWord seeks to the start of the given word. With a timestamp track
// the jump is exact; without one it falls back to an estimated fixed
// interval per word. Jumping while paused also starts playback.
func (p *Player) JumpToWord(index int) error {
	if p.session == nil {
		err := domain.NewInvalidSelectionError("Please load a session first")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	if index < 0 {
		err := domain.NewInvalidInputError("Word index must not be negative")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	var target float64
	if p.track != nil {
		if index >= len(p.track) {
			err := domain.NewInvalidInputError("Word index is out of range")
			p.renderer.RenderError(string(err.Code), err.Message)
			return err
		}
		target = p.track[index].StartTime
	} else {
		target = float64(index) * p.secondsPerWord
	}

	p.media.Seek(p.clampPosition(target))
	if !p.isPlaying {
		p.media.Play()
	}
	return nil
}

// ToggleLoop flips loop mode and reports the new setting.
func (p *Player) ToggleLoop() bool {
	p.isLooping = !p.isLooping
	p.renderTransport()
	return p.isLooping
}

// SetPlaybackRate applies a positive speed multiplier. Pitch handling is
// left to the playback primitive.
func (p *Player) SetPlaybackRate(rate float64) error {
	if rate <= 0 {
		err := domain.NewInvalidInputError("Playback rate must be positive")
		p.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	p.rate = rate
	p.media.SetRate(rate)
	p.renderTransport()
	return nil
}

// HandleLoadedMetadata records the media duration once the element reports
// it.
func (p *Player) HandleLoadedMetadata(duration float64) {
	p.duration = duration
	p.renderTransport()
}

// HandlePlay confirms that playback actually started.
func (p *Player) HandlePlay() {
	if p.session == nil {
		// Stray confirmation after the user navigated away; ignore.
		return
	}
	p.isPlaying = true
	p.state = StatePlaying
	p.renderTransport()
}

// HandlePause confirms that playback actually paused.
func (p *Player) HandlePause() {
	if p.session == nil {
		return
	}
	p.isPlaying = false
	p.state = StatePaused
	p.renderTransport()
}

// HandleEnded applies the end-of-track policy: the position always rewinds
// to zero, it never freezes at the last frame. With loop enabled playback
// restarts immediately.
func (p *Player) HandleEnded() {
	if p.session == nil {
		return
	}
	p.media.Seek(0)
	p.currentTime = 0
	if p.isLooping {
		p.media.Play()
	} else {
		p.isPlaying = false
		p.state = StateLoaded
	}
	p.clearSubtitle()
	p.renderTransport()
}

// HandleError surfaces a playback failure. The player stays in a
// recoverable state: the user can reload the session or navigate away.
func (p *Player) HandleError(message string) {
	err := domain.NewPlaybackError(message, nil)
	logger.Get().Warn("Playback error", zap.String("message", message))
	p.renderer.RenderError(string(err.Code), err.Message)
}

// HandleTimeUpdate is driven by the playback primitive's periodic position
// notifications. It recomputes the transport display every tick, then runs
// subtitle resolution. Entry-level subtitle switches are change-triggered to
// avoid redundant re-renders; the sub-phase within an entry is re-evaluated
// every tick because it depends on continuous position, not entry identity.
func (p *Player) HandleTimeUpdate(currentTime float64) {
	if p.session == nil {
		return
	}
	p.currentTime = currentTime
	p.renderTransport()

	if p.track == nil {
		return
	}

	index := resolveEntry(p.track, currentTime)
	if index < 0 {
		// Gap between tracked spans: clear exactly once, not every tick.
		if p.subtitleIndex != -1 {
			p.clearSubtitle()
		}
		return
	}

	fragment := subtitleFragment(&p.track[index], currentTime)
	if index != p.subtitleIndex || fragment != p.lastFragment {
		p.subtitleIndex = index
		p.lastFragment = fragment
		p.renderer.RenderSubtitle(fragment)
	}
}

func (p *Player) clearSubtitle() {
	if p.subtitleIndex == -1 && p.lastFragment == "" {
		return
	}
	p.subtitleIndex = -1
	p.lastFragment = ""
	p.renderer.RenderSubtitle("")
}

func (p *Player) clampPosition(seconds float64) float64 {
	if p.duration > 0 {
		return util.Clamp(seconds, 0, p.duration)
	}
	if seconds < 0 {
		return 0
	}
	return seconds
}

func (p *Player) renderTransport() {
	title := ""
	if p.session != nil {
		title = p.session.Title
	}
	p.renderer.RenderPlayerTransport(render.TransportView{
		SessionTitle: title,
		CurrentTime:  p.currentTime,
		Duration:     p.duration,
		IsPlaying:    p.isPlaying,
		IsLooping:    p.isLooping,
		Rate:         p.rate,
	})
}
