package player

import (
	"context"
	"errors"
	"os"
	"testing"

	"vocab-coach/internal/config"
	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"
	"vocab-coach/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// fakeMedia records the commands the player issues toward the media element.
type fakeMedia struct {
	loads  []string
	plays  int
	pauses int
	seeks  []float64
	rates  []float64
}

func (m *fakeMedia) Load(src string) { m.loads = append(m.loads, src) }
func (m *fakeMedia) Play()           { m.plays++ }
func (m *fakeMedia) Pause()          { m.pauses++ }

func (m *fakeMedia) Seek(seconds float64) { m.seeks = append(m.seeks, seconds) }
func (m *fakeMedia) SetRate(rate float64) { m.rates = append(m.rates, rate) }

type fakeTrackSource struct {
	track []domain.TimestampEntry
	err   error
	calls int
}

func (s *fakeTrackSource) FetchTimestamps(_ context.Context, _ int) ([]domain.TimestampEntry, error) {
	s.calls++
	return s.track, s.err
}

func testSession() *domain.ListeningSession {
	return &domain.ListeningSession{
		ID:        3,
		Title:     "Session 3",
		AudioFile: "assets/audio/listening/session_3.mp3",
		Words: []domain.SessionWord{
			{Word: "meticulous"}, {Word: "robust"}, {Word: "terse"}, {Word: "lucid"},
		},
	}
}

func newTestPlayer(track []domain.TimestampEntry, trackErr error) (*Player, *fakeMedia, *render.Recorder) {
	media := &fakeMedia{}
	recorder := render.NewRecorder()
	p := NewPlayer(media, &fakeTrackSource{track: track, err: trackErr}, recorder, 25)
	return p, media, recorder
}

func TestPlayer_PlayWithoutSessionIsRejectedNoOp(t *testing.T) {
	p, media, _ := newTestPlayer(nil, nil)

	err := p.Play()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidSelection, domainErr.Code)
	assert.Zero(t, media.plays)
	assert.Equal(t, StateUnloaded, p.State())
}

func TestPlayer_LoadSessionLoadsSourceAndTrack(t *testing.T) {
	p, media, _ := newTestPlayer(testTrack(), nil)

	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	assert.Equal(t, StateLoaded, p.State())
	require.Len(t, media.loads, 1)
	assert.Equal(t, "assets/audio/listening/session_3.mp3", media.loads[0])
}

func TestPlayer_TimestampFetchFailureDegradesGracefully(t *testing.T) {
	p, media, _ := newTestPlayer(nil, errors.New("boom"))

	// Playback is never blocked by a missing subtitle track.
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	assert.Equal(t, StateLoaded, p.State())
	require.NoError(t, p.Play())
	assert.Equal(t, 1, media.plays)

	// Word jumps fall back to the estimated interval.
	require.NoError(t, p.JumpToWord(3))
	require.NotEmpty(t, media.seeks)
	assert.Equal(t, 75.0, media.seeks[len(media.seeks)-1])
}

func TestPlayer_PlaybackStateFollowsConfirmedEventsOnly(t *testing.T) {
	p, _, recorder := newTestPlayer(nil, nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))

	// The play request alone must not flip the flag; the element may have
	// rejected it.
	require.NoError(t, p.Play())
	assert.Equal(t, StateLoaded, p.State())

	p.HandlePlay()
	assert.Equal(t, StatePlaying, p.State())
	frame, ok := recorder.Last(render.FrameTransport)
	require.True(t, ok)
	assert.True(t, frame.View.(render.TransportView).IsPlaying)

	p.HandlePause()
	assert.Equal(t, StatePaused, p.State())
	frame, _ = recorder.Last(render.FrameTransport)
	assert.False(t, frame.View.(render.TransportView).IsPlaying)
}

func TestPlayer_StrayEventWithoutSessionIsIgnored(t *testing.T) {
	p, _, recorder := newTestPlayer(nil, nil)

	p.HandlePlay()
	p.HandleTimeUpdate(12)
	p.HandleEnded()
	assert.Equal(t, StateUnloaded, p.State())
	assert.Empty(t, recorder.Frames())
}

func TestPlayer_SeekClampsToDuration(t *testing.T) {
	p, media, _ := newTestPlayer(nil, nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	p.HandleLoadedMetadata(100)

	require.NoError(t, p.Seek(150))
	assert.Equal(t, 100.0, media.seeks[len(media.seeks)-1])

	require.NoError(t, p.Seek(-5))
	assert.Equal(t, 0.0, media.seeks[len(media.seeks)-1])
}

func TestPlayer_JumpToWordExactWithTimestamps(t *testing.T) {
	p, media, _ := newTestPlayer(testTrack(), nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	p.HandleLoadedMetadata(100)

	require.NoError(t, p.JumpToWord(1))
	assert.Equal(t, 5.0, media.seeks[len(media.seeks)-1])

	err := p.JumpToWord(7)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}

func TestPlayer_JumpWhilePausedStartsPlayback(t *testing.T) {
	p, media, _ := newTestPlayer(testTrack(), nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))

	require.NoError(t, p.JumpToWord(0))
	assert.Equal(t, 1, media.plays)

	// Already playing: no second play request.
	p.HandlePlay()
	require.NoError(t, p.JumpToWord(1))
	assert.Equal(t, 1, media.plays)
}

func TestPlayer_EndedRewindsAndLoopsWhenEnabled(t *testing.T) {
	p, media, _ := newTestPlayer(nil, nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	p.HandlePlay()

	assert.True(t, p.ToggleLoop())
	p.HandleEnded()
	assert.Equal(t, 0.0, media.seeks[len(media.seeks)-1])
	assert.Equal(t, 1, media.plays)

	// Loop off: end of track pauses and rewinds, it never freezes at the
	// last frame.
	assert.False(t, p.ToggleLoop())
	p.HandleEnded()
	assert.Equal(t, 0.0, media.seeks[len(media.seeks)-1])
	assert.Equal(t, StateLoaded, p.State())
	assert.Equal(t, 1, media.plays)
}

func TestPlayer_SetPlaybackRate(t *testing.T) {
	p, media, _ := newTestPlayer(nil, nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))

	require.NoError(t, p.SetPlaybackRate(1.25))
	assert.Equal(t, []float64{1.25}, media.rates)

	err := p.SetPlaybackRate(0)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}

func TestPlayer_SubtitleSwitchesAreChangeTriggered(t *testing.T) {
	p, _, recorder := newTestPlayer(testTrack(), nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	recorder.Drain()

	// Several ticks inside the same entry and phase: one subtitle render.
	p.HandleTimeUpdate(0.1)
	p.HandleTimeUpdate(0.2)
	p.HandleTimeUpdate(0.3)
	assert.Equal(t, 1, recorder.Count(render.FrameSubtitle))

	// Crossing into the next entry emits exactly one more.
	p.HandleTimeUpdate(4.9)
	before := recorder.Count(render.FrameSubtitle)
	p.HandleTimeUpdate(5.0)
	assert.Equal(t, before+1, recorder.Count(render.FrameSubtitle))

	frame, ok := recorder.Last(render.FrameSubtitle)
	require.True(t, ok)
	assert.Contains(t, frame.View.(render.SubtitleView).Fragment, "robust")
}

func TestPlayer_SubtitleClearedExactlyOncePastTrack(t *testing.T) {
	p, _, recorder := newTestPlayer(testTrack(), nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))

	p.HandleTimeUpdate(8.0)
	recorder.Drain()

	p.HandleTimeUpdate(9.5)
	p.HandleTimeUpdate(9.6)
	p.HandleTimeUpdate(9.7)

	assert.Equal(t, 1, recorder.Count(render.FrameSubtitle))
	frame, _ := recorder.Last(render.FrameSubtitle)
	assert.Empty(t, frame.View.(render.SubtitleView).Fragment)
}

func TestPlayer_SubPhaseReRendersWithinEntry(t *testing.T) {
	p, _, recorder := newTestPlayer(testTrack(), nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	recorder.Drain()

	// Entry 0 spans [0,5): the headword phase ends at 0.75.
	p.HandleTimeUpdate(0.5)
	p.HandleTimeUpdate(0.8)
	assert.Equal(t, 2, recorder.Count(render.FrameSubtitle))

	frame, _ := recorder.Last(render.FrameSubtitle)
	assert.Contains(t, frame.View.(render.SubtitleView).Fragment, "careful, thorough")
}

func TestPlayer_TimeUpdateRendersTransportEveryTick(t *testing.T) {
	p, _, recorder := newTestPlayer(nil, nil)
	require.NoError(t, p.LoadSession(context.Background(), testSession()))
	recorder.Drain()

	p.HandleTimeUpdate(1)
	p.HandleTimeUpdate(2)
	p.HandleTimeUpdate(3)
	assert.Equal(t, 3, recorder.Count(render.FrameTransport))

	frame, _ := recorder.Last(render.FrameTransport)
	assert.Equal(t, 3.0, frame.View.(render.TransportView).CurrentTime)
}
