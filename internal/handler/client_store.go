// Package handler adapts user gestures and media-element events arriving
// over HTTP into engine method calls, and ships the resulting render frames
// and media directives back to the page. It carries no domain logic.
package handler

import (
	"sync"

	"vocab-coach/internal/dto"
	"vocab-coach/internal/player"
	"vocab-coach/internal/quiz"
	"vocab-coach/internal/render"
	"vocab-coach/internal/util"

	"vocab-coach/internal/domain"
)

// DirectiveQueue implements player.MediaController by queueing commands for
// the browser's media element instead of executing them locally.
type DirectiveQueue struct {
	directives []dto.MediaDirective
}

func (q *DirectiveQueue) Load(src string) {
	q.directives = append(q.directives, dto.MediaDirective{Command: "load", Src: src})
}

func (q *DirectiveQueue) Play() {
	q.directives = append(q.directives, dto.MediaDirective{Command: "play"})
}

func (q *DirectiveQueue) Pause() {
	q.directives = append(q.directives, dto.MediaDirective{Command: "pause"})
}

func (q *DirectiveQueue) Seek(seconds float64) {
	q.directives = append(q.directives, dto.MediaDirective{Command: "seek", Value: seconds})
}

func (q *DirectiveQueue) SetRate(rate float64) {
	q.directives = append(q.directives, dto.MediaDirective{Command: "rate", Value: rate})
}

// Drain returns the queued directives and resets the queue.
func (q *DirectiveQueue) Drain() []dto.MediaDirective {
	directives := q.directives
	q.directives = nil
	return directives
}

// Client bundles one browser tab's quiz engine and player instance. Both
// engines are run-to-completion command machines; the client mutex is the
// server-side stand-in for the browser's single-threaded event loop, so
// gesture commands and media callbacks may interleave but never overlap.
type Client struct {
	ID string

	mu       sync.Mutex
	Engine   *quiz.Engine
	Player   *player.Player
	recorder *render.Recorder
	media    *DirectiveQueue
}

// Do runs one command under the client lock and returns the render frames
// and media directives it produced.
func (c *Client) Do(command func() error) ([]render.Frame, []dto.MediaDirective, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := command()
	return c.recorder.Drain(), c.media.Drain(), err
}

// ClientStore creates and looks up per-client engine instances. Multiple
// concurrent quiz sessions (e.g. tabs) get fully independent instances; no
// state is shared beyond the immutable category and catalog data.
type ClientStore struct {
	mu      sync.Mutex
	clients map[string]*Client

	categories     []*domain.Category
	timestamps     player.TimestampSource
	secondsPerWord float64
}

func NewClientStore(categories []*domain.Category, timestamps player.TimestampSource, secondsPerWord float64) *ClientStore {
	return &ClientStore{
		clients:        make(map[string]*Client),
		categories:     categories,
		timestamps:     timestamps,
		secondsPerWord: secondsPerWord,
	}
}

// Create builds a fresh client with its own engines and recorder.
func (s *ClientStore) Create() *Client {
	recorder := render.NewRecorder()
	media := &DirectiveQueue{}
	client := &Client{
		ID:       util.NewULID(),
		Engine:   quiz.NewEngine(s.categories, recorder),
		Player:   player.NewPlayer(media, s.timestamps, recorder, s.secondsPerWord),
		recorder: recorder,
		media:    media,
	}

	s.mu.Lock()
	s.clients[client.ID] = client
	s.mu.Unlock()
	return client
}

// Get returns the client with the given ID.
func (s *ClientStore) Get(id string) (*Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients[id]
	return client, ok
}
