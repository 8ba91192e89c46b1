package render

// FrameKind identifies which render call produced a frame.
type FrameKind string

const (
	FrameCategoryList FrameKind = "categoryList"
	FrameQuestion     FrameKind = "question"
	FrameFeedback     FrameKind = "feedback"
	FrameCheckpoint   FrameKind = "checkpoint"
	FrameFinalResults FrameKind = "finalResults"
	FrameTransport    FrameKind = "transport"
	FrameSubtitle     FrameKind = "subtitle"
	FrameError        FrameKind = "error"
)

// Frame is one recorded render call.
type Frame struct {
	Kind FrameKind   `json:"kind"`
	View interface{} `json:"view"`
}

// ErrorView is the payload of an error frame.
type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SubtitleView is the payload of a subtitle frame. An empty Fragment means
// the subtitle area was cleared.
type SubtitleView struct {
	Fragment string `json:"fragment"`
}

// Recorder is a Renderer that records frames in call order. The HTTP adapter
// drains it to answer each command with the directives the page must apply;
// tests inspect it directly.
type Recorder struct {
	frames []Frame
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RenderCategoryList(categories []CategoryView) {
	r.frames = append(r.frames, Frame{Kind: FrameCategoryList, View: categories})
}

func (r *Recorder) RenderQuestion(question QuestionView) {
	r.frames = append(r.frames, Frame{Kind: FrameQuestion, View: question})
}

func (r *Recorder) RenderAnswerFeedback(feedback FeedbackView) {
	r.frames = append(r.frames, Frame{Kind: FrameFeedback, View: feedback})
}

func (r *Recorder) RenderCheckpoint(checkpoint CheckpointView) {
	r.frames = append(r.frames, Frame{Kind: FrameCheckpoint, View: checkpoint})
}

func (r *Recorder) RenderFinalResults(results FinalResultsView) {
	r.frames = append(r.frames, Frame{Kind: FrameFinalResults, View: results})
}

func (r *Recorder) RenderPlayerTransport(transport TransportView) {
	r.frames = append(r.frames, Frame{Kind: FrameTransport, View: transport})
}

func (r *Recorder) RenderSubtitle(fragment string) {
	r.frames = append(r.frames, Frame{Kind: FrameSubtitle, View: SubtitleView{Fragment: fragment}})
}

func (r *Recorder) RenderError(code string, message string) {
	r.frames = append(r.frames, Frame{Kind: FrameError, View: ErrorView{Code: code, Message: message}})
}

// Frames returns the recorded frames without draining them.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Drain returns the recorded frames and resets the recorder.
func (r *Recorder) Drain() []Frame {
	frames := r.frames
	r.frames = nil
	return frames
}

// Last returns the most recent frame of the given kind, or false.
func (r *Recorder) Last(kind FrameKind) (Frame, bool) {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if r.frames[i].Kind == kind {
			return r.frames[i], true
		}
	}
	return Frame{}, false
}

// Count returns how many frames of the given kind were recorded.
func (r *Recorder) Count(kind FrameKind) int {
	n := 0
	for _, f := range r.frames {
		if f.Kind == kind {
			n++
		}
	}
	return n
}
