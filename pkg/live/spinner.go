package live

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
	"github.com/arthur-debert/inkwell/pkg/style"
)

// Animation is a named sequence of spinner frames
type Animation struct {
	Frames   []string
	Interval time.Duration
	// ASCII marks animations that are safe without Unicode
	ASCII bool
}

var animations = map[string]Animation{
	"dots":       {Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, Interval: 80 * time.Millisecond},
	"dots2":      {Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}, Interval: 80 * time.Millisecond},
	"line":       {Frames: []string{"-", "\\", "|", "/"}, Interval: 130 * time.Millisecond, ASCII: true},
	"simpleDots": {Frames: []string{".  ", ".. ", "...", "   "}, Interval: 400 * time.Millisecond, ASCII: true},
	"arc":        {Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"}, Interval: 100 * time.Millisecond},
	"circle":     {Frames: []string{"◡", "⊙", "◠"}, Interval: 120 * time.Millisecond},
	"bounce":     {Frames: []string{"⠁", "⠂", "⠄", "⠂"}, Interval: 120 * time.Millisecond},
}

// asciiFallback replaces Unicode animations on terminals that cannot show
// them
const asciiFallback = "line"

// Animations returns the known animation names in sorted order
func Animations() []string {
	names := make([]string, 0, len(animations))
	for name := range animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupAnimation returns the named animation
func LookupAnimation(name string) (Animation, error) {
	a, ok := animations[name]
	if !ok {
		return Animation{}, errors.Newf(errors.ErrInvalidInput, "unknown spinner %q", name).
			WithDetail("name", name)
	}
	return a, nil
}

// Spinner is a renderable showing one animation frame followed by text.
// Advance moves to the next frame; it is safe to call while another
// goroutine renders.
type Spinner struct {
	Name      string
	Animation Animation
	Text      *render.Text
	Style     style.Style

	frame atomic.Int64
}

// NewSpinner creates a spinner for a named animation. text is markup whose
// tag names are looked up in r.
func NewSpinner(name, text string, r style.Resolver) (*Spinner, error) {
	a, err := LookupAnimation(name)
	if err != nil {
		return nil, err
	}
	sp := &Spinner{Name: name, Animation: a}
	if text != "" {
		if sp.Text, err = render.FromMarkup(text, r); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

// Interval is how long each frame should stay on screen
func (s *Spinner) Interval() time.Duration {
	if s.Animation.Interval <= 0 {
		return 100 * time.Millisecond
	}
	return s.Animation.Interval
}

// Advance moves to the next frame
func (s *Spinner) Advance() {
	s.frame.Add(1)
}

// FrameIndex returns the number of frames advanced so far
func (s *Spinner) FrameIndex() int {
	return int(s.frame.Load())
}

// current returns the glyph to draw for ctx
func (s *Spinner) current(ctx *render.Context) string {
	a := s.Animation
	if !ctx.Unicode && !a.ASCII {
		a = animations[asciiFallback]
	}
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[s.FrameIndex()%len(a.Frames)]
}

func (s *Spinner) Measure(ctx *render.Context, maxWidth int) render.Measurement {
	n := ctx.CellLen(s.current(ctx))
	if s.Text == nil || s.Text.Len() == 0 {
		return render.Measurement{Minimum: n, Maximum: n}
	}
	return render.Measurement{Minimum: n, Maximum: n + 1 + ctx.CellLen(s.Text.Plain())}
}

// Render draws the frame and the text on one line, cut with an ellipsis
// when it does not fit
func (s *Spinner) Render(ctx *render.Context, maxWidth int) segment.Segments {
	if maxWidth < 1 {
		return nil
	}
	frameStyle := s.Style
	if frameStyle.IsNull() {
		frameStyle = ctx.Style("spinner")
	}
	line := segment.Line{segment.New(s.current(ctx), frameStyle)}

	if s.Text != nil && s.Text.Len() > 0 {
		line = append(line, segment.Plain(" "))
		for _, span := range s.Text.Spans() {
			line = append(line, segment.New(span.Text, span.Style))
		}
	}

	fitted := render.Ellipsis.Fit(line, maxWidth, ctx)
	out := segment.Segments{}
	if len(fitted) > 0 {
		out = append(out, fitted[0]...)
	}
	return segment.Merge(append(out, segment.NewLine()))
}
