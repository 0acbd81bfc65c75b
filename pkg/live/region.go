// Package live redraws a renderable in place: progress bars, spinners and
// status lines that update without scrolling the terminal.
//
// A Region owns its console for as long as it runs. Start takes the
// console's Exclusive and returns the leased context; output printed through
// that context appears above the region, everything else waits for Stop.
package live

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/inkwell/pkg/config"
	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/segment"
)

// DefaultRefreshInterval is four redraws a second
const DefaultRefreshInterval = 250 * time.Millisecond

type options struct {
	refresh     time.Duration
	autoRefresh bool
	transient   bool
	overflow    VerticalOverflow
	edge        Edge
}

// Option configures a Region
type Option func(*options)

// WithRefreshPerSecond sets how often the background task redraws
func WithRefreshPerSecond(rps float64) Option {
	return func(o *options) {
		if rps > 0 {
			o.refresh = time.Duration(float64(time.Second) / rps)
		}
	}
}

// WithAutoRefresh turns the background redraw task on or off. Without it
// the region only redraws on Refresh and Update.
func WithAutoRefresh(auto bool) Option {
	return func(o *options) {
		o.autoRefresh = auto
	}
}

// WithTransient clears the region on Stop instead of leaving the last frame
func WithTransient(transient bool) Option {
	return func(o *options) {
		o.transient = transient
	}
}

// WithVerticalOverflow sets the policy for frames taller than the terminal
func WithVerticalOverflow(v VerticalOverflow) Option {
	return func(o *options) {
		o.overflow = v
	}
}

// WithOverflowEdge sets which side of a tall frame is cut
func WithOverflowEdge(e Edge) Option {
	return func(o *options) {
		o.edge = e
	}
}

// WithConfig applies the live section of the configuration. Values that
// fail to parse keep their defaults; config.Validate reports them.
func WithConfig(cfg config.Live) Option {
	return func(o *options) {
		o.refresh = cfg.RefreshInterval()
		o.transient = cfg.Transient
		if v, err := ParseVerticalOverflow(cfg.VerticalOverflow); err == nil {
			o.overflow = v
		}
		if e, err := ParseEdge(cfg.OverflowEdge); err == nil {
			o.edge = e
		}
	}
}

// Region redraws a renderable in place on a console
type Region struct {
	console *console.Console
	opts    options

	// mu guards the frame state and serializes every write the region makes
	mu         sync.Mutex
	renderable render.Renderable
	shape      int
	started    bool
	ctx        context.Context
	release    func()
	cancel     context.CancelFunc
	done       chan struct{}
	stopOnce   *sync.Once
}

// New creates a region showing r. It draws nothing until Start.
func New(c *console.Console, r render.Renderable, opts ...Option) *Region {
	cfg := options{
		refresh:     DefaultRefreshInterval,
		autoRefresh: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Region{console: c, opts: cfg, renderable: r}
}

// Start takes over the console and draws the first frame. The returned
// context carries the console lease: pass it to console.PrintContext to
// print above the region. A second Start on the same console, from this or
// any other region, fails with ErrLiveActive.
func (r *Region) Start(ctx context.Context) (context.Context, error) {
	logger := logging.GetLogger("live")

	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return nil, errors.New(errors.ErrLiveActive, "live region already started")
	}
	r.mu.Unlock()

	if err := r.console.AttachLive(r); err != nil {
		return nil, err
	}
	sessionCtx, cancel := context.WithCancel(ctx)
	leased, release, err := r.console.Exclusive().Acquire(sessionCtx)
	if err != nil {
		cancel()
		r.console.DetachLive(r)
		return nil, err
	}

	r.mu.Lock()
	r.started = true
	r.ctx = leased
	r.release = release
	r.cancel = cancel
	r.stopOnce = &sync.Once{}
	r.shape = 0
	r.mu.Unlock()

	if err := r.console.ShowCursor(leased, false); err != nil {
		logger.Debug().Err(err).Msg("failed to hide cursor")
	}
	if err := r.Refresh(); err != nil {
		logger.Debug().Err(err).Msg("initial refresh failed")
	}

	if r.opts.autoRefresh && r.console.IsTerminal() {
		r.mu.Lock()
		r.done = make(chan struct{})
		go r.refreshLoop(leased, r.done)
		r.mu.Unlock()
	}

	logger.Debug().
		Bool("transient", r.opts.transient).
		Dur("refresh", r.opts.refresh).
		Str("overflow", r.opts.overflow.String()).
		Msg("Live region started")
	return leased, nil
}

// Context returns the leased context of a running region, or nil. The
// context is cancelled by Stop.
func (r *Region) Context() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctx
}

// IsStarted reports whether the region is running
func (r *Region) IsStarted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

func (r *Region) refreshLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	logger := logging.GetLogger("live")
	ticker := time.NewTicker(r.opts.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(); err != nil {
				logger.Debug().Err(err).Msg("refresh failed")
			}
		}
	}
}

// Update replaces the renderable and redraws
func (r *Region) Update(renderable render.Renderable) error {
	r.mu.Lock()
	r.renderable = renderable
	r.mu.Unlock()
	return r.Refresh()
}

// Refresh redraws the current renderable. On a non-terminal console
// nothing is drawn until Stop.
func (r *Region) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started || !r.console.IsTerminal() {
		return nil
	}
	return r.console.WriteRaw(r.ctx, r.positionCursor()+r.frame())
}

// WriteAbove implements console.Hook: it clears the region, writes output
// and draws the region again below it.
func (r *Region) WriteAbove(output string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		// stopping; the lease is about to be released
		return r.console.WriteRaw(context.Background(), output)
	}
	if !r.console.IsTerminal() {
		return r.console.WriteRaw(r.ctx, output)
	}
	if output != "" && !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return r.console.WriteRaw(r.ctx, r.positionCursor()+output+r.frame())
}

// Stop ends the session. The background task is stopped and waited for
// before the last frame is drawn, or cleared when the region is transient.
// The cursor is shown again and the console released. Calling Stop more
// than once is safe.
func (r *Region) Stop() error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	once := r.stopOnce
	r.mu.Unlock()

	var err error
	once.Do(func() { err = r.stop() })
	return err
}

func (r *Region) stop() error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	// Cancelling the session context also invalidates it for writers that
	// kept it past Stop.
	cancel()
	if done != nil {
		<-done
	}

	r.mu.Lock()
	var out string
	switch {
	case !r.console.IsTerminal():
		if !r.opts.transient {
			out = r.frame()
			if out != "" {
				out += "\n"
			}
		}
	case r.opts.transient:
		out = r.positionCursor()
	default:
		out = r.positionCursor()
		if f := r.frame(); f != "" {
			out += f + "\n"
		}
	}
	leased, release := r.ctx, r.release
	err := r.console.WriteRaw(leased, out)
	r.shape = 0
	r.started = false
	r.ctx = nil
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cerr := r.console.ShowCursor(leased, true); err == nil {
		err = cerr
	}
	r.console.DetachLive(r)
	release()

	logger := logging.GetLogger("live")
	logger.Debug().Bool("transient", r.opts.transient).Msg("Live region stopped")
	return err
}

// frame renders the current renderable, records its height and returns the
// encoded lines without a trailing newline. Callers hold mu.
func (r *Region) frame() string {
	if r.renderable == nil {
		r.shape = 0
		return ""
	}
	ctx := r.console.Context()
	lines := render.RenderLines(ctx, r.renderable, ctx.Width, false)
	lines = fitHeight(ctx, lines, r.console.Height(), r.opts.overflow, r.opts.edge)
	r.shape = len(lines)

	var segs segment.Segments
	for i, line := range lines {
		if i > 0 {
			segs = append(segs, segment.NewLine())
		}
		segs = append(segs, line...)
	}
	return r.console.Encode(segs)
}

// positionCursor returns the sequence that erases the previous frame and
// leaves the cursor at the start of its first line. Callers hold mu.
func (r *Region) positionCursor() string {
	if r.shape == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(ansi.EraseEntireLine)
	for i := 1; i < r.shape; i++ {
		sb.WriteString(ansi.CursorUp(1))
		sb.WriteString(ansi.EraseEntireLine)
	}
	return sb.String()
}
