package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/youruser/agentcard/internal/card"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/metrics"
	"github.com/youruser/agentcard/internal/tracer"
)

type State int

const (
	StateIdle State = iota
	StateRendering
	StateReady
)

func (s State) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// Input is everything a render depends on. Two equal inputs produce
// pixel-identical images.
type Input struct {
	Agent      card.AgentCardData
	TemplateID string
	Side       card.Side
	Width      int
	Height     int
}

// Result is the handle to one render. It is safe to share between goroutines.
type Result struct {
	input Input
	token uint64
	done  chan struct{}

	mu     sync.Mutex
	img    image.Image
	report Report
	err    error
}

func newResult(in Input, token uint64) *Result {
	return &Result{input: in, token: token, done: make(chan struct{})}
}

func (r *Result) Input() Input { return r.input }

// Done is closed once the render has settled, successfully or not.
func (r *Result) Done() <-chan struct{} { return r.done }

// Wait blocks until the render settles or ctx ends and returns the render's error.
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Result) Ready() bool {
	select {
	case <-r.done:
		return r.Err() == nil
	default:
		return false
	}
}

// Err is nil while the render is in flight.
func (r *Result) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Image returns the finished surface. Callers must not modify it.
func (r *Result) Image() (image.Image, error) {
	if !r.Ready() {
		return nil, ErrNotReady
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img, nil
}

func (r *Result) Report() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.report.clone()
}

func (r *Result) complete(img image.Image, rep Report, err error) {
	r.mu.Lock()
	r.img, r.report, r.err = img, rep, err
	r.mu.Unlock()
	close(r.done)
}

// Orchestrator tracks the card a host is showing. Each change of template,
// side, size or agent data starts a new render on a fresh surface; renders
// are not cancelled, but a render that is no longer current never commits.
type Orchestrator struct {
	reg    *Registry
	assets imagepkg.Source
	log    logger.Logger

	mu      sync.Mutex
	token   uint64
	state   State
	last    Input
	hasLast bool
	current *Result
	err     error
}

func NewOrchestrator(reg *Registry, assets imagepkg.Source, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Orchestrator{reg: reg, assets: assets, log: log}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Ready reports whether the current render finished and may be exported.
func (o *Orchestrator) Ready() bool { return o.State() == StateReady }

// Busy is the "rendering in progress" signal used to disable export.
func (o *Orchestrator) Busy() bool { return o.State() == StateRendering }

// Err is the error that sent the orchestrator back to idle, if any.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func (o *Orchestrator) Current() *Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Update starts a render for in unless in equals the input of the current
// render. Configuration errors (unknown template, unsupported side, bad
// size, missing name) are returned immediately and leave the orchestrator
// idle. ctx bounds the render's asset loads.
func (o *Orchestrator) Update(ctx context.Context, in Input) (*Result, error) {
	in.Agent = in.Agent.Normalize()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.hasLast && in == o.last && o.state != StateIdle {
		return o.current, nil
	}

	tmpl, spec, err := o.validate(in)
	if err != nil {
		o.token++
		o.state = StateIdle
		o.err = err
		o.current = nil
		o.hasLast = false
		return nil, err
	}

	o.token++
	res := newResult(in, o.token)
	o.state = StateRendering
	o.err = nil
	o.last, o.hasLast = in, true
	o.current = res
	metrics.RendersInFlight.Inc()

	go o.run(ctx, tmpl, spec, res)
	return res, nil
}

// Render is Update followed by Wait.
func (o *Orchestrator) Render(ctx context.Context, in Input) (*Result, error) {
	res, err := o.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := res.Wait(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (o *Orchestrator) validate(in Input) (Template, SideSpec, error) {
	if in.Width <= 0 || in.Height <= 0 {
		return Template{}, SideSpec{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, in.Width, in.Height)
	}
	if err := in.Agent.Validate(); err != nil {
		return Template{}, SideSpec{}, err
	}
	return o.reg.Lookup(in.TemplateID, in.Side)
}

func (o *Orchestrator) isCurrent(token uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.token == token
}

func (o *Orchestrator) run(ctx context.Context, tmpl Template, spec SideSpec, res *Result) {
	defer metrics.RendersInFlight.Dec()
	in := res.input
	start := time.Now()

	ctx, span := tracer.StartSpan(ctx, "render.card")
	defer span.End()
	span.SetAttributes(
		tracer.StringAttr("template", in.TemplateID),
		tracer.StringAttr("side", in.Side.String()),
		tracer.IntAttr("width", in.Width),
		tracer.IntAttr("height", in.Height),
	)

	img, rep, err := o.draw(ctx, tmpl, spec, res)

	o.mu.Lock()
	defer o.mu.Unlock()

	log := o.log.With(map[string]interface{}{
		"template": in.TemplateID,
		"side":     in.Side.String(),
	})
	if o.token != res.token || errors.Is(err, ErrSuperseded) {
		metrics.RendersTotal.WithLabelValues(in.TemplateID, in.Side.String(), metrics.OutcomeSuperseded).Inc()
		log.Debug("stale render discarded", nil)
		res.complete(nil, rep, ErrSuperseded)
		return
	}
	if err != nil {
		tracer.RecordError(span, err)
		metrics.RendersTotal.WithLabelValues(in.TemplateID, in.Side.String(), metrics.OutcomeFailed).Inc()
		log.WithError(err).Error("render failed", nil)
		o.state = StateIdle
		o.err = err
		res.complete(nil, rep, err)
		return
	}

	tracer.SetOK(span)
	metrics.RendersTotal.WithLabelValues(in.TemplateID, in.Side.String(), metrics.OutcomeReady).Inc()
	metrics.RenderDuration.WithLabelValues(in.TemplateID).Observe(time.Since(start).Seconds())
	log.Debug("render ready", map[string]interface{}{
		"contact_lines": len(rep.ContactLines),
		"background":    rep.Background,
		"photo":         string(rep.Photo),
	})
	o.state = StateReady
	res.complete(img, rep, nil)
}

func (o *Orchestrator) draw(ctx context.Context, tmpl Template, spec SideSpec, res *Result) (img image.Image, rep Report, err error) {
	in := res.input
	report := &Report{Template: tmpl.ID, Side: in.Side, Photo: PhotoNone}
	f := newFrame(ctx, in.Width, in.Height, tmpl.Design, spec, o.assets, o.log, report,
		func() bool { return o.isCurrent(res.token) })
	defer f.release()

	defer func() {
		if r := recover(); r != nil {
			img, rep, err = nil, report.clone(), fmt.Errorf("%w: panic: %v", ErrRenderFailed, r)
		}
	}()

	if err := spec.Draw(f, in.Agent); err != nil {
		return nil, report.clone(), fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if err := f.settle(); err != nil {
		if errors.Is(err, ErrSuperseded) {
			return nil, report.clone(), err
		}
		return nil, report.clone(), fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return f.dc.Image(), report.clone(), nil
}
