package render

import (
	"fmt"
	"sort"

	"github.com/youruser/agentcard/internal/card"
)

// Strategy draws one side of a card. It must be deterministic in its inputs.
type Strategy func(f *Frame, data card.AgentCardData) error

// Painter draws a procedural background.
type Painter func(f *Frame)

// SideSpec describes how a template draws one side. A zero SideSpec means
// the side is not supported.
type SideSpec struct {
	Draw Strategy
	// Candidates are raster backgrounds tried in order.
	Candidates []string
	// Background is the procedural background, used directly when there
	// are no candidates and as the fallback when none of them loads.
	Background Painter
}

func (s SideSpec) supported() bool { return s.Draw != nil }

// Template is a named card design. Templates hold no mutable state.
type Template struct {
	ID     string
	Name   string
	Design Size
	Front  SideSpec
	Back   SideSpec
}

func (t Template) Spec(side card.Side) (SideSpec, bool) {
	var s SideSpec
	switch side {
	case card.Front:
		s = t.Front
	case card.Back:
		s = t.Back
	}
	return s, s.supported()
}

func (t Template) Supports(side card.Side) bool {
	_, ok := t.Spec(side)
	return ok
}

func (t Template) Sides() []card.Side {
	var out []card.Side
	for _, s := range []card.Side{card.Front, card.Back} {
		if t.Supports(s) {
			out = append(out, s)
		}
	}
	return out
}

// BackgroundCandidates returns a copy of the side's raster candidates.
func (t Template) BackgroundCandidates(side card.Side) []string {
	s, _ := t.Spec(side)
	return append([]string(nil), s.Candidates...)
}

// Registry is a read-only id -> template table, built once at startup.
type Registry struct {
	templates map[string]Template
	ids       []string
}

// NewRegistry validates and freezes templates. A side that is supported but
// has no procedural background is an authoring defect and is rejected here,
// long before any render could exhaust its candidates.
func NewRegistry(templates ...Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("render: template id is required")
		}
		if _, exists := r.templates[t.ID]; exists {
			return nil, fmt.Errorf("render: template %q already registered", t.ID)
		}
		if t.Design.W <= 0 || t.Design.H <= 0 {
			return nil, fmt.Errorf("render: template %q has no design size", t.ID)
		}
		if len(t.Sides()) == 0 {
			return nil, fmt.Errorf("render: template %q supports no sides", t.ID)
		}
		for _, side := range t.Sides() {
			s, _ := t.Spec(side)
			if s.Background == nil {
				return nil, fmt.Errorf("render: template %q %s side has no procedural background", t.ID, side)
			}
		}
		t.Front.Candidates = append([]string(nil), t.Front.Candidates...)
		t.Back.Candidates = append([]string(nil), t.Back.Candidates...)
		r.templates[t.ID] = t
		r.ids = append(r.ids, t.ID)
	}
	sort.Strings(r.ids)
	return r, nil
}

// MustNewRegistry panics on an invalid template set. Useful for init-time wiring.
func MustNewRegistry(templates ...Template) *Registry {
	r, err := NewRegistry(templates...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Get(id string) (Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return t, nil
}

// Lookup resolves a template and side, failing with ErrUnknownTemplate or
// ErrUnsupportedSide.
func (r *Registry) Lookup(id string, side card.Side) (Template, SideSpec, error) {
	t, err := r.Get(id)
	if err != nil {
		return Template{}, SideSpec{}, err
	}
	s, ok := t.Spec(side)
	if !ok {
		return Template{}, SideSpec{}, fmt.Errorf("%w: %q has no %s side", ErrUnsupportedSide, id, side)
	}
	return t, s, nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.templates[id]
	return ok
}

// IDs returns the registered template ids, sorted.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// List returns the registered templates sorted by id.
func (r *Registry) List() []Template {
	out := make([]Template, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.templates[id])
	}
	return out
}
