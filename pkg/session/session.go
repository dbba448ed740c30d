// Package session holds the editable state of one generation setup: the
// placeholder snapshot and its grouping, the selected group, and the ordered
// list of input configurations. Every mutation re-evaluates whether
// generation is allowed and notifies subscribers.
package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/orchestrator"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

// ErrUnknownConfig is returned when an id names no configuration.
var ErrUnknownConfig = errors.New("session: unknown configuration")

// State is a read-only snapshot handed to listeners and displays.
type State struct {
	Grouping    placeholder.Kind
	Groups      []placeholder.Group
	Selected    string
	Configs     []content.Config
	Active      string
	CanGenerate bool
}

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator replaces uuid based configuration ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithConfigs seeds the session instead of the default custom text entry.
func WithConfigs(cfgs ...content.Config) Option {
	return func(s *Session) {
		s.seed = cfgs
		s.seeded = true
	}
}

// WithGrouping sets the initial grouping kind.
func WithGrouping(kind placeholder.Kind) Option {
	return func(s *Session) {
		if kind != "" {
			s.kind = kind
		}
	}
}

// Session is safe for concurrent use; a snapshot watcher and a prompt flow
// can drive the same instance.
type Session struct {
	mu           sync.RWMutex
	newID        func() string
	kind         placeholder.Kind
	placeholders []placeholder.Descriptor
	groups       []placeholder.Group
	selected     string
	configs      []content.Config
	active       string
	listeners    []func(State)

	seed   []content.Config
	seeded bool
}

// New constructs a Session. Without WithConfigs it starts with one custom
// text configuration titled "Custom Text".
func New(options ...Option) *Session {
	s := &Session{
		newID: uuid.NewString,
		kind:  placeholder.KindName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	seed := s.seed
	if !s.seeded {
		seed = []content.Config{DefaultConfig()}
	}
	for _, cfg := range seed {
		if cfg == nil {
			continue
		}
		s.configs = append(s.configs, s.prepare(cfg))
	}
	if len(s.configs) > 0 {
		s.active = content.BaseOf(s.configs[0]).ID
	}
	s.seed = nil
	return s
}

// DefaultConfig is the configuration a fresh session starts with.
func DefaultConfig() content.Config {
	return &content.CustomString{
		Base: content.Base{Title: "Custom Text", SourceListID: "custom-text"},
		Text: "My Text",
	}
}

// ConfigFromList builds an unedited configuration for a catalog list.
func ConfigFromList(list catalog.List) content.Config {
	base := content.Base{Title: list.Name, SourceListID: list.ID}
	switch list.Kind {
	case content.KindCustomString:
		return &content.CustomString{Base: base, Text: "My Text"}
	case content.KindNumbers:
		return &content.NumberRange{Base: base, Min: 0, Max: 100, DecimalPlaces: 0}
	case content.KindDates:
		// Bounds are left empty so the entry stays unconfirmed until edited.
		return &content.DateRange{Base: base, Format: content.DefaultDateFormat}
	default:
		return &content.StringList{Base: base, SourceURL: list.URL, Casing: content.CasingOriginal}
	}
}

func (s *Session) prepare(cfg content.Config) content.Config {
	cfg = content.Clone(cfg)
	base := content.BaseOf(cfg)
	if base.ID == "" {
		base.ID = s.newID()
	}
	if base.Sort == "" {
		base.Sort = content.SortOriginal
	}
	content.Confirm(cfg)
	return cfg
}

// Subscribe registers fn to receive the state after every change.
func (s *Session) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// mutate runs fn under the write lock, then notifies listeners outside it.
func (s *Session) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	state := s.stateLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return nil
}

// Add appends cfg, makes it active and returns its id.
func (s *Session) Add(cfg content.Config) (string, error) {
	if cfg == nil {
		return "", errors.New("session: configuration is required")
	}
	var id string
	err := s.mutate(func() error {
		prepared := s.prepare(cfg)
		id = content.BaseOf(prepared).ID
		if s.indexLocked(id) >= 0 {
			return fmt.Errorf("session: duplicate configuration id %q", id)
		}
		s.configs = append(s.configs, prepared)
		s.active = id
		return nil
	})
	return id, err
}

// Remove deletes the configuration with id. When it was active the
// neighbouring entry becomes active.
func (s *Session) Remove(id string) error {
	return s.mutate(func() error {
		idx := s.indexLocked(id)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownConfig, id)
		}
		s.configs = slices.Delete(s.configs, idx, idx+1)
		if s.active == id {
			s.active = ""
			if len(s.configs) > 0 {
				s.active = content.BaseOf(s.configs[min(idx, len(s.configs)-1)]).ID
			}
		}
		return nil
	})
}

// Move shifts the configuration with id to position to, clamped to the
// list bounds.
func (s *Session) Move(id string, to int) error {
	return s.mutate(func() error {
		from := s.indexLocked(id)
		if from < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownConfig, id)
		}
		to = max(0, min(to, len(s.configs)-1))
		cfg := s.configs[from]
		s.configs = slices.Delete(s.configs, from, from+1)
		s.configs = slices.Insert(s.configs, to, cfg)
		return nil
	})
}

// Update applies edit to a copy of the configuration with id, re-evaluates
// its confirmation and stores it. The id cannot be changed.
func (s *Session) Update(id string, edit func(content.Config) error) error {
	if edit == nil {
		return errors.New("session: edit function is required")
	}
	return s.mutate(func() error {
		idx := s.indexLocked(id)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownConfig, id)
		}
		cfg := content.Clone(s.configs[idx])
		if err := edit(cfg); err != nil {
			return err
		}
		content.BaseOf(cfg).ID = id
		content.Confirm(cfg)
		s.configs[idx] = cfg
		return nil
	})
}

// SetActive marks the configuration with id as the one being edited.
func (s *Session) SetActive(id string) error {
	return s.mutate(func() error {
		if s.indexLocked(id) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownConfig, id)
		}
		s.active = id
		return nil
	})
}

// Active returns a copy of the active configuration.
func (s *Session) Active() (content.Config, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(s.active)
	if idx < 0 {
		return nil, false
	}
	return content.Clone(s.configs[idx]), true
}

// Configs returns copies of the configurations in order.
func (s *Session) Configs() []content.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneConfigs(s.configs)
}

// SetPlaceholders replaces the snapshot and regroups it. The selected group
// is kept when its key still exists, otherwise the largest group is
// selected.
func (s *Session) SetPlaceholders(descriptors []placeholder.Descriptor) {
	_ = s.mutate(func() error {
		s.placeholders = slices.Clone(descriptors)
		s.regroupLocked()
		return nil
	})
}

// SetGrouping switches the grouping kind and regroups.
func (s *Session) SetGrouping(kind placeholder.Kind) {
	_ = s.mutate(func() error {
		s.kind = kind
		s.selected = ""
		s.regroupLocked()
		return nil
	})
}

// Select picks the group with key.
func (s *Session) Select(key string) error {
	return s.mutate(func() error {
		if _, ok := placeholder.Find(s.groups, key); !ok {
			return fmt.Errorf("%w: %q", orchestrator.ErrGroupNotFound, key)
		}
		s.selected = key
		return nil
	})
}

func (s *Session) regroupLocked() {
	s.groups = placeholder.GroupBy(s.placeholders, s.kind)
	if _, ok := placeholder.Find(s.groups, s.selected); ok {
		return
	}
	s.selected = ""
	if len(s.groups) > 0 {
		s.selected = s.groups[0].Key
	}
}

// SelectedGroup returns the selected group.
func (s *Session) SelectedGroup() (placeholder.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.groups) == 0 {
		return placeholder.Group{}, false
	}
	return placeholder.Find(s.groups, s.selected)
}

// CanGenerate reports whether the current state allows generation.
func (s *Session) CanGenerate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canGenerateLocked()
}

func (s *Session) canGenerateLocked() bool {
	group, ok := placeholder.Find(s.groups, s.selected)
	return content.CanGenerate(s.configs, !ok || group.Empty())
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		Grouping:    s.kind,
		Groups:      slices.Clone(s.groups),
		Selected:    s.selected,
		Configs:     cloneConfigs(s.configs),
		Active:      s.active,
		CanGenerate: s.canGenerateLocked(),
	}
}

// Request builds an orchestrator request for the current selection.
func (s *Session) Request() orchestrator.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	placeholders := slices.Clone(s.placeholders)
	if placeholders == nil {
		placeholders = []placeholder.Descriptor{}
	}
	return orchestrator.Request{
		Placeholders: placeholders,
		Grouping:     s.kind,
		GroupKey:     s.selected,
		Configs:      cloneConfigs(s.configs),
	}
}

func (s *Session) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.configs, func(cfg content.Config) bool {
		return content.BaseOf(cfg).ID == id
	})
}

func cloneConfigs(in []content.Config) []content.Config {
	out := make([]content.Config, len(in))
	for i, cfg := range in {
		out[i] = content.Clone(cfg)
	}
	return out
}
