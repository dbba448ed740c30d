package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
	"github.com/goliatone/go-mockfill/pkg/session"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	selectMsgs   []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", fmt.Errorf("scripted input %q rejected: %w", val, err)
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectMsgs = append(s.selectMsgs, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

var snapshot = []placeholder.Descriptor{
	{ID: "1", Name: "Price", Characters: "$1"},
	{ID: "2", Name: "Title", Characters: "Hello"},
	{ID: "3", Name: "Price", Characters: "$2"},
}

func newSession() *session.Session {
	n := 0
	s := session.New(session.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("cfg-%d", n)
	}))
	s.SetPlaceholders(snapshot)
	return s
}

func TestRun_AddNumbersAndGenerate(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{
			0, // group by layer name
			0, // group "Price"
			0, // add content
			1, // built-in numbers list
			1, // order: random
			4, // generate
		},
		inputs: []string{"5", "10", "2"},
	}
	s := newSession()
	flow, err := NewFlow(s, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	req, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if req.GroupKey != "Price" || req.Grouping != placeholder.KindName {
		t.Fatalf("unexpected selection %+v", req)
	}
	if len(req.Configs) != 2 {
		t.Fatalf("expected default plus numbers config, got %d", len(req.Configs))
	}
	numbers, ok := req.Configs[1].(*content.NumberRange)
	if !ok {
		t.Fatalf("expected number range, got %T", req.Configs[1])
	}
	want := content.NumberRange{
		Base: content.Base{ID: "cfg-2", Title: "Numbers", SourceListID: "numbers", Sort: content.SortRandom, Confirmed: true},
		Min:  5, Max: 10, DecimalPlaces: 2,
	}
	if diff := cmp.Diff(want, *numbers); diff != "" {
		t.Fatalf("numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_BlockedGenerateExplains(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{
			0, 0, // grouping, group
			1, 0, // edit the default custom text
			4,    // generate (blocked)
			5,    // cancel
		},
		inputs: []string{""},
	}
	flow, err := NewFlow(newSession(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	_, err = flow.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	var explained bool
	for _, msg := range driver.infoMessages {
		if strings.HasPrefix(msg, "Cannot generate yet") && strings.Contains(msg, "custom text is empty") {
			explained = true
		}
	}
	if !explained {
		t.Fatalf("expected blocked explanation, got %q", driver.infoMessages)
	}
}

func TestRun_CatalogListAndReorder(t *testing.T) {
	cat := catalog.New(catalog.Group{
		Name: "Coffee",
		Lists: []catalog.List{
			{ID: "coffee-roasts", Name: "Roasts", URL: "https://x/roasts.txt", Kind: content.KindStrings},
		},
	})
	driver := &stubDriver{
		selectIdx: []int{
			0, 0, // grouping, group
			0, 3, // add content, catalog list after the three built-ins
			3,    // casing upper
			2,    // ascending
			3, 1, // move second config up
			4,    // generate
		},
	}
	flow, err := NewFlow(newSession(), WithPromptDriver(driver), WithCatalog(cat))
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	req, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	list, ok := req.Configs[0].(*content.StringList)
	if !ok {
		t.Fatalf("expected list first after reorder, got %T", req.Configs[0])
	}
	if list.SourceURL != "https://x/roasts.txt" || list.Casing != content.CasingUpper || list.Sort != content.SortAscending {
		t.Fatalf("unexpected list config %+v", list)
	}
}

func TestRun_DateRange(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0, 0, 0, 2, 0, 4},
		inputs:    []string{"2024-01-01", "2024-12-31", "DD mmm YYYY"},
	}
	flow, err := NewFlow(newSession(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	req, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	dates := req.Configs[1].(*content.DateRange)
	if !dates.Earliest.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || dates.Format != "DD mmm YYYY" || !dates.Confirmed {
		t.Fatalf("unexpected dates config %+v", dates)
	}
}

func TestRun_NoPlaceholders(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0}}
	flow, err := NewFlow(session.New(), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}
	if _, err := flow.Run(context.Background()); !errors.Is(err, ErrNoPlaceholders) {
		t.Fatalf("expected ErrNoPlaceholders, got %v", err)
	}
}

func TestNewFlow_RequiresSession(t *testing.T) {
	if _, err := NewFlow(nil); err == nil {
		t.Fatalf("expected error")
	}
}
