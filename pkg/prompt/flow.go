// Package prompt drives a session through terminal prompts: pick how to
// group the snapshot, pick a group, assemble the content configurations and
// hand back a generation request.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/orchestrator"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
	"github.com/goliatone/go-mockfill/pkg/session"
)

const (
	actionAdd      = "Add content"
	actionEdit     = "Edit content"
	actionRemove   = "Remove content"
	actionMoveUp   = "Move content up"
	actionGenerate = "Generate"
	actionCancel   = "Cancel"
)

// Option configures a Flow.
type Option func(*Flow)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithCatalog offers the catalog lists when adding content. The built-in
// pseudo lists are always offered.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(f *Flow) {
		f.catalog = cat
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithLocation sets the zone date bounds are read in.
func WithLocation(loc *time.Location) Option {
	return func(f *Flow) {
		if loc != nil {
			f.location = loc
		}
	}
}

// Flow walks the user through one generation setup.
type Flow struct {
	driver   PromptDriver
	session  *session.Session
	catalog  *catalog.Catalog
	logger   *zap.Logger
	location *time.Location
}

// NewFlow builds a flow editing s.
func NewFlow(s *session.Session, options ...Option) (*Flow, error) {
	if s == nil {
		return nil, errors.New("prompt: session is required")
	}
	f := &Flow{
		session:  s,
		logger:   zap.NewNop(),
		location: time.UTC,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(nil)
	}
	return f, nil
}

// Run prompts until the user generates or cancels and returns the request
// for the confirmed setup.
func (f *Flow) Run(ctx context.Context) (orchestrator.Request, error) {
	if err := f.chooseGrouping(ctx); err != nil {
		return orchestrator.Request{}, err
	}
	if err := f.chooseGroup(ctx); err != nil {
		return orchestrator.Request{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return orchestrator.Request{}, err
		}
		if err := f.driver.Info(ctx, f.describeConfigs()); err != nil {
			return orchestrator.Request{}, err
		}

		actions := []string{actionAdd, actionEdit, actionRemove, actionMoveUp, actionGenerate, actionCancel}
		idx, err := f.driver.Select(ctx, SelectConfig{Message: "What next?", Options: actions, DefaultIndex: 4})
		if err != nil {
			return orchestrator.Request{}, err
		}
		if idx < 0 || idx >= len(actions) {
			return orchestrator.Request{}, fmt.Errorf("prompt: invalid choice %d", idx)
		}

		switch actions[idx] {
		case actionAdd:
			err = f.addConfig(ctx)
		case actionEdit:
			err = f.withChosenConfig(ctx, "Edit which content?", f.editConfig)
		case actionRemove:
			err = f.withChosenConfig(ctx, "Remove which content?", func(_ context.Context, id string) error {
				return f.session.Remove(id)
			})
		case actionMoveUp:
			err = f.withChosenConfig(ctx, "Move which content up?", f.moveUp)
		case actionGenerate:
			if f.session.CanGenerate() {
				return f.session.Request(), nil
			}
			err = f.explainBlocked(ctx)
		case actionCancel:
			return orchestrator.Request{}, ErrAborted
		}
		if err != nil {
			return orchestrator.Request{}, err
		}
	}
}

func (f *Flow) chooseGrouping(ctx context.Context) error {
	kinds := placeholder.Kinds()
	current := f.session.State().Grouping
	options := make([]string, len(kinds))
	def := 0
	for i, k := range kinds {
		options[i] = k.Label()
		if k == current {
			def = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Group text layers by", Options: options, DefaultIndex: def})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(kinds) {
		return fmt.Errorf("prompt: invalid grouping choice %d", idx)
	}
	f.session.SetGrouping(kinds[idx])
	return nil
}

func (f *Flow) chooseGroup(ctx context.Context) error {
	groups := f.session.State().Groups
	if len(groups) == 0 {
		return ErrNoPlaceholders
	}
	options := make([]string, len(groups))
	for i, g := range groups {
		options[i] = fmt.Sprintf("%s: %s", g.Key, g.Summary())
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Fill which group?", Options: options, PageSize: 12})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(groups) {
		return fmt.Errorf("prompt: invalid group choice %d", idx)
	}
	return f.session.Select(groups[idx].Key)
}

// lists returns the built-in pseudo lists followed by the catalog's, each
// id once.
func (f *Flow) lists() []catalog.List {
	groups := []catalog.Group{catalog.Defaults()}
	if f.catalog != nil {
		groups = append(groups, f.catalog.Groups()...)
	}

	var lists []catalog.List
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, l := range g.Lists {
			if _, dup := seen[l.ID]; dup {
				continue
			}
			seen[l.ID] = struct{}{}
			lists = append(lists, l)
		}
	}
	return lists
}

func (f *Flow) addConfig(ctx context.Context) error {
	lists := f.lists()
	options := make([]string, len(lists))
	for i, l := range lists {
		options[i] = fmt.Sprintf("%s (%s)", l.Name, l.Kind)
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Add which content?", Options: options, PageSize: 15})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(lists) {
		return fmt.Errorf("prompt: invalid list choice %d", idx)
	}

	id, err := f.session.Add(session.ConfigFromList(lists[idx]))
	if err != nil {
		return err
	}
	f.logger.Debug("added content", zap.String("id", id), zap.String("list", lists[idx].ID))
	return f.editConfig(ctx, id)
}

func (f *Flow) withChosenConfig(ctx context.Context, message string, fn func(context.Context, string) error) error {
	cfgs := f.session.Configs()
	if len(cfgs) == 0 {
		return f.driver.Info(ctx, "No content configured yet.")
	}
	options := make([]string, len(cfgs))
	for i, cfg := range cfgs {
		options[i] = describe(cfg)
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(cfgs) {
		return fmt.Errorf("prompt: invalid content choice %d", idx)
	}
	return fn(ctx, content.BaseOf(cfgs[idx]).ID)
}

func (f *Flow) moveUp(_ context.Context, id string) error {
	for i, cfg := range f.session.Configs() {
		if content.BaseOf(cfg).ID == id {
			return f.session.Move(id, i-1)
		}
	}
	return fmt.Errorf("%w: %q", session.ErrUnknownConfig, id)
}

func (f *Flow) editConfig(ctx context.Context, id string) error {
	if err := f.session.SetActive(id); err != nil {
		return err
	}
	cfg, ok := f.session.Active()
	if !ok {
		return fmt.Errorf("%w: %q", session.ErrUnknownConfig, id)
	}

	// Prompt against a detached copy, then store it in one update.
	if err := f.promptFields(ctx, cfg); err != nil {
		return err
	}
	return f.session.Update(id, func(target content.Config) error {
		edited := content.Clone(cfg)
		switch t := target.(type) {
		case *content.CustomString:
			*t = *edited.(*content.CustomString)
		case *content.StringList:
			*t = *edited.(*content.StringList)
		case *content.NumberRange:
			*t = *edited.(*content.NumberRange)
		case *content.DateRange:
			*t = *edited.(*content.DateRange)
		}
		return nil
	})
}

func (f *Flow) promptFields(ctx context.Context, cfg content.Config) error {
	var err error
	switch c := cfg.(type) {
	case *content.CustomString:
		c.Text, err = f.driver.Input(ctx, InputConfig{Message: "Text", Default: c.Text})
		return err
	case *content.StringList:
		if c.Casing, err = f.chooseCasing(ctx, c.Casing); err != nil {
			return err
		}
	case *content.NumberRange:
		if c.Min, err = f.askFloat(ctx, "Minimum", c.Min); err != nil {
			return err
		}
		if c.Max, err = f.askFloat(ctx, "Maximum", c.Max); err != nil {
			return err
		}
		raw, err := f.driver.Input(ctx, InputConfig{
			Message:   "Decimal places",
			Default:   strconv.Itoa(c.DecimalPlaces),
			Validator: validateInt,
		})
		if err != nil {
			return err
		}
		c.DecimalPlaces, _ = strconv.Atoi(strings.TrimSpace(raw))
	case *content.DateRange:
		if c.Earliest, err = f.askDate(ctx, "Earliest date", c.Earliest); err != nil {
			return err
		}
		if c.Latest, err = f.askDate(ctx, "Latest date", c.Latest); err != nil {
			return err
		}
		if c.Format, err = f.driver.Input(ctx, InputConfig{
			Message: "Format",
			Default: c.Format,
			Help:    "Tokens: DD dddd ddd mmmm mmm MM YYYY",
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("prompt: unsupported configuration %T", cfg)
	}

	base := content.BaseOf(cfg)
	base.Sort, err = f.chooseSort(ctx, base.Sort)
	return err
}

func (f *Flow) chooseCasing(ctx context.Context, current content.CasingRule) (content.CasingRule, error) {
	rules := []content.CasingRule{
		content.CasingOriginal, content.CasingSentence, content.CasingTitle,
		content.CasingUpper, content.CasingLower,
	}
	return choose(ctx, f.driver, "Casing", rules, current)
}

func (f *Flow) chooseSort(ctx context.Context, current content.SortRule) (content.SortRule, error) {
	rules := []content.SortRule{
		content.SortOriginal, content.SortRandom, content.SortAscending, content.SortDescending,
	}
	return choose(ctx, f.driver, "Order", rules, current)
}

func choose[T ~string](ctx context.Context, driver PromptDriver, message string, values []T, current T) (T, error) {
	options := make([]string, len(values))
	def := 0
	for i, v := range values {
		options[i] = string(v)
		if v == current {
			def = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def})
	if err != nil {
		return current, err
	}
	if idx < 0 || idx >= len(values) {
		return current, fmt.Errorf("prompt: invalid %s choice %d", strings.ToLower(message), idx)
	}
	return values[idx], nil
}

func (f *Flow) askFloat(ctx context.Context, message string, current float64) (float64, error) {
	raw, err := f.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   strconv.FormatFloat(current, 'f', -1, 64),
		Validator: validateFloat,
	})
	if err != nil {
		return current, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return current, fmt.Errorf("prompt: %s: %w", strings.ToLower(message), err)
	}
	return v, nil
}

func (f *Flow) askDate(ctx context.Context, message string, current time.Time) (time.Time, error) {
	def := ""
	if !current.IsZero() {
		def = current.Format(time.DateOnly)
	}
	raw, err := f.driver.Input(ctx, InputConfig{
		Message: message,
		Default: def,
		Help:    "YYYY-MM-DD or RFC 3339",
		Validator: func(s string) error {
			_, err := content.ParseDate(s, f.location)
			return err
		},
	})
	if err != nil {
		return current, err
	}
	return content.ParseDate(raw, f.location)
}

func (f *Flow) explainBlocked(ctx context.Context) error {
	var lines []string
	if _, ok := f.session.SelectedGroup(); !ok {
		lines = append(lines, "No group is selected.")
	}
	cfgs := f.session.Configs()
	if len(cfgs) == 0 {
		lines = append(lines, "Add at least one content source.")
	}
	var validation *content.ValidationError
	if err := content.Validate(cfgs); errors.As(err, &validation) {
		for _, issue := range validation.Issues {
			lines = append(lines, fmt.Sprintf("%s: %s", describe(cfgs[issue.Index]), issue.Reason))
		}
	}
	return f.driver.Info(ctx, "Cannot generate yet:\n  "+strings.Join(lines, "\n  "))
}

func (f *Flow) describeConfigs() string {
	state := f.session.State()
	var b strings.Builder
	fmt.Fprintf(&b, "Group %q by %s\n", state.Selected, state.Grouping.Label())
	if len(state.Configs) == 0 {
		b.WriteString("  (no content)")
		return b.String()
	}
	for i, cfg := range state.Configs {
		marker := " "
		if content.BaseOf(cfg).ID == state.Active {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d. %s", marker, i+1, describe(cfg))
		if i < len(state.Configs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func describe(cfg content.Config) string {
	base := content.BaseOf(cfg)
	status := ""
	if !base.Confirmed {
		status = " [incomplete]"
	}
	title := base.Title
	if title == "" {
		title = string(cfg.Kind())
	}
	switch c := cfg.(type) {
	case *content.CustomString:
		return fmt.Sprintf("%s %q%s", title, c.Text, status)
	case *content.NumberRange:
		return fmt.Sprintf("%s %s..%s%s", title,
			content.FormatNumber(c.Min, c.DecimalPlaces), content.FormatNumber(c.Max, c.DecimalPlaces), status)
	default:
		return title + status
	}
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number of zero or more")
	}
	return nil
}
