package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	mockfill "github.com/goliatone/go-mockfill"
	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/orchestrator"
	"github.com/goliatone/go-mockfill/pkg/output"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

var (
	requestPath string
	groupKey    string
	outputFlag  string

	textFlags   []string
	listFlags   []string
	numbersFlag string
	datesFlag   string
	sortFlag    string
	casingFlag  string
	prefixFlag  string
	suffixFlag  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content for one group of placeholders",
	Long: `Composes one text per placeholder of the chosen group from an ordered list
of content configurations, read from --request or built from the inline
flags in this order: --prefix, --text, --list, --numbers, --dates, --suffix.`,
	Example: `  mockfill generate -s snapshot.json --group Price --numbers 1,99,2 --prefix '$'
  mockfill generate -s snapshot.yaml --list coffee-shop-roasts --sort random --casing title
  mockfill generate -s snapshot.json --dates 2024-01-01,2024-12-31,"mmm DD, YYYY" -o json`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&snapshotPath, "snapshot", "s", "", "placeholder snapshot file (JSON or YAML)")
	f.StringVar(&groupingFlag, "by", "", "grouping kind (defaults to the configured grouping)")
	f.StringVarP(&requestPath, "request", "r", "", "request file with grouping, group and configs")
	f.StringVarP(&groupKey, "group", "g", "", "group key to fill (defaults to the largest group)")
	f.StringVarP(&outputFlag, "output", "o", "", "output: json, yaml, text or clipboard")
	f.StringArrayVar(&textFlags, "text", nil, "custom text (repeatable)")
	f.StringArrayVar(&listFlags, "list", nil, "catalog list id or list URL (repeatable)")
	f.StringVar(&numbersFlag, "numbers", "", "random numbers as MIN,MAX,DECIMALS")
	f.StringVar(&datesFlag, "dates", "", "random dates as FROM,TO[,FORMAT]")
	f.StringVar(&sortFlag, "sort", "", "order for lists, numbers and dates: original, random, ascending, descending")
	f.StringVar(&casingFlag, "casing", "", "casing for lists: original, sentence, title, upper, lower")
	f.StringVar(&prefixFlag, "prefix", "", "text placed before every value")
	f.StringVar(&suffixFlag, "suffix", "", "text placed after every value")
	_ = generateCmd.MarkFlagRequired("snapshot")
}

// requestFile is the on-disk shape of a generation request.
type requestFile struct {
	Grouping string         `yaml:"grouping" json:"grouping"`
	Group    string         `yaml:"group" json:"group"`
	Configs  []content.Spec `yaml:"configs" json:"configs"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	kind, err := groupingKind()
	if err != nil {
		return err
	}
	key := groupKey

	var specs []content.Spec
	if requestPath != "" {
		req, err := readRequest(requestPath)
		if err != nil {
			return err
		}
		if req.Grouping != "" && groupingFlag == "" {
			if kind, err = placeholder.ParseKind(req.Grouping); err != nil {
				return err
			}
		}
		if key == "" {
			key = req.Group
		}
		specs = req.Configs
	}
	inline, err := inlineSpecs()
	if err != nil {
		return err
	}
	specs = append(specs, inline...)
	if len(specs) == 0 {
		return fmt.Errorf("no content configured: pass --request or inline flags such as --text or --list")
	}

	cfgs, err := content.Configs(specs)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	if needsCatalog(cfgs) {
		if cat, err = loadCatalog(cmd); err != nil {
			return err
		}
	}

	sinkName := outputFlag
	if sinkName == "" {
		sinkName = appConfig.Output
	}
	registry, err := newSinkRegistry(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	orch := newOrchestrator(cat, registry, sinkName)
	_, err = orch.Generate(ctx, orchestrator.Request{
		Provider: placeholder.NewFileProvider(snapshotPath),
		Grouping: kind,
		GroupKey: key,
		Configs:  cfgs,
	})
	return err
}

func newOrchestrator(cat *catalog.Catalog, registry *output.Registry, sinkName string) *orchestrator.Orchestrator {
	opts := []orchestrator.Option{
		orchestrator.WithFetcher(mockfill.NewFetcher(loaderOptions()...)),
		orchestrator.WithLogger(logger),
		orchestrator.WithConcurrency(appConfig.Concurrency),
		orchestrator.WithResolverOptions(content.WithSanitizer(appConfig.SanitizeLines)),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultSink(sinkName),
	}
	if cat != nil {
		opts = append(opts, orchestrator.WithListLookup(cat))
	}
	return orchestrator.New(opts...)
}

func newSinkRegistry(w io.Writer) (*output.Registry, error) {
	text, err := output.NewText(w, appConfig.TextTemplate)
	if err != nil {
		return nil, err
	}
	registry := output.NewRegistry()
	registry.MustRegister(output.NewJSON(w))
	registry.MustRegister(output.NewYAML(w))
	registry.MustRegister(text)
	registry.MustRegister(output.NewClipboard())
	return registry, nil
}

func readRequest(path string) (requestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return requestFile{}, fmt.Errorf("read request: %w", err)
	}
	var req requestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return requestFile{}, fmt.Errorf("parse request %s: %w", path, err)
	}
	logger.Debug("loaded request", zap.String("path", path), zap.Int("configs", len(req.Configs)))
	return req, nil
}

func inlineSpecs() ([]content.Spec, error) {
	var specs []content.Spec
	if prefixFlag != "" {
		specs = append(specs, content.Spec{Type: string(content.KindCustomString), Title: "Prefix", Text: prefixFlag})
	}
	for _, text := range textFlags {
		specs = append(specs, content.Spec{Type: string(content.KindCustomString), Text: text})
	}
	for _, ref := range listFlags {
		spec := content.Spec{Type: string(content.KindStrings), Sort: sortFlag, Casing: casingFlag}
		if isLocation(ref) {
			spec.URL = ref
		} else {
			spec.ListID = ref
		}
		specs = append(specs, spec)
	}
	if numbersFlag != "" {
		spec, err := numbersSpec(numbersFlag)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if datesFlag != "" {
		spec, err := datesSpec(datesFlag)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if suffixFlag != "" {
		specs = append(specs, content.Spec{Type: string(content.KindCustomString), Title: "Suffix", Text: suffixFlag})
	}
	return specs, nil
}

func numbersSpec(raw string) (content.Spec, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return content.Spec{}, fmt.Errorf("--numbers expects MIN,MAX[,DECIMALS], got %q", raw)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return content.Spec{}, fmt.Errorf("--numbers minimum: %w", err)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return content.Spec{}, fmt.Errorf("--numbers maximum: %w", err)
	}
	decimals := 0
	if len(parts) == 3 {
		if decimals, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return content.Spec{}, fmt.Errorf("--numbers decimals: %w", err)
		}
	}
	return content.Spec{
		Type:     string(content.KindNumbers),
		Sort:     sortFlag,
		Min:      &minV,
		Max:      &maxV,
		Decimals: &decimals,
	}, nil
}

// datesSpec splits on the first two commas only, so formats such as
// "mmm DD, YYYY" survive.
func datesSpec(raw string) (content.Spec, error) {
	parts := strings.SplitN(raw, ",", 3)
	if len(parts) < 2 {
		return content.Spec{}, fmt.Errorf("--dates expects FROM,TO[,FORMAT], got %q", raw)
	}
	spec := content.Spec{
		Type:     string(content.KindDates),
		Sort:     sortFlag,
		Earliest: strings.TrimSpace(parts[0]),
		Latest:   strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		spec.Format = strings.TrimLeft(parts[2], " ")
	}
	return spec, nil
}

func isLocation(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "file://") || strings.ContainsAny(ref, `/\`)
}

func needsCatalog(cfgs []content.Config) bool {
	for _, cfg := range cfgs {
		if list, ok := cfg.(*content.StringList); ok && list.SourceURL == "" {
			return true
		}
	}
	return false
}
