package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/pkg/placeholder"
	"github.com/goliatone/go-mockfill/pkg/prompt"
	"github.com/goliatone/go-mockfill/pkg/session"
)

// newPromptDriver is swapped in tests.
var newPromptDriver = func(out io.Writer) prompt.PromptDriver {
	return prompt.NewSurveyDriver(out)
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick a group and build its content through prompts",
	RunE:  runInteractive,
}

func init() {
	f := interactiveCmd.Flags()
	f.StringVarP(&snapshotPath, "snapshot", "s", "", "placeholder snapshot file (JSON or YAML)")
	f.StringVarP(&outputFlag, "output", "o", "", "output: json, yaml, text or clipboard")
	f.StringArrayVar(&indexURLs, "index", nil, "list index URL or path (repeatable)")
	_ = interactiveCmd.MarkFlagRequired("snapshot")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	kind, err := placeholder.ParseKind(appConfig.Grouping)
	if err != nil {
		return err
	}
	descriptors, err := placeholder.NewFileProvider(snapshotPath).Descriptors(ctx)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	for _, f := range cat.Failures() {
		logger.Warn("list index unavailable", zap.String("index", f.IndexURL), zap.Error(f.Err))
	}

	s := session.New(session.WithGrouping(kind))
	s.SetPlaceholders(descriptors)

	flow, err := prompt.NewFlow(s,
		prompt.WithPromptDriver(newPromptDriver(cmd.OutOrStdout())),
		prompt.WithCatalog(cat),
		prompt.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	req, err := flow.Run(ctx)
	if err != nil {
		return err
	}

	sinkName := outputFlag
	if sinkName == "" {
		sinkName = appConfig.Output
	}
	registry, err := newSinkRegistry(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, err = newOrchestrator(cat, registry, sinkName).Generate(ctx, req)
	return err
}
