package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/internal/watch"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

var (
	snapshotPath string
	groupingFlag string
	watchFlag    bool
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show how the snapshot's placeholders group",
	Long: `Groups the placeholders of a JSON or YAML snapshot and lists the groups,
largest first. With --watch the listing is refreshed whenever the snapshot
file changes.`,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "placeholder snapshot file (JSON or YAML)")
	groupsCmd.Flags().StringVar(&groupingFlag, "by", "", "grouping: NAME, TEXT, POSITION_XY, POSITION_X, POSITION_Y or SIZE")
	groupsCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "re-list groups when the snapshot changes")
	_ = groupsCmd.MarkFlagRequired("snapshot")
}

func groupingKind() (placeholder.Kind, error) {
	raw := groupingFlag
	if raw == "" {
		raw = appConfig.Grouping
	}
	return placeholder.ParseKind(raw)
}

func runGroups(cmd *cobra.Command, args []string) error {
	kind, err := groupingKind()
	if err != nil {
		return err
	}
	provider := placeholder.NewFileProvider(snapshotPath)
	out := cmd.OutOrStdout()

	show := func(ctx context.Context) error {
		descriptors, err := provider.Descriptors(ctx)
		if err != nil {
			return err
		}
		printGroups(out, kind, placeholder.GroupBy(descriptors, kind))
		return nil
	}

	ctx := commandContext(cmd)
	if err := show(ctx); err != nil {
		return err
	}
	if !watchFlag {
		return nil
	}

	w, err := watch.New(snapshotPath, func(ctx context.Context) {
		fmt.Fprintln(out)
		if err := show(ctx); err != nil {
			logger.Warn("reloading snapshot", zap.String("path", snapshotPath), zap.Error(err))
		}
	}, watch.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
