package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/internal/config"
	"github.com/goliatone/go-mockfill/pkg/output"
	"github.com/goliatone/go-mockfill/pkg/prompt"
	"github.com/goliatone/go-mockfill/pkg/source"
)

const snapshotJSON = `[
  {"id": "1", "name": "Title", "characters": "Hello"},
  {"id": "2", "name": "Price", "characters": "$1"},
  {"id": "3", "name": "Price", "characters": "$2"}
]`

// resetFlags restores every package-level flag between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	appConfig = config.Default()
	appConfig.IndexURLs = nil
	configPath, verbose = "", false
	snapshotPath, groupingFlag, watchFlag = "", "", false
	indexURLs = nil
	requestPath, groupKey, outputFlag = "", "", ""
	textFlags, listFlags = nil, nil
	numbersFlag, datesFlag, sortFlag, casingFlag, prefixFlag, suffixFlag = "", "", "", "", "", ""
}

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))
	return path
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func listServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/content/index.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"name":"Coffee Shop","lists":[{"name":"Roasts","path":"roasts.txt"}]}`)
	})
	mux.HandleFunc("/content/roasts.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "dark roast\nlight roast\n")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeRows(t *testing.T, data []byte) []output.Row {
	t.Helper()
	var rows []output.Row
	require.NoError(t, json.Unmarshal(data, &rows))
	return rows
}

func TestRunGroups(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)

	cmd, buf := testCommand()
	require.NoError(t, runGroups(cmd, nil))

	out := buf.String()
	require.Contains(t, out, "Grouped by Layer name (2 groups)")
	require.Contains(t, out, "Price")
	require.Contains(t, out, "x2")
	require.Less(t, strings.Index(out, "Price"), strings.Index(out, "Title"), "largest group listed first")
}

func TestRunGroups_UnknownGrouping(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)
	groupingFlag = "colour"

	cmd, _ := testCommand()
	require.Error(t, runGroups(cmd, nil))
}

func TestRunGenerate_InlineFlags(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)
	prefixFlag = "$"
	numbersFlag = "3,3,2"
	suffixFlag = " USD"
	outputFlag = "json"

	cmd, buf := testCommand()
	require.NoError(t, runGenerate(cmd, nil))

	rows := decodeRows(t, buf.Bytes())
	require.Equal(t, []output.Row{
		{ID: "2", Text: "$3.00 USD"},
		{ID: "3", Text: "$3.00 USD"},
	}, rows)
}

func TestRunGenerate_CatalogList(t *testing.T) {
	resetFlags(t)
	srv := listServer(t)
	snapshotPath = writeSnapshot(t)
	indexURLs = []string{srv.URL + "/content/index.json"}
	listFlags = []string{"coffee-shop-roasts"}
	casingFlag = "upper"
	groupKey = "Price"
	outputFlag = "json"

	cmd, buf := testCommand()
	require.NoError(t, runGenerate(cmd, nil))

	rows := decodeRows(t, buf.Bytes())
	require.Equal(t, []output.Row{
		{ID: "2", Text: "DARK ROAST"},
		{ID: "3", Text: "LIGHT ROAST"},
	}, rows)
}

func TestRunGenerate_RequestFile(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)
	requestPath = filepath.Join(t.TempDir(), "request.yaml")
	request := `
grouping: NAME
group: Title
configs:
  - type: custom-string
    text: "Hi "
  - type: dates
    earliest: "2024-03-05"
    latest: "2024-03-05"
    format: "DD/MM/YYYY"
`
	require.NoError(t, os.WriteFile(requestPath, []byte(request), 0o600))
	outputFlag = "text"

	cmd, buf := testCommand()
	require.NoError(t, runGenerate(cmd, nil))
	require.Equal(t, "1\tHi 5/3/2024\n", buf.String())
}

func TestRunGenerate_Rejections(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)

	cmd, _ := testCommand()
	require.Error(t, runGenerate(cmd, nil), "no configs")

	numbersFlag = "9,1,0"
	err := runGenerate(cmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "minimum is greater than maximum")

	numbersFlag = ""
	textFlags = []string{"x"}
	groupKey = "Nope"
	require.Error(t, runGenerate(cmd, nil))
}

func TestRunLists(t *testing.T) {
	resetFlags(t)
	srv := listServer(t)
	indexURLs = []string{srv.URL + "/content/index.json", srv.URL + "/missing/index.json"}

	cmd, buf := testCommand()
	require.NoError(t, runLists(cmd, nil))

	out := buf.String()
	require.Contains(t, out, "custom-text")
	require.Contains(t, out, "coffee-shop-roasts")
	require.Contains(t, out, "skipped "+srv.URL+"/missing/index.json")
}

type scriptedDriver struct {
	selects []int
	pos     int
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", errors.New("no input scripted")
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	if d.pos >= len(d.selects) {
		return -1, errors.New("no select scripted")
	}
	v := d.selects[d.pos]
	d.pos++
	return v, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestRunInteractive(t *testing.T) {
	resetFlags(t)
	snapshotPath = writeSnapshot(t)

	driver := &scriptedDriver{selects: []int{0, 1, 4}} // name grouping, "Title" group, generate
	previous := newPromptDriver
	newPromptDriver = func(io.Writer) prompt.PromptDriver { return driver }
	t.Cleanup(func() { newPromptDriver = previous })

	cmd, buf := testCommand()
	require.NoError(t, runInteractive(cmd, nil))
	require.Equal(t, "1\tMy Text\n", buf.String())
}

func TestDatesSpecKeepsCommasInFormat(t *testing.T) {
	resetFlags(t)
	spec, err := datesSpec("2024-01-01,2024-02-01, mmm DD, YYYY")
	require.NoError(t, err)
	require.Equal(t, "mmm DD, YYYY", spec.Format)

	_, err = datesSpec("2024-01-01")
	require.Error(t, err)
}

func TestLoaderOptionsUseConfiguredClient(t *testing.T) {
	resetFlags(t)
	appConfig.HTTP.Timeout = 1500 * time.Millisecond
	appConfig.HTTP.MaxBytes = 1024

	opts := source.NewLoaderOptions(loaderOptions()...)
	require.NotNil(t, opts.HTTPClient)
	require.Equal(t, 1500*time.Millisecond, opts.HTTPClient.Timeout)
	require.Equal(t, int64(1024), opts.MaxBytes)
}

func TestNumbersSpec(t *testing.T) {
	resetFlags(t)
	spec, err := numbersSpec("1.5, 9")
	require.NoError(t, err)
	require.Equal(t, 1.5, *spec.Min)
	require.Equal(t, 9.0, *spec.Max)
	require.Equal(t, 0, *spec.Decimals)

	for _, bad := range []string{"1", "a,2", "1,b", "1,2,c", "1,2,3,4"} {
		_, err := numbersSpec(bad)
		require.Error(t, err, bad)
	}
}
