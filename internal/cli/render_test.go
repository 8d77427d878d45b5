package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "SELECT DISTINCT ?person ?age")
	assert.Contains(t, output, "WHERE {")
	assert.Contains(t, output, "   OPTIONAL {")
	assert.Contains(t, output, "FILTER (?age > 30)")
	assert.True(t, strings.HasSuffix(output, "LIMIT 100\n"))
}

func TestRenderJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "select", data["type"])
	assert.Contains(t, data["query"], "SELECT DISTINCT ?person ?age")
}

func TestRenderUpdateDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/update_age.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "DELETE {")
	assert.Contains(t, output, "INSERT {")
	assert.Contains(t, output, "WHERE {")
}

func TestRenderCUEDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.cue"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SELECT DISTINCT ?person ?age")
}

func TestRenderToOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "query.rq")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.yaml", "--output", outPath})

	err := cmd.Execute()
	require.NoError(t, err)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "SELECT DISTINCT ?person ?age")
	assert.True(t, strings.HasSuffix(string(written), "LIMIT 100\n"))
}

func TestRenderMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/does_not_exist.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
}

func TestRenderInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: construct\n"), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E005]")
}

func TestRenderInvalidDocumentJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: construct\n"), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidDoc, resp.Error.Code)
}

func TestRenderVerboseLogging(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Verbose: true}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"testdata/select_people.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Loaded select query document")
}
