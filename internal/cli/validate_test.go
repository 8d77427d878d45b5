package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ Valid select query document")
	assert.Contains(t, output, "1 prefix(es)")
	assert.Contains(t, output, "2 pattern(s)")
	assert.Contains(t, output, "3 triple(s)")
}

func TestValidateValidDocumentJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/select_people.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "select", data["type"])
	assert.Equal(t, float64(3), data["triples"])
}

func TestValidateUpdateDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/update_age.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ Valid update query document")
	assert.Contains(t, buf.String(), "3 pattern(s)")
}

func TestValidateMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/missing.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
}

func TestValidateInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := []byte("type: select\nwhere:\n  triples:\n    - [\"?s\", \"?p\"]\n")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E005]")
	assert.Contains(t, buf.String(), "triple 0")
}

func TestCollectStats(t *testing.T) {
	doc := &QueryDoc{
		Type:     "select",
		Prefixes: []PrefixDoc{{Label: "ex", Namespace: "http://example.com#"}},
		Where: &PatternDoc{
			Triples: [][]string{{"?s", "?p", "?o"}},
			Filters: []string{"?age > 30"},
			Nested: []NestedDoc{
				{Modifier: "OPTIONAL", Pattern: &PatternDoc{
					Triples: [][]string{{"?s", "ex:addr", "?a"}},
					Bind:    []BindingDoc{{Variable: "?x", Value: "?a"}},
				}},
			},
		},
	}

	stats := collectStats(doc)
	assert.Equal(t, "select", stats.Type)
	assert.Equal(t, 1, stats.Prefixes)
	assert.Equal(t, 2, stats.Patterns)
	assert.Equal(t, 2, stats.Triples)
	assert.Equal(t, 1, stats.Bindings)
	assert.Equal(t, 1, stats.Filters)
}
