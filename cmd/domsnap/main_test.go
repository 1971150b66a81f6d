package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<style>p { color: green }</style><div id="d"><p>Hi</p><p class="x">No</p></div>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(page))
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMarkupOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	out, err := execute(t, "--root", "#d", "-x", ".x")
	require.NoError(t, err)
	assert.Equal(t, `<div id="d" style="display: block;"><p style="display: block; color: green;">Hi</p></div>`+"\n", out)
}

func TestTreeOutputAndStyleSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	css := filepath.Join(t.TempDir(), "extra.css")
	require.NoError(t, os.WriteFile(css, []byte("div { margin-top: 2px }"), 0o644))
	out, err := execute(t, "--root", "#d", "--css", css, "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "<div>")
	assert.Contains(t, out, "margin-top: 2px;")
	assert.Contains(t, out, `"No"`)
}

func TestDotOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	out, err := execute(t, "--root", "#d", "--dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="<div>"`)
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.clone")
	defer teardown()
	//
	_, err := execute(t, "--root", "#nothing")
	assert.Error(t, err)
	_, err = execute(t, "--root", "#d", "-x", "div")
	assert.Error(t, err)
	_, err = execute(t, filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
