package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "signals dev\n", out)
}

func TestPropertiesCmd(t *testing.T) {
	out, _, err := execute(t, "", "properties", "y[n] = x[n] + x[n-1]")
	require.NoError(t, err)
	assert.Contains(t, out, "Linearity")
	assert.Contains(t, out, "The output depends on past samples, so the system has memory.")
}

func TestPropertiesCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "", "properties", "--json", "y[n] = x[n+1]")
	require.NoError(t, err)

	var verdicts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &verdicts))
	require.Len(t, verdicts, 5)
	assert.Equal(t, "causality", verdicts[1]["property"])
	assert.Equal(t, false, verdicts[1]["result"])
	assert.Equal(t, "explanations.nonCausalFuture", verdicts[1]["reason_key"])
}

func TestPropertiesCmd_Persian(t *testing.T) {
	out, _, err := execute(t, "", "--lang", "fa", "properties", "y[n] = x[n]")
	require.NoError(t, err)
	assert.Contains(t, out, "بله")
}

func TestPropertiesCmd_EmptyInput(t *testing.T) {
	_, _, err := execute(t, "", "properties", "  ")
	require.ErrorIs(t, err, common.ErrInvalidExpression)
}

func TestLaplaceCmd(t *testing.T) {
	out, _, err := execute(t, "", "laplace", "exp(-2*t)*u(t)")
	require.NoError(t, err)
	assert.Contains(t, out, "1/(s + 2)")
	assert.Contains(t, out, "Re(s) > -2")
}

func TestInverseCmd(t *testing.T) {
	out, _, err := execute(t, "", "inverse", "--json", "1/(s+3)")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Contains(t, res["time_expression"], "u(t)")
	assert.Equal(t, true, res["causal"])
}

func TestInverseCmd_NonCausal(t *testing.T) {
	out, _, err := execute(t, "", "inverse", "--non-causal", "--json", "1/(s+3)")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotContains(t, res["time_expression"], "u(t)")
	assert.Equal(t, false, res["causal"])
}

func TestConvolveCmd(t *testing.T) {
	out, _, err := execute(t, "", "convolve", "u(t)", "exp(-t)")
	require.NoError(t, err)
	assert.Contains(t, out, "y(t) = (u(t)) * (exp(-t))")
}

func TestLTICmd(t *testing.T) {
	out, _, err := execute(t, "", "lti", "1/(s+0)")
	require.NoError(t, err)
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "Marginally stable")
}

func TestLTICmd_JSON(t *testing.T) {
	out, _, err := execute(t, "", "lti", "--json", "1/(s+4)")
	require.NoError(t, err)

	var analysis map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.InDelta(t, 0.25, analysis["dc_gain"], 1e-12)
	assert.Equal(t, "stable", analysis["stability"])

	out, _, err = execute(t, "", "lti", "--json", "1/(s+0)")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Contains(t, analysis, "dc_gain")
	assert.Nil(t, analysis["dc_gain"])
}

func TestLibraryCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "", "library", "--json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 5)
}

func TestBatchCmd_Stdin(t *testing.T) {
	out, errOut, err := execute(t, "laplace\tu(t)\nlti\t1/(s+2)\n", "batch", "-")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
	assert.Contains(t, errOut, "2 requests: 2 succeeded, 0 failed")
}

func TestBatchCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.tsv")
	require.NoError(t, os.WriteFile(path, []byte("inverse\t1/s\n"), 0o600))

	out, errOut, err := execute(t, "", "batch", "--quiet", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"op":"inverse"`)
	assert.Empty(t, errOut)
}

func TestBatchCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.tsv"))
	require.Error(t, err)
	assert.Equal(t, "cannot open batch file", common.UserMessage(err))
}

func TestSchemaCmd(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "laplace-request")

	out, _, err = execute(t, "", "schema", "laplace-request")
	require.NoError(t, err)
	assert.Contains(t, out, `"expression_t"`)

	_, _, err = execute(t, "", "schema", "nope")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "version")
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestStrict(t *testing.T) {
	out, _, err := execute(t, "", "laplace", "tan(t)")
	require.NoError(t, err)
	assert.Contains(t, out, "not recognized")

	_, _, err = execute(t, "", "laplace", "--strict", "tan(t)")
	require.ErrorIs(t, err, common.ErrUnrecognizedExpression)

	_, _, err = execute(t, "", "lti", "--strict", "1/(s+2)")
	require.NoError(t, err)
}
