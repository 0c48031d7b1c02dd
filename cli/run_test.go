package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prachigauriar/twvalidation/cli"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunValidInstance(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", `{
		"type": "object",
		"properties": {"name": {"type": "string", "minLength": 1}},
		"required": ["name"]
	}`)
	instancePath := writeTempFile(t, dir, "good.json", `{"name": "ok"}`)

	cfg := cli.NewConfig()
	cfg.SchemaPath = schemaPath

	var stdout, stderr bytes.Buffer
	allValid, err := cli.Run(cfg, []string{instancePath}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	require.True(t, allValid)
	require.Contains(t, stdout.String(), "ok")
}

func TestRunInvalidInstanceReportsDetails(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", `{
		"type": "object",
		"properties": {"name": {"type": "string", "minLength": 3}},
		"required": ["name"]
	}`)
	instancePath := writeTempFile(t, dir, "bad.json", `{"name": "x"}`)

	cfg := cli.NewConfig()
	cfg.SchemaPath = schemaPath

	var stdout, stderr bytes.Buffer
	allValid, err := cli.Run(cfg, []string{instancePath}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	require.False(t, allValid)
	require.Contains(t, stdout.String(), "invalid")
	require.Contains(t, stdout.String(), "name")
}

func TestRunAcceptsYAMLSchemaAndInstance(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.yaml", "type: object\nproperties:\n  n:\n    type: integer\nrequired: [n]\n")
	instancePath := writeTempFile(t, dir, "instance.yaml", "n: 5\n")

	cfg := cli.NewConfig()
	cfg.SchemaPath = schemaPath

	var stdout, stderr bytes.Buffer
	allValid, err := cli.Run(cfg, []string{instancePath}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	require.True(t, allValid)
}

func TestRunJSONFormat(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", `{"type": "integer"}`)
	instancePath := writeTempFile(t, dir, "instance.json", `"not an integer"`)

	cfg := cli.NewConfig()
	cfg.SchemaPath = schemaPath
	cfg.Format = "json"

	var stdout, stderr bytes.Buffer
	allValid, err := cli.Run(cfg, []string{instancePath}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	require.False(t, allValid)
	require.Contains(t, stdout.String(), `"valid": false`)
}

func TestRunMissingSchemaFileIsFatal(t *testing.T) {
	cfg := cli.NewConfig()
	cfg.SchemaPath = filepath.Join(t.TempDir(), "does-not-exist.json")

	var stdout, stderr bytes.Buffer
	_, err := cli.Run(cfg, nil, strings.NewReader(""), &stdout, &stderr)
	require.ErrorIs(t, err, cli.ErrReadInput)
}
