package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prachigauriar/twvalidation/cli"
)

func TestRootCommandValidatesThroughCobra(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", `{"type": "string", "minLength": 2}`)
	instancePath := writeTempFile(t, dir, "instance.json", `"ok"`)

	root := cli.NewRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs([]string{"validate", "--schema", schemaPath, instancePath})

	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "ok")
}

func TestRootCommandRequiresSchemaFlag(t *testing.T) {
	dir := t.TempDir()
	instancePath := writeTempFile(t, dir, "instance.json", `"ok"`)

	root := cli.NewRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs([]string{"validate", instancePath})

	require.Error(t, root.Execute())
}

func TestRootCommandExitsNonZeroOnInvalidInstance(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTempFile(t, dir, "schema.json", `{"type": "string", "minLength": 5}`)
	instancePath := writeTempFile(t, dir, "instance.json", `"no"`)

	root := cli.NewRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs([]string{"validate", "--schema", schemaPath, instancePath})

	require.Error(t, root.Execute())
	require.Contains(t, stdout.String(), "invalid")
}
