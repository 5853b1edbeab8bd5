package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ordersweep/ordersweep/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "ordersweep")
}

func TestStoresCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	t.Setenv("TEST_BON_APPETIT_KEY", "test-key")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"stores", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "bonappetit")
	assert.Contains(t, buf.String(), "TEST_BON_APPETIT_KEY")
	assert.Contains(t, buf.String(), "key resolved")
	assert.NotContains(t, buf.String(), "test-key", "key values are never printed")
}

func TestStoresCommand_MissingKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"stores", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "key missing")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"init", dir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "ordersweep.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stores:")
	assert.Contains(t, string(data), "centricity-test-store")
	assert.Contains(t, string(data), "CENTRICITY_TEST_STORE_API_KEY")
}

func TestInitCommand_RefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordersweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stores: []\n"), 0644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"init", dir})
	assert.Error(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"init", dir, "--force"})
	assert.NoError(t, cmd.Execute())
}
