package cli_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ordersweep/ordersweep/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "ordersweep.yaml")
	content := fmt.Sprintf(`
stores:
  - subdomain: bonappetit
    api_key_env: TEST_BON_APPETIT_KEY
log_file: %s
`, filepath.Join(dir, "run.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCommand_SweepAgainstStubBackend(t *testing.T) {
	var puts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts = append(puts, r.URL.Path)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"orders":[
			{"order_id":"A1","status":"new","created_at":"2020-01-01T00:00:00Z"},
			{"order_id":"A2","status":"fulfilled","created_at":"2020-01-01T00:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	t.Setenv("TEST_BON_APPETIT_KEY", "test-key")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", "--config", cfgPath, "--base-url", srv.URL})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{"/api/v2.6.1/orders/A1"}, puts)
	assert.Contains(t, buf.String(), "Sweep summary")
	assert.Contains(t, buf.String(), "bonappetit")

	logData, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Order A1 updated to 'in_progress' on bonappetit.")
}

func TestRunCommand_DryRunSendsNoPuts(t *testing.T) {
	var puts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
		}
		_, _ = w.Write([]byte(`{"orders":[{"order_id":"A1","status":"new","created_at":"2020-01-01T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	t.Setenv("TEST_BON_APPETIT_KEY", "test-key")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", "--config", cfgPath, "--base-url", srv.URL, "--dry-run"})
	require.NoError(t, cmd.Execute())

	assert.Zero(t, puts)
	assert.Contains(t, buf.String(), "(dry run)")
}

func TestRunCommand_JSONReport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	// key deliberately unset: the store is skipped, no network needed

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", "--config", cfgPath, "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"stores"`)
	assert.Contains(t, buf.String(), `"skipped": true`)
}

func TestRunCommand_MissingKeyExitsZero(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", "--config", cfgPath})
	require.NoError(t, cmd.Execute(), "configuration gaps skip stores, they never fail the run")

	logData, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Missing required configuration for store")
}

func TestRunCommand_MalformedConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordersweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stores: [broken"), 0644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"run", "--config", path})
	assert.Error(t, cmd.Execute())
}
