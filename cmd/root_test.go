package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/errhandler"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/store"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYNAB(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/budgets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"budgets":[{"id":"b1","name":"EU","currency_format":{"iso_code":"EUR"}}]}}`)
	})
	mux.HandleFunc("/budgets/b1/accounts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"accounts":[{"id":"a1","name":"ING","cleared_balance":2651480}]}}`)
	})
	mux.HandleFunc("/budgets/b1/accounts/a1/transactions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"transactions":[
			{"id":"t2","date":"2021-01-15","amount":500000,"cleared":"cleared"},
			{"id":"t3","date":"2021-02-01","amount":651480,"cleared":"cleared"},
			{"id":"t4","date":"2021-02-02","amount":-300000,"cleared":"cleared"},
			{"id":"t5","date":"2021-11-30","amount":-200000,"cleared":"reconciled"},
			{"id":"t6","date":"2022-01-20","amount":500000,"cleared":"cleared"}
		]}}`)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"id":"401","name":"unauthorized","detail":"Unauthorized"}}`)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()

	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	root := NewRootCmd(os.DirFS(".."))
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func baseConfig(srvURL, token, dbPath string) string {
	return fmt.Sprintf(`
year: 2021
conversion_rate: 0.846
token: %s
ynab:
  base_url: %s
database:
  path: %s
`, token, srvURL, dbPath)
}

func TestReportCommand(t *testing.T) {
	srv := newYNAB(t)
	dbPath := filepath.Join(t.TempDir(), "fbar.db")

	t.Run("prints the report", func(t *testing.T) {
		cfgPath := writeConfig(t, baseConfig(srv.URL, "good", dbPath))
		assert.NoError(t, run(t, "--config", cfgPath, "report"))
		assert.NoError(t, run(t, "--config", cfgPath), "report is the default command")
	})

	t.Run("flags override the file", func(t *testing.T) {
		cfgPath := writeConfig(t, baseConfig(srv.URL, "good", dbPath))
		err := run(t, "--config", cfgPath, "report", "--rate=-1")

		var verr *config.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "conversion_rate", verr.Problems[0].Field)
	})

	t.Run("missing settings are reported together", func(t *testing.T) {
		cfgPath := writeConfig(t, fmt.Sprintf("token: good\nynab:\n  base_url: %s\ndatabase:\n  path: %s\n", srv.URL, dbPath))
		err := run(t, "--config", cfgPath, "report")

		var verr *config.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Problems, 2)
	})

	t.Run("bad token fails the run", func(t *testing.T) {
		cfgPath := writeConfig(t, baseConfig(srv.URL, "bad", dbPath))
		err := run(t, "--config", cfgPath, "report")
		assert.ErrorIs(t, err, source.ErrUnauthorized)
	})

	t.Run("unreadable config file", func(t *testing.T) {
		err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "report")
		assert.ErrorContains(t, err, "failed to read config file")
	})
}

func TestSyncThenOfflineReport(t *testing.T) {
	srv := newYNAB(t)
	dbPath := filepath.Join(t.TempDir(), "fbar.db")
	cfgPath := writeConfig(t, baseConfig(srv.URL, "good", dbPath))

	require.NoError(t, run(t, "--config", cfgPath, "sync"))
	assert.FileExists(t, dbPath)

	srv.Close()
	assert.NoError(t, run(t, "--config", cfgPath, "--source", "sqlite", "report"))
	assert.NoError(t, run(t, "--config", cfgPath, "--source", "sqlite", "accounts"))
	assert.Error(t, run(t, "--config", cfgPath, "report"), "remote source is gone")
}

func TestOfflineReport_RequiresSyncedYear(t *testing.T) {
	srv := newYNAB(t)
	cfgPath := writeConfig(t, baseConfig(srv.URL, "good", filepath.Join(t.TempDir(), "fbar.db")))

	require.NoError(t, run(t, "--config", cfgPath, "sync", "--since", "2021-06-01"))

	err := run(t, "--config", cfgPath, "--source", "sqlite", "report")
	assert.ErrorIs(t, err, store.ErrWindowNotSynced)
	assert.Equal(t, 1, errhandler.ExitCode(err))
}

func TestSyncCommand_InvalidSince(t *testing.T) {
	srv := newYNAB(t)
	cfgPath := writeConfig(t, baseConfig(srv.URL, "good", filepath.Join(t.TempDir(), "fbar.db")))

	assert.ErrorContains(t, run(t, "--config", cfgPath, "sync", "--since", "01/01/2021"), "invalid --since date")
}

func TestInfoCommand(t *testing.T) {
	cfgPath := writeConfig(t, "source:\n  kind: sqlite\n")
	assert.NoError(t, run(t, "--config", cfgPath, "info"))
}
