package e2e_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pebbles-game/internal/api"
	"github.com/mcoot/pebbles-game/internal/api/response"
	"github.com/mcoot/pebbles-game/internal/factory"
	"github.com/mcoot/pebbles-game/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "pebbles-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pebbles")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the real server on a free port, backed by SQLite
func startTestServer(t *testing.T) string {
	t.Helper()

	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "pebbles.db"),
	})
	require.NoError(t, err)

	logger := testutil.NopLogger()
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		Hub:            app.Hub,
	})

	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	server := api.NewServer(router, cfg, logger)
	require.NoError(t, server.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Run(ctx); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Log("server did not stop in time")
		}
		app.Close()
	})

	return "http://" + server.Addr()
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp response.HealthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayHardGameToTheEnd(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("start", "--difficulty", "hard", "--pebbles", "15", "--max", "3")
	require.NoError(t, err, "output: %s", output)

	var resp response.ActionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, uint32(15), resp.State.PebblesCount)

	// Whoever moves first, taking one pebble at a time ends the game
	for turns := 0; !resp.State.IsOver; turns++ {
		require.Less(t, turns, 15, "game did not finish")
		before := resp.State.PebblesRemaining

		output, err = cli.run("turn", "1")
		require.NoError(t, err, "output: %s", output)
		require.NoError(t, json.Unmarshal([]byte(output), &resp))
		assert.Less(t, resp.State.PebblesRemaining, before)
	}

	require.NotNil(t, resp.State.Winner)
	assert.Equal(t, uint32(0), resp.State.PebblesRemaining)
	assert.Equal(t, "won", resp.Event.Type)
	assert.Equal(t, *resp.State.Winner, resp.Event.Player)

	// Playing on is refused
	output, err = cli.run("turn", "1")
	assert.Error(t, err)
	assert.Contains(t, output, "GAME_OVER")

	// State is still readable
	output, err = cli.run("state")
	require.NoError(t, err, "output: %s", output)
	var state response.GameState
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.True(t, state.IsOver)
}

func TestCLI_StartTwiceFails(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("start")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("start")
	assert.Error(t, err)
	assert.Contains(t, output, "GAME_ALREADY_INITIALIZED")
}

func TestCLI_GiveUpAndRestart(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// 100 pebbles cannot be finished by a single opening move
	output, err := cli.run("start", "--pebbles", "100", "--max", "5")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("give-up")
	require.NoError(t, err, "output: %s", output)

	var resp response.ActionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "automated", resp.Event.Player)
	assert.True(t, resp.State.IsOver)

	output, err = cli.run("restart", "--difficulty", "hard", "--pebbles", "40", "--max", "4")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.False(t, resp.State.IsOver)
	assert.Equal(t, "hard", resp.State.Difficulty)
	assert.Equal(t, uint32(40), resp.State.PebblesCount)
}

func TestCLI_InvalidConfig(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("start", "--pebbles", "0")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_CONFIG")

	output, err = cli.run("state")
	assert.Error(t, err)
	assert.Contains(t, output, "GAME_NOT_INITIALIZED")
}
