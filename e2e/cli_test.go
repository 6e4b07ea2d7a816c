package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkaye/rpsgame-go/internal/api"
	"github.com/dkaye/rpsgame-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "rpsgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rpsgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp session file
	sessionFile := filepath.Join(t.TempDir(), "session")

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: sessionFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
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

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type scoreResponse struct {
	PlayerWins int `json:"player_wins"`
	AIWins     int `json:"ai_wins"`
	Ties       int `json:"ties"`
}

type sessionResponse struct {
	ID          string        `json:"id"`
	Round       int           `json:"round"`
	Score       scoreResponse `json:"score"`
	History     []string      `json:"history"`
	LastAIMove  *string       `json:"last_ai_move"`
	LastOutcome *string       `json:"last_outcome"`
}

type playResponse struct {
	Round      int           `json:"round"`
	PlayerMove string        `json:"player_move"`
	AIMove     string        `json:"ai_move"`
	Outcome    string        `json:"outcome"`
	Score      scoreResponse `json:"score"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_SessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create session (ID should be saved in the session file)
	output, err := cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Round)

	// Get without args uses the remembered session
	output, err = cli.run("session", "get")
	require.NoError(t, err, "output: %s", output)

	var shown sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &shown))
	assert.Equal(t, created.ID, shown.ID)

	// Delete it
	output, err = cli.run("session", "delete")
	require.NoError(t, err, "output: %s", output)

	// Get should now fail
	output, err = cli.run("session", "get", created.ID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_PlayRounds(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	moves := []string{"rock", "paper", "scissors", "rock"}
	for i, move := range moves {
		output, err = cli.run("play", move)
		require.NoError(t, err, "round %d output: %s", i+1, output)

		var played playResponse
		require.NoError(t, json.Unmarshal([]byte(output), &played))
		assert.Equal(t, i+1, played.Round)
		assert.Equal(t, move, played.PlayerMove)
		assert.Contains(t, []string{"rock", "paper", "scissors"}, played.AIMove)
		assert.Contains(t, []string{"player_wins", "ai_wins", "tie"}, played.Outcome)
		assert.Equal(t, i+1, played.Score.PlayerWins+played.Score.AIWins+played.Score.Ties)
	}

	// Session state reflects the rounds played
	output, err = cli.run("session", "get")
	require.NoError(t, err, "output: %s", output)

	var shown sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &shown))
	assert.Equal(t, len(moves), shown.Round)
	assert.Equal(t, moves, shown.History)
	require.NotNil(t, shown.LastOutcome)
}

func TestCLI_ResetSession(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)

	for i := 0; i < 3; i++ {
		output, err = cli.run("play", "rock")
		require.NoError(t, err, "output: %s", output)
	}

	output, err = cli.run("session", "reset")
	require.NoError(t, err, "output: %s", output)

	var reset sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &reset))
	assert.Zero(t, reset.Round)
	assert.Empty(t, reset.History)
	assert.Zero(t, reset.Score.PlayerWins+reset.Score.AIWins+reset.Score.Ties)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Play without a session
	output, err := cli.run("play", "rock")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "no session")

	// Invalid move
	output, err = cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("play", "lizard")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid")

	// Non-existent session
	output, err = cli.run("session", "get", "NOSUCHSESSION")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
