package integration

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/stretchr/testify/require"

	"github.com/pokelens/pokelens/internal/core/pokeapi/pokeapitest"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("standalone binary exec test is unix-focused")
	}

	goModPathBytes, err := exec.Command("go", "env", "GOMOD").Output()
	require.NoError(t, err, "go env GOMOD")
	goModPath := strings.TrimSpace(string(goModPathBytes))
	require.NotEmpty(t, goModPath, "go env GOMOD returned empty")
	repoRoot := filepath.Dir(goModPath)

	binaryPath := filepath.Join(t.TempDir(), "pokelens")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/pokelens")
	build.Dir = repoRoot
	build.Env = os.Environ()
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, string(out))
	}
	return binaryPath
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func TestStandaloneBinaryVersionAndHelp(t *testing.T) {
	binary := buildBinary(t)

	version := exec.Command(binary, "version")
	version.Dir = t.TempDir()
	out, err := version.CombinedOutput()
	require.NoError(t, err, string(out))
	require.True(t, strings.HasPrefix(string(out), "pokelens "))

	help := exec.Command(binary, "--help")
	help.Dir = t.TempDir()
	out, err = help.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "pokelens <pokemon>")
}

func TestStandaloneBinaryLookupExitStatus(t *testing.T) {
	binary := buildBinary(t)

	server := pokeapitest.NewServer()
	defer server.Close()
	server.HandlePokemon(pokeapitest.Pikachu())

	found := exec.Command(binary, "Pikachu")
	found.Env = append(os.Environ(), "POKELENS_API_BASE_URL="+server.BaseURL())
	out, err := found.Output()
	require.NoError(t, err)
	require.Contains(t, string(out), `"pokemon_name": "pikachu"`)

	missing := exec.Command(binary, "notapokemon123")
	missing.Env = append(os.Environ(), "POKELENS_API_BASE_URL="+server.BaseURL())
	out, err = missing.Output()
	require.Equal(t, 0, exitCode(err))
	require.Equal(t,
		"Could not retrieve data for Pokémon: notapokemon123. Please check the name and your internet connection.\n",
		string(out))

	strict := exec.Command(binary, "notapokemon123", "--strict-exit")
	strict.Env = append(os.Environ(), "POKELENS_API_BASE_URL="+server.BaseURL())
	var strictStderr strings.Builder
	strict.Stderr = &strictStderr
	_, err = strict.Output()
	require.Equal(t, int(foundry.ExitExternalServiceUnavailable), exitCode(err))
	require.Contains(t, strictStderr.String(), "Error fetching data: 404 Not Found")
	require.NotContains(t, strictStderr.String(), "main.main")
}

func TestStandaloneBinaryInvalidConfigSkipsUsage(t *testing.T) {
	binary := buildBinary(t)

	invalid := exec.Command(binary, "pikachu", "-o", "csv")
	out, err := invalid.CombinedOutput()
	require.Equal(t, int(foundry.ExitConfigInvalid), exitCode(err))
	require.NotContains(t, string(out), "Usage:")
	require.Contains(t, string(out), "CONFIG_INVALID")
}
