package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expensetracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runIn(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Cleanup(func() { config.GlobalConfig = nil })

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	err := run(args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), err
}

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "users.db")

	out, err := runIn(t, []string{"-name", "Ada", "-email", "ada@example.com", "-password", "secret123", "-db", dbPath}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "User ada@example.com created successfully")
}

func TestRun_PromptsForPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "users.db")

	out, err := runIn(t, []string{"-name", "Ada", "-email", "ada@example.com", "-db", dbPath}, "secret123\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Password: ")
	assert.Contains(t, out, "created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "users.db")
	args := []string{"-name", "Ada", "-email", "ada@example.com", "-password", "secret123", "-db", dbPath}

	_, err := runIn(t, args, "")
	require.NoError(t, err, "first run should succeed")

	_, err = runIn(t, args, "")
	require.Error(t, err, "expected error on duplicate user")
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_InvalidInput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "users.db")

	_, err := runIn(t, []string{"-name", "Ada", "-email", "ada@example.com", "-password", "123", "-db", dbPath}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestRun_MissingFlags(t *testing.T) {
	out, err := runIn(t, []string{"-password", "secret123"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, out, "Usage: adduser")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
