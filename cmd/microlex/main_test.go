package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose = "", false
	checkWorkers = 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScan(t *testing.T) {
	out, err := execute(t, "scan", "int", "154216", "-78")
	require.NoError(t, err)
	require.Equal(t, "154216\n-78\n", out)
}

func TestScanNegative(t *testing.T) {
	out, err := execute(t, "scan", "int", "-78")
	require.NoError(t, err)
	require.Equal(t, "-78\n", out)

	out, err = execute(t, "scan", "nzint", "-78", "+45")
	require.NoError(t, err)
	require.Equal(t, "-78\n45\n", out)
}

func TestScanNegativeWithGlobalFlags(t *testing.T) {
	out, err := execute(t, "--verbose", "scan", "nzint", "-0")
	require.ErrorIs(t, err, errRejected)
	require.Contains(t, out, "-0\n ^\nError in symbol 0")
}

func TestScanList(t *testing.T) {
	out, err := execute(t, "scan", "list", "a,b;c")
	require.NoError(t, err)
	require.Equal(t, "abc\n", out)
}

func TestScanRejected(t *testing.T) {
	out, err := execute(t, "scan", "nzint", "+45", "+055")
	require.ErrorIs(t, err, errRejected)
	require.Contains(t, out, "45\n")
	require.Contains(t, out, "+055\n ^\nError in symbol 0")
}

func TestScanUnknownGrammar(t *testing.T) {
	_, err := execute(t, "scan", "float", "1.5")
	require.Error(t, err)
}

func TestSelftest(t *testing.T) {
	out, err := execute(t, "selftest")
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "--workers", "3", "../../lib/testdata/cases")
	require.NoError(t, err)
	require.Contains(t, out, "39 cases, 0 failed")
}

func TestCheckFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.cases"), []byte("grammar id\n\"5\" => 5\n"), 0o644))

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	require.Contains(t, out, `bad.cases:2: FAIL id "5"`)
	require.Contains(t, out, "1 cases, 1 failed")
}

func TestCheckUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.cases"), []byte("grammar alter\n\"f6\" => f6\n"), 0o644))
	cfgPath := filepath.Join(t.TempDir(), "microlex.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("case_dir = \""+filepath.ToSlash(dir)+"\"\nworkers = 2\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "check")
	require.NoError(t, err)
	require.Contains(t, out, "1 cases, 0 failed")
}

func TestColumnRequiresSettings(t *testing.T) {
	_, err := execute(t, "column", "--grammar", "id")
	require.ErrorContains(t, err, "required")
}
