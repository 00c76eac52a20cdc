package cliapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFASTA(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ">seq\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_MissingFlagsReportsError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)
	require.NotEqual(t, 0, code)
	require.Contains(t, stderr.String(), "error:")
}

func TestRun_EndToEndWritesCSV(t *testing.T) {
	dir := t.TempDir()
	nonTarget := strings.Repeat("TTTTTCCCCCGGGGGAAAAA", 20)
	target := strings.Repeat("ACGUACGUACGUACGUACGU", 20)

	targetPath := writeFASTA(t, dir, "target.fasta", target)
	nonTargetPath := writeFASTA(t, dir, "nontarget.fasta", nonTarget)
	csvOut := filepath.Join(dir, "out.csv")

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{
		"--quiet",
		"--target", targetPath,
		"--non-target", nonTargetPath,
		"--efficacy-threshold", "50",
		"--csv-out", csvOut,
	}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile(csvOut)
	require.NoError(t, err)
	require.Contains(t, string(data), "sequence,position,efficiency,safety_score,gc_content")
}
