package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/get-randomfile/internal/options"
)

func setupTestFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		if strings.HasSuffix(f, "/") {
			require.NoError(t, fsys.MkdirAll(f, 0o755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0o644))
	}
	return fsys
}

// execute runs the root command the way main does, minus fang.
func execute(t *testing.T, fsys afero.Fs, args ...string) (string, int, error) {
	t.Helper()
	a := &app{fs: fsys}
	cmd := a.rootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), a.exitCode, err
}

func TestRun_AcceptTxtOnly(t *testing.T) {
	fsys := setupTestFs(t, "/root/a.txt", "/root/b.log")

	for range 20 {
		out, code, err := execute(t, fsys, "-d", "/root", "-i", `.*\.txt$`)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "/root/a.txt\n", out)
	}
}

func TestRun_NoDirectories(t *testing.T) {
	out, code, err := execute(t, afero.NewMemMapFs(), "-s", "-i", "x")

	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "--dir")
	assert.Contains(t, out, "--include")
	assert.Contains(t, out, "--exclude")
	assert.True(t, strings.HasSuffix(out, options.OrderNote+"\n"))
}

func TestRootCmd_UsageLine(t *testing.T) {
	cmd := (&app{fs: afero.NewMemMapFs()}).rootCmd()

	assert.Equal(t, "get-randomfile", cmd.Name())
	assert.Equal(t, "get-randomfile [flags]", cmd.UseLine())
	assert.Contains(t, cmd.Long, "Usage: get-randomfile -d DIR")
	assert.NotContains(t, cmd.Flags().FlagUsages(), "`")
}

func TestRun_EmptyDirectory(t *testing.T) {
	fsys := setupTestFs(t, "/root/", "/root/sub/")

	out, code, err := execute(t, fsys, "-d", "/root")

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "no-files\n", out)
}

func TestRun_Recursion(t *testing.T) {
	fsys := setupTestFs(t, "/root/nested/c.txt")

	out, _, err := execute(t, fsys, "-d", "/root", "-s")
	require.NoError(t, err)
	assert.Equal(t, "/root/nested/c.txt\n", out)

	out, _, err = execute(t, fsys, "-d", "/root")
	require.NoError(t, err)
	assert.Equal(t, "no-files\n", out)
}

func TestRun_AcceptThenReject(t *testing.T) {
	fsys := setupTestFs(t, "/tmp/skip/x.txt", "/tmp/keep/y.txt")

	out, _, err := execute(t, fsys, "-d", "/tmp", "-s", "-i", `\.txt$`, "-x", "^/tmp/skip")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/keep/y.txt\n", out)
}

func TestRun_InvalidPattern(t *testing.T) {
	fsys := setupTestFs(t, "/root/a.txt")

	out, _, err := execute(t, fsys, "-d", "/root", "-v", "-i", "(")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
	assert.Empty(t, out)
}

func TestRun_Verbose(t *testing.T) {
	fsys := setupTestFs(t, "/root/a.txt", "/root/b.txt", "/root/c.log")

	out, code, err := execute(t, fsys, "-d", "/root", "-v", "-i", `\.txt$`, "-x", "b")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, strings.Join([]string{
		`log: {mode: accept, pattern: \.txt$}`,
		"log: {mode: reject, pattern: b}",
		"log: Found file: /root/a.txt",
		"/root/a.txt",
	}, "\n")+"\n", out)
}

func TestRun_VerboseDefaultRule(t *testing.T) {
	fsys := setupTestFs(t, "/root/")

	out, _, err := execute(t, fsys, "-d", "/root", "-v")
	require.NoError(t, err)
	assert.Equal(t, "log: {mode: accept, pattern: .*}\nno-files\n", out)
}

func TestRun_SeedIsReproducible(t *testing.T) {
	var files []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		files = append(files, "/root/"+name+".txt")
	}
	fsys := setupTestFs(t, files...)

	first, _, err := execute(t, fsys, "-d", "/root", "--seed", "1234")
	require.NoError(t, err)
	for range 10 {
		again, _, err := execute(t, fsys, "-d", "/root", "--seed", "1234")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_DuplicateRootsWeighSelection(t *testing.T) {
	fsys := setupTestFs(t, "/one/a.txt", "/two/b.txt")
	counts := map[string]int{}

	for seed := 1; seed <= 2000; seed++ {
		out, _, err := execute(t, fsys, "-d", "/one", "-d", "/one", "-d", "/two", "--seed", strconv.Itoa(seed))
		require.NoError(t, err)
		counts[strings.TrimSpace(out)]++
	}

	ratio := float64(counts["/one/a.txt"]) / float64(counts["/two/b.txt"])
	assert.InDelta(t, 2.0, ratio, 0.4)
}
