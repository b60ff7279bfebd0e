package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/zealdoc"
	main "github.com/fwojciec/zealdoc/cmd/zealdoc"
	"github.com/fwojciec/zealdoc/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main isolated from the host environment.
func newTestMain(t *testing.T, env map[string]string) *main.Main {
	t.Helper()

	return &main.Main{
		DefaultDocsetsDir: filepath.Join(t.TempDir(), "missing"),
		ConfigPath:        filepath.Join(t.TempDir(), "config.yaml"),
		Getenv:            func(key string) string { return env[key] },
		LookPath:          func(file string) (string, error) { return "/usr/bin/" + file, nil },
		IsTerminal:        func(io.Writer) bool { return false },
	}
}

// nodeDocsets creates a docsets directory holding a NodeJS docset.
func nodeDocsets(t *testing.T) (string, *zealdoc.Docset) {
	t.Helper()

	dir := t.TempDir()
	docset := sqlitetest.NewDocset(t, dir, "NodeJS",
		&zealdoc.Record{Name: "ReadStream", Kind: "Class", Path: "fs/ReadStream.html"},
		&zealdoc.Record{Name: "readFile", Kind: "Function", Path: "fs/readFile.html"},
		&zealdoc.Record{Name: "readdir", Kind: "Function", Path: "fs/readdir.html"},
	)
	return dir, docset
}

func run(t *testing.T, m *main.Main, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("prints fuzzy matches as tab separated columns", func(t *testing.T) {
		t.Parallel()

		dir, docset := nodeDocsets(t)

		stdout, stderr, err := run(t, newTestMain(t, nil), "--docsets-dir", dir, "search", "NodeJS", "readf")

		require.NoError(t, err)
		want := "\treadFile\tFunction\t" + filepath.Join(docset.DocumentsPath(), "fs", "readFile.html") + "\n"
		assert.Equal(t, want, stdout)
		assert.Empty(t, stderr)
	})

	t.Run("lists every entry alphabetically without a query", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "search", "NodeJS")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "\treaddir\t"))
		assert.True(t, strings.HasPrefix(lines[1], "\treadFile\t"))
		assert.True(t, strings.HasPrefix(lines[2], "\tReadStream\t"))
	})

	t.Run("joins query words with spaces", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sqlitetest.NewDocset(t, dir, "Python",
			&zealdoc.Record{Name: "with statement", Kind: "Guide", Path: "reference/compound_stmts.html"},
			&zealdoc.Record{Name: "within", Kind: "Function", Path: "within.html"},
		)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "search", "Python", "with", "statement")

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(stdout, "\n"))
		assert.Contains(t, stdout, "\twith statement\t")
	})

	t.Run("accepts the docset extension", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "search", "NodeJS.docset", "readf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "readFile")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "search", "NodeJS", "zzz")

		require.NoError(t, err)
		assert.Equal(t, "No results found for 'zzz' in docset 'NodeJS'\n", stdout)
	})

	t.Run("decorates results with glyphs", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "--icons", "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "ƒ\treadFile\tFunction\t"), stdout)
	})

	t.Run("colours glyphs when asked to", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "--icons", "--color", "always", "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "\x1b[36mƒ\x1b[0m\treadFile\t"), stdout)
	})

	t.Run("colours glyphs on a terminal unless NO_COLOR is set", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		m := newTestMain(t, nil)
		m.IsTerminal = func(io.Writer) bool { return true }
		stdout, _, err := run(t, m, "-d", dir, "-i", "search", "NodeJS", "readf")
		require.NoError(t, err)
		assert.Contains(t, stdout, "\x1b[36m")

		m = newTestMain(t, map[string]string{"NO_COLOR": "1"})
		m.IsTerminal = func(io.Writer) bool { return true }
		stdout, _, err = run(t, m, "-d", dir, "-i", "search", "NodeJS", "readf")
		require.NoError(t, err)
		assert.NotContains(t, stdout, "\x1b[")
	})

	t.Run("rejects unknown colour modes", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, stderr, err := run(t, newTestMain(t, nil), "-d", dir, "--color", "rainbow", "search", "NodeJS")

		assert.Equal(t, zealdoc.EINVALID, zealdoc.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "rainbow")
	})

	t.Run("fails without output when the index is unavailable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "Broken.docset", "Contents", "Resources"), 0755))

		stdout, stderr, err := run(t, newTestMain(t, nil), "-d", dir, "search", "Broken", "x")

		assert.Equal(t, zealdoc.EUNAVAILABLE, zealdoc.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "error:")
		assert.Contains(t, stderr, `"Broken"`)
	})

	t.Run("suggests installed docsets for unknown names", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, stderr, err := run(t, newTestMain(t, nil), "-d", dir, "search", "nde", "x")

		assert.Equal(t, zealdoc.ENOTFOUND, zealdoc.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, `docset "nde" not found`)
		assert.Contains(t, stderr, "Did you mean: NodeJS?")
	})
}

func TestMain_Run_Settings(t *testing.T) {
	t.Parallel()

	t.Run("reads docsets directory from the environment", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, map[string]string{"ZEALDOC_DOCSETS_DIR": dir}), "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "readFile")
	})

	t.Run("flag takes precedence over the environment", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)
		env := map[string]string{"ZEALDOC_DOCSETS_DIR": filepath.Join(t.TempDir(), "nowhere")}

		stdout, _, err := run(t, newTestMain(t, env), "-d", dir, "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "readFile")
	})

	t.Run("reads settings from the config file", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)
		m := newTestMain(t, nil)
		config := "docsets_dir: " + dir + "\nicons: true\nglyphs:\n  function:\n    symbol: fn\n"
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte(config), 0644))

		stdout, _, err := run(t, m, "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "fn\treadFile\t"), stdout)
	})

	t.Run("reads config path from the environment", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("docsets_dir: "+dir+"\n"), 0644))

		stdout, _, err := run(t, newTestMain(t, map[string]string{"ZEALDOC_CONFIG": path}), "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "readFile")
	})

	t.Run("rejects invalid config files", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, nil)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("glyphs:\n  widget:\n    symbol: w\n"), 0644))

		_, stderr, err := run(t, m, "list-docsets")

		assert.Equal(t, zealdoc.EINVALID, zealdoc.ErrorCode(err))
		assert.Contains(t, stderr, "widget")
	})

	t.Run("warns when the viewer is not installed", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)
		m := newTestMain(t, nil)
		m.LookPath = func(string) (string, error) { return "", errors.New("not found") }

		stdout, stderr, err := run(t, m, "-d", dir, "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "readFile")
		assert.Equal(t, "Cannot find binary `zeal`\n", stderr)
	})

	t.Run("looks for the configured viewer", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t, nil)
		require.NoError(t, os.WriteFile(m.ConfigPath, []byte("viewer: dash\n"), 0644))
		var looked string
		m.LookPath = func(file string) (string, error) {
			looked = file
			return "", errors.New("not found")
		}

		_, stderr, _ := run(t, m, "-d", t.TempDir(), "list-docsets")

		assert.Equal(t, "dash", looked)
		assert.Contains(t, stderr, "Cannot find binary `dash`")
	})

	t.Run("logs operations with debug enabled", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		_, stderr, err := run(t, newTestMain(t, nil), "-d", dir, "--debug", "search", "NodeJS", "readf")

		require.NoError(t, err)
		assert.Contains(t, stderr, "msg=search")
		assert.Contains(t, stderr, `msg="open index"`)
		assert.Contains(t, stderr, `msg="find docset"`)
	})
}

func TestMain_Run_ListDocsets(t *testing.T) {
	t.Parallel()

	t.Run("lists docsets with display name and platform", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		node := sqlitetest.NewDocset(t, dir, "NodeJS")
		sqlitetest.WriteInfo(t, node, "nodejs", "Node.js", "nodejs")
		sqlitetest.NewDocset(t, dir, "Go")

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "list-docsets")

		require.NoError(t, err)
		assert.Equal(t, "Go\tGo\t\nNodeJS\tNode.js\tnodejs\n", stdout)
	})

	t.Run("supports the ls alias", func(t *testing.T) {
		t.Parallel()

		dir, _ := nodeDocsets(t)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "ls")

		require.NoError(t, err)
		assert.Contains(t, stdout, "NodeJS")
	})

	t.Run("reports an empty docsets directory", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(t, nil), "-d", t.TempDir(), "list-docsets")

		require.NoError(t, err)
		assert.Equal(t, "No docsets found.\n", stdout)
	})

	t.Run("fails for a missing docsets directory", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, newTestMain(t, nil), "list-docsets")

		assert.Equal(t, zealdoc.ENOTFOUND, zealdoc.ErrorCode(err))
		assert.Contains(t, stderr, "does not exist")
	})
}

func TestMain_Run_Show(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>fs</title></head><body>
<h2 id="fs_readfile">fs.readFile(path, callback)</h2>
<p>Asynchronously reads the entire contents of a file.</p>
<h2 id="fs_writefile">fs.writeFile(file, data, callback)</h2>
<p>Asynchronously writes data to a file.</p>
</body></html>`

	t.Run("prints the anchored section as Markdown", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		docset := sqlitetest.NewDocset(t, dir, "NodeJS",
			&zealdoc.Record{Name: "readFile", Kind: "Function", Path: "<dash_entry_name=readFile>api/fs.html#fs_readfile"},
		)
		sqlitetest.WriteDocument(t, docset, "api/fs.html", page)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "show", "NodeJS", "readFile")

		require.NoError(t, err)
		assert.Contains(t, stdout, "## fs.readFile(path, callback)")
		assert.Contains(t, stdout, "Asynchronously reads the entire contents of a file.")
		assert.NotContains(t, stdout, "writes data")
	})

	t.Run("shows the nth result", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		docset := sqlitetest.NewDocset(t, dir, "NodeJS",
			&zealdoc.Record{Name: "readFile", Kind: "Function", Path: "api/fs.html#fs_readfile"},
			&zealdoc.Record{Name: "writeFile", Kind: "Function", Path: "api/fs.html#fs_writefile"},
		)
		sqlitetest.WriteDocument(t, docset, "api/fs.html", page)

		stdout, _, err := run(t, newTestMain(t, nil), "-d", dir, "show", "--nth", "2", "NodeJS")

		require.NoError(t, err)
		assert.Contains(t, stdout, "writes data")
		assert.NotContains(t, stdout, "reads the entire contents")
	})

	t.Run("rejects online documents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sqlitetest.NewDocset(t, dir, "NodeJS",
			&zealdoc.Record{Name: "readFile", Kind: "Function", Path: "https://nodejs.org/api/fs.html#fs_readfile"},
		)

		stdout, stderr, err := run(t, newTestMain(t, nil), "-d", dir, "show", "NodeJS", "readFile")

		assert.Equal(t, zealdoc.EINVALID, zealdoc.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "https://nodejs.org/api/fs.html")
	})
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	t.Run("help lists every command", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newTestMain(t, nil), "--help")

		require.NoError(t, err)
		for _, cmd := range []string{"list-docsets", "search", "show"} {
			assert.Contains(t, stdout, cmd)
		}
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "Flags:")
	})

	t.Run("no arguments prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, newTestMain(t, nil))

		require.Error(t, err)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stderr, "no command specified")
	})

	t.Run("unknown commands fail", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, newTestMain(t, nil), "frobnicate")

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})
}
