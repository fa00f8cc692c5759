package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("var x = 1;\n"), 0644))
	}
}

func TestFiles_CollectsJavaScript(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"index.js",
		"src/app.js",
		"src/component.jsx",
		"src/mod.mjs",
		"README.md",
		"styles.css",
	)

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.js",
		filepath.Join("src", "app.js"),
		filepath.Join("src", "component.jsx"),
		filepath.Join("src", "mod.mjs"),
	}, files)
}

func TestFiles_SkipsWellKnownDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"app.js",
		"node_modules/dep/index.js",
		"dist/bundle.js",
		"build/out.js",
		"coverage/lcov.js",
		".hidden/secret.js",
	)

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, files)
}

func TestFiles_SkipsDotfiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app.js", ".eslintrc.js")

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, files)
}

func TestFiles_HonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app.js", "generated.js", "out/extra.js")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated.js\nout/\n"), 0644))

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, files)
}

func TestFiles_IncludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app.js", "app.test.js", "lib/util.js")

	files, err := Files(root, Options{Include: []string{"**/*.test.js"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.test.js"}, files)
}

func TestFiles_ExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app.js", "app.min.js", "lib/vendor.min.js")

	files, err := Files(root, Options{Exclude: []string{"**/*.min.js"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, files)
}

func TestFiles_ExcludeDirectoryGlob(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app.js", "generated/code.js")

	files, err := Files(root, Options{Exclude: []string{"**/generated/**"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, files)
}

func TestFiles_SortedOutput(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "z.js", "a.js", "m.js")

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "m.js", "z.js"}, files)
}

func TestFiles_EmptyRoot(t *testing.T) {
	files, err := Files(t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMatches(t *testing.T) {
	assert.True(t, matches("a/b/c.js", nil, true))
	assert.False(t, matches("a/b/c.js", nil, false))
	assert.True(t, matches("a/b/c.js", []string{"**/*.js"}, false))
	assert.False(t, matches("a/b/c.ts", []string{"**/*.js"}, false))
	assert.True(t, matches("node_modules/x/y.js", []string{"**/node_modules/**"}, false))
	assert.False(t, matches("src/x.js", []string{"**/node_modules/**"}, false))
	assert.True(t, matches("bundle.min.js", []string{"**/*.min.js"}, false))
}
