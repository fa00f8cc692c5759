package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramlint/paramlint/internal/config"
	"github.com/paramlint/paramlint/internal/parser"
	"github.com/paramlint/paramlint/internal/report"
	"github.com/paramlint/paramlint/internal/rule"
	"github.com/paramlint/paramlint/internal/testutil"
	"github.com/paramlint/paramlint/internal/vcs"
	"github.com/paramlint/paramlint/internal/worker"
)

func intPtr(v int) *int { return &v }

// runCheck mirrors the check command's pipeline without the process-level
// side effects (stdout, exit codes).
func runCheck(t *testing.T, root string, cfg *config.ProjectConfig, changed bool) *report.Report {
	t.Helper()

	files, err := lintSet(root, cfg, changed)
	require.NoError(t, err)

	checker := rule.NewMaxParams(cfg.Rules.MaxParams)
	pool := worker.NewPool(2)
	results, err := worker.Run(context.Background(), pool, files, func(ctx context.Context, job worker.Job) ([]rule.Violation, error) {
		p := parser.New()
		file, err := p.ParseFile(ctx, filepath.Join(root, job.Path))
		if err != nil {
			return nil, err
		}
		defer file.Close()

		vs := checker.Check(file)
		for i := range vs {
			vs[i].Path = job.Path
		}
		return vs, nil
	})
	require.NoError(t, err)

	var violations []rule.Violation
	analyzed, skipped := 0, 0
	for _, res := range results {
		if res.Err != nil {
			skipped++
			continue
		}
		violations = append(violations, res.Value...)
		analyzed++
	}

	return report.New(violations, analyzed, skipped, vcs.Head(root))
}

func TestCheckPipeline_FlagsViolations(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"src/app.js": `
class Test {
  constructor(a, b) {}
  method(a, b) {}
  wrongMethod(a, b, c, d, e) {}
}
`,
		"src/ok.js":  `function fine(a, b) {}`,
		"README.md":  "# demo\n",
		"styles.css": "body {}\n",
	})

	cfg := config.DefaultProjectConfig()
	cfg.Rules.MaxParams.Func = intPtr(2)
	cfg.Rules.MaxParams.Constructor = intPtr(3)

	rep := runCheck(t, root, cfg, false)

	assert.False(t, rep.Passed)
	assert.Equal(t, 1, rep.ExitCode)
	assert.Equal(t, 2, rep.Summary.FilesAnalyzed)
	require.Len(t, rep.Violations, 1)

	v := rep.Violations[0]
	assert.Equal(t, filepath.Join("src", "app.js"), v.Path)
	assert.Equal(t, "Method 'wrongMethod' has too many parameters (5). Maximum allowed is 2.", v.Message)
	assert.Equal(t, 5, v.Line)
	assert.Equal(t, 3, v.Column)
}

func TestCheckPipeline_CleanProjectPasses(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.js": `function f(a) {}`,
		"b.js": `var g = (a, b) => a + b;`,
	})

	rep := runCheck(t, root, config.DefaultProjectConfig(), false)

	assert.True(t, rep.Passed)
	assert.Equal(t, 0, rep.ExitCode)
	assert.Equal(t, 2, rep.Summary.FilesAnalyzed)
	assert.Empty(t, rep.Violations)
}

func TestCheckPipeline_CommitRecorded(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"a.js": `function f(a) {}`,
	})
	sha := testutil.InitRepo(t, root)

	rep := runCheck(t, root, config.DefaultProjectConfig(), false)
	assert.Equal(t, sha, rep.Commit)
}

func TestLintSet_ChangedOnly(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"stale.js": `function f(a) {}`,
	})
	testutil.InitRepo(t, root)

	// A file added after the commit is the only changed one.
	require.NoError(t, os.WriteFile(filepath.Join(root, "new.js"), []byte(`function h(a) {}`), 0644))

	cfg := config.DefaultProjectConfig()
	files, err := lintSet(root, cfg, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.js"}, files)

	all, err := lintSet(root, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.js", "stale.js"}, all)
}
