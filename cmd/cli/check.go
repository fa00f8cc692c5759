package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paramlint/paramlint/internal/config"
	"github.com/paramlint/paramlint/internal/discover"
	"github.com/paramlint/paramlint/internal/parser"
	"github.com/paramlint/paramlint/internal/report"
	"github.com/paramlint/paramlint/internal/rule"
	"github.com/paramlint/paramlint/internal/vcs"
	"github.com/paramlint/paramlint/internal/worker"
)

func checkCmd() *cobra.Command {
	var (
		funcLimit  int
		ctorLimit  int
		format     string
		configPath string
		changed    bool
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Lint JavaScript files for excessive parameter counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			var cfg *config.ProjectConfig
			var err error
			if configPath != "" {
				cfg, err = config.LoadProjectConfigFile(configPath)
			} else {
				cfg, err = config.LoadProjectConfig(root)
			}
			if err != nil {
				return err
			}

			overrides := &config.ProjectConfig{Report: config.ReportConfig{Format: format}}
			if cmd.Flags().Changed("func") {
				overrides.Rules.MaxParams.Func = &funcLimit
			}
			if cmd.Flags().Changed("constructor") {
				overrides.Rules.MaxParams.Constructor = &ctorLimit
			}
			cfg.Merge(overrides)

			if err := cfg.Validate(); err != nil {
				return err
			}

			files, err := lintSet(root, cfg, changed)
			if err != nil {
				return err
			}

			log.Debug().Int("files", len(files)).Int("workers", jobs).Str("root", root).Msg("running check")

			checker := rule.NewMaxParams(cfg.Rules.MaxParams)

			pool := worker.NewPool(jobs)
			results, err := worker.Run(ctx, pool, files, func(ctx context.Context, job worker.Job) ([]rule.Violation, error) {
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
			if err != nil {
				return err
			}

			var violations []rule.Violation
			analyzed, skipped := 0, 0
			for _, res := range results {
				if res.Err != nil {
					log.Warn().Err(res.Err).Str("file", res.Job.Path).Msg("skipping file")
					skipped++
					continue
				}
				violations = append(violations, res.Value...)
				analyzed++
			}

			rep := report.New(violations, analyzed, skipped, vcs.Head(root))
			if cfg.Report.Format == config.FormatJSON {
				err = rep.RenderJSON(os.Stdout)
			} else {
				err = rep.RenderText(os.Stdout)
			}
			if err != nil {
				return err
			}

			if !rep.Passed {
				os.Exit(rep.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&funcLimit, "func", 0, "Maximum parameters for functions and methods")
	cmd.Flags().IntVar(&ctorLimit, "constructor", 0, "Maximum parameters for class constructors")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (text, json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a .paramlint.yaml")
	cmd.Flags().BoolVar(&changed, "changed", false, "Lint only files changed in the git worktree")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel lint workers (0 = one per CPU)")

	return cmd
}

// lintSet resolves the files to lint: the discovered set, or with --changed
// the git-modified subset of it.
func lintSet(root string, cfg *config.ProjectConfig, changed bool) ([]string, error) {
	files, err := discover.Files(root, discover.Options{
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return files, nil
	}

	changedFiles, err := vcs.ChangedFiles(root)
	if err != nil {
		return nil, err
	}
	changedSet := make(map[string]struct{}, len(changedFiles))
	for _, f := range changedFiles {
		changedSet[f] = struct{}{}
	}

	var out []string
	for _, f := range files {
		if _, ok := changedSet[f]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}
