package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sitewise/themekit/internal/contrast"
	"github.com/sitewise/themekit/internal/theme"
)

var auditCmd = &cobra.Command{
	Use:   "audit <dir>",
	Short: "Contrast-check every CSS theme in a directory",
	Long: "Audit imports every *.css file under the directory and reports the " +
		"contrast summary for both modes. Exits non-zero when any theme has a " +
		"critical failure.",
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

type auditResult struct {
	path  string
	light contrast.Summary
	dark  contrast.Summary
}

func runAudit(cmd *cobra.Command, args []string) error {
	paths, err := filepath.Glob(filepath.Join(args[0], "*.css"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.css files under %s", args[0])
	}

	var (
		mu      sync.Mutex
		results []auditResult
	)

	g, _ := errgroup.WithContext(cmd.Context())
	for _, path := range paths {
		path := path
		g.Go(func() error {
			styles, err := stylesFromFile(path)
			if err != nil {
				return err
			}

			result := auditResult{
				path:  path,
				light: contrast.Summarize(contrast.CheckAll(styles.Props(theme.ModeLight))),
				dark:  contrast.Summarize(contrast.CheckAll(styles.Props(theme.ModeDark))),
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	criticalFailures := 0
	for _, result := range results {
		criticalFailures += result.light.CriticalFailing + result.dark.CriticalFailing
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tlight %d/%d\tdark %d/%d\n",
			result.path,
			result.light.Passing, result.light.Total,
			result.dark.Passing, result.dark.Total,
		)
	}

	if criticalFailures > 0 {
		return fmt.Errorf("%d critical contrast failure(s) across %d theme(s)", criticalFailures, len(results))
	}
	return nil
}
