package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/liammcnabb/spider-man-villain-viz/internal/chart"
	"github.com/liammcnabb/spider-man-villain-viz/internal/config"
	"github.com/liammcnabb/spider-man-villain-viz/internal/dataset"
	"github.com/liammcnabb/spider-man-villain-viz/internal/extract"
	"github.com/liammcnabb/spider-man-villain-viz/internal/ui"
	"github.com/liammcnabb/spider-man-villain-viz/internal/util"
	"github.com/liammcnabb/spider-man-villain-viz/internal/villains"
	"github.com/liammcnabb/spider-man-villain-viz/internal/wiki"
)

var (
	// selection
	flagSeries  string
	flagBaseURL string
	flagFrom    int
	flagTo      int

	// runtime
	flagOutput      string
	flagChartOutput string
	flagDelay       int
	flagForce       bool
	flagDryRun      bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagBypassCF   bool
)

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape per-issue antagonist listings and write the villain dataset plus chart config. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runScrape,
	}

	// selection
	scrapeCmd.Flags().StringVar(&flagSeries, "series", "", "series title as named on the wiki (e.g. \"Amazing Spider-Man\")")
	scrapeCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "wiki base URL")
	scrapeCmd.Flags().IntVar(&flagFrom, "from", 0, "first issue number")
	scrapeCmd.Flags().IntVar(&flagTo, "to", 0, "last issue number")

	// runtime
	scrapeCmd.Flags().StringVar(&flagOutput, "output", "", "output path for the villain dataset JSON")
	scrapeCmd.Flags().StringVar(&flagChartOutput, "chart-output", "", "output path for the chart config JSON")
	scrapeCmd.Flags().IntVar(&flagDelay, "delay", 0, "delay between page fetches in milliseconds")
	scrapeCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite existing output without asking")
	scrapeCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show which pages would be fetched, don’t fetch")

	// headers/auth
	scrapeCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	scrapeCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	scrapeCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	scrapeCmd.Flags().BoolVar(&flagBypassCF, "bypass-cf", false, "enable the Cloudflare bypass transport")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Series:       flagSeries,
		BaseURL:      flagBaseURL,
		FirstIssue:   flagFrom,
		LastIssue:    flagTo,
		DelayMs:      flagDelay,
		Output:       flagOutput,
		ChartOutput:  flagChartOutput,
		Cookie:       flagCookie,
		CookieFile:   flagCookieFile,
		UserAgent:    flagUserAgent,
		BypassCF:     flagBypassCF,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	fmt.Println("Full config:")
	cfg.Print()
	fmt.Println()

	if cfg.FirstIssue > cfg.LastIssue {
		return fmt.Errorf("invalid issue range %d-%d", cfg.FirstIssue, cfg.LastIssue)
	}

	outDir := filepath.Dir(cfg.Output)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		BypassCF:    cfg.BypassCF,
		DebugLogger: logSvc,
	})
	if err != nil {
		return err
	}

	wc := wiki.NewClient(client, cfg.BaseURL, logSvc)
	total := cfg.LastIssue - cfg.FirstIssue + 1

	if flagDryRun {
		fmt.Printf("Dry-run: %d pages would be fetched.\n\n", total)
		for issue := cfg.FirstIssue; issue <= cfg.LastIssue; issue++ {
			fmt.Printf("%4d) %s\n", issue, wc.PageURL(cfg.Series, issue))
		}
		return nil
	}

	if !flagForce {
		if _, err := os.Stat(cfg.Output); err == nil {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Overwrite %s", cfg.Output),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	ctx := context.Background()
	util.SetupInterruptHandler(outDir)

	ex := extract.New(logSvc)
	stats := &ui.Stats{}

	logSvc.Infof("Fetching %d issues of %s\n", total, cfg.Series)

	pm := ui.NewProgressManager()
	handle := pm.Register(cfg.Series, total)
	start := time.Now()

	records, err := wiki.Collect(ctx, wc, ex, wiki.CollectOptions{
		Series: cfg.Series,
		First:  cfg.FirstIssue,
		Last:   cfg.LastIssue,
		Delay:  time.Duration(cfg.DelayMs) * time.Millisecond,
		OnPage: func(rec villains.Record, err error) {
			if err != nil {
				stats.PagesFailed.Add(1)
				handle.MarkFailed()
				logSvc.Debugf("issue %d unavailable: %v\n", rec.Issue, err)
			} else {
				stats.PagesFetched.Add(1)
				stats.NamesExtracted.Add(int64(len(rec.Antagonists)))
			}
			handle.Increment()
		},
	})

	handle.MarkDone()
	pm.Close()

	if err != nil {
		return err
	}

	res, err := villains.Aggregate(records)
	if err != nil {
		return err
	}

	ds := dataset.Build(cfg.Series, res, time.Now().UTC())
	if err := ds.Write(cfg.Output); err != nil {
		return err
	}

	if err := chart.Build(ds).Write(cfg.ChartOutput); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Scrape Summary:")
	fmt.Printf("Pages:         %d fetched, %d failed\n", stats.PagesFetched.Load(), stats.PagesFailed.Load())
	fmt.Printf("Names:         %d extracted\n", stats.NamesExtracted.Load())
	fmt.Printf("Villains:      %d unique\n", ds.Stats.TotalVillains)
	if ds.Stats.MostFrequent != "" {
		fmt.Printf("Most frequent: %s (%d issues)\n", ds.Stats.MostFrequent, ds.Stats.MostFrequentCount)
	}
	fmt.Printf("Dataset:       %s (%s)\n", cfg.Output, util.Human(util.FileSize(cfg.Output)))
	fmt.Printf("Chart config:  %s\n", cfg.ChartOutput)
	fmt.Printf("Time:          %s\n", time.Since(start).Round(time.Second))
	fmt.Println("\nAll done.")

	return nil
}
