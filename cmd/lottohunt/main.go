package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lottohunt/lottohunt/internal/draw"
	"github.com/lottohunt/lottohunt/internal/search"
	"github.com/lottohunt/lottohunt/internal/stats"
)

type CLI struct {
	Range     int           `help:"Size of the number pool; draws use 1..range (default 49)"`
	Pick      int           `help:"Numbers drawn per combination (default 6)"`
	BatchSize int           `name:"batch-size" help:"Draws per worker between counter flushes (default 100000)"`
	Workers   int           `help:"Worker goroutines (default: one per CPU)"`
	Seed      int64         `help:"RNG seed (default: time-based)"`
	Target    string        `help:"Comma-separated target combination (default: drawn at random)"`
	Runs      int           `default:"1" help:"Number of independent searches to run"`
	Progress  time.Duration `default:"5s" help:"Progress report interval (0 to disable)"`
	Config    string        `type:"path" help:"HCL config file"`
	Verbose   bool          `short:"v" help:"Verbose logging"`
}

var (
	hitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lottohunt"),
		kong.Description("Brute-force search for a lottery draw across all CPU cores"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	cfg, err := buildConfig(cli)
	ctx.FatalIfErrorf(err)

	summary := &stats.Summary{}
	for run := 0; run < cli.Runs; run++ {
		runCfg := cfg
		if cfg.Seed != 0 {
			// Independent but reproducible seed per run
			runCfg.Seed = cfg.Seed + int64(run)
		}

		eng, err := search.New(runCfg,
			search.WithLogger(logger),
			search.WithProgressInterval(cli.Progress),
		)
		ctx.FatalIfErrorf(err)

		fmt.Printf("Searching for %s (mask %s) with %d workers, batch %d\n",
			draw.Format(eng.Target()), eng.Mask(), eng.Workers(), runCfg.BatchSize)

		res, err := eng.Run(context.Background())
		ctx.FatalIfErrorf(err)

		printResult(res)
		summary.Add(float64(res.Draws))
	}

	if cli.Runs > 1 {
		printSummary(summary)
	}

	ctx.Exit(0)
}

// buildConfig resolves the effective configuration: flags override the
// config file, which overrides the built-in 6-of-49 defaults.
func buildConfig(cli CLI) (search.Config, error) {
	cfg := search.DefaultConfig()

	if cli.Config != "" {
		var err error
		cfg, err = search.LoadConfig(cli.Config)
		if err != nil {
			return cfg, err
		}
	}

	if cli.Range > 0 {
		cfg.Range = cli.Range
	}
	if cli.Pick > 0 {
		cfg.Pick = cli.Pick
	}
	if cli.BatchSize > 0 {
		cfg.BatchSize = cli.BatchSize
	}
	if cli.Workers > 0 {
		cfg.Workers = cli.Workers
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.Target != "" {
		target, err := parseTarget(cli.Target)
		if err != nil {
			return cfg, err
		}
		cfg.Target = target
	}
	if cli.Runs < 1 {
		return cfg, fmt.Errorf("runs must be at least 1, got %d", cli.Runs)
	}

	return cfg, nil
}

func parseTarget(s string) ([]uint8, error) {
	parts := strings.Split(s, ",")
	target := make([]uint8, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid target value %q: %w", part, err)
		}
		if v < 1 || v > draw.MaxRange {
			return nil, fmt.Errorf("target value %d outside 1..%d", v, draw.MaxRange)
		}
		target = append(target, uint8(v))
	}
	return target, nil
}

func printResult(res *search.Result) {
	fmt.Println(hitStyle.Render(fmt.Sprintf("Hit %s after %d draws",
		draw.Format(res.Target), res.Draws)))
	fmt.Printf("Total draws: %d\n", res.Draws)
	fmt.Printf("Elapsed:     %.3fs\n", res.Elapsed.Seconds())
	fmt.Printf("Throughput:  %.0f draws/sec\n", res.PerSecond())
	fmt.Println(dimStyle.Render(fmt.Sprintf("worker %d won, seed %d", res.Winner, res.Seed)))
	fmt.Println()
}

func printSummary(s *stats.Summary) {
	low, high := s.ConfidenceInterval95()

	fmt.Printf("=== SUMMARY over %d runs ===\n", s.Runs)
	fmt.Printf("Mean draws:   %.0f\n", s.Mean())
	fmt.Printf("Median draws: %.0f\n", s.Median())
	fmt.Printf("Std dev:      %.0f\n", s.StdDev())
	fmt.Printf("95%% CI:       [%.0f, %.0f]\n", low, high)
	fmt.Printf("Min/Max:      %.0f / %.0f\n", s.MinDraws, s.MaxDraws)
}
