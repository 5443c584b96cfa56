package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"econgrads/internal/config"
	"econgrads/internal/enrich"
	"econgrads/internal/fetch"
	"econgrads/internal/scrape"
	"econgrads/internal/secrets"
)

const usage = `usage: econgrads <command> [flags]

commands:
  scrape   run one incremental scrape pass over all tracked schools
  enrich   fill in current placements via the lookup API
  cache    list raw-cache entries
  secret   set|delete the enrichment API token in the OS keychain
`

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("ECONGRADS_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		code int
		err  error
	)
	switch os.Args[1] {
	case "scrape":
		code, err = cmdScrape(ctx, log, os.Args[2:])
	case "enrich":
		err = cmdEnrich(ctx, log, os.Args[2:])
	case "cache":
		err = cmdCache(ctx, os.Args[2:])
	case "secret":
		err = cmdSecret(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	os.Exit(code)
}

// loadConfig bootstraps the user config into the data dir on first run,
// then loads and validates it. Data dir comes from the -data flag, then
// ECONGRADS_DATA_DIR, then the working directory.
func loadConfig(dataDir string) (config.Config, error) {
	if dataDir == "" {
		dataDir = os.Getenv("ECONGRADS_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return config.Config{}, err
	}

	userPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return config.Config{}, fmt.Errorf("config bootstrap: %w", err)
	}
	cfg, err := config.Load(userPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config load (%s): %w", userPath, err)
	}
	cfg.App.DataDir = dataDir
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func cmdScrape(ctx context.Context, log *logrus.Logger, args []string) (int, error) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	force := fs.Bool("force", false, "re-fetch and re-parse every school, ignoring stored hashes")
	dataDir := fs.String("data", "", "data directory (default $ECONGRADS_DATA_DIR or .)")
	fs.Parse(args)

	cfg, err := loadConfig(*dataDir)
	if err != nil {
		return 0, err
	}

	cache, err := fetch.OpenRawCache(cfg.App.DataDir)
	if err != nil {
		return 0, err
	}
	defer cache.Close()

	runner := scrape.NewRunner(cfg, fetch.New(cfg, cache, log), log)
	summary, err := runner.Run(ctx, *force)
	if err != nil {
		return 0, err
	}

	fmt.Print(scrape.FormatSummary(summary))
	return scrape.ExitCode(summary), nil
}

func cmdEnrich(ctx context.Context, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("enrich", flag.ExitOnError)
	dataDir := fs.String("data", "", "data directory (default $ECONGRADS_DATA_DIR or .)")
	fs.Parse(args)

	cfg, err := loadConfig(*dataDir)
	if err != nil {
		return err
	}
	token, err := secrets.GetEnrichToken()
	if err != nil {
		return err
	}

	client := enrich.NewClient(cfg.Enrich.Endpoint, cfg.Enrich.Model, token)
	updated, err := enrich.New(cfg, client, log).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("enriched %d record(s)\n", updated)
	return nil
}

func cmdCache(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	school := fs.String("school", "", "only show entries for one school slug")
	limit := fs.Int("limit", 50, "max entries to list")
	dataDir := fs.String("data", "", "data directory (default $ECONGRADS_DATA_DIR or .)")
	fs.Parse(args)

	cfg, err := loadConfig(*dataDir)
	if err != nil {
		return err
	}

	cache, err := fetch.OpenRawCache(cfg.App.DataDir)
	if err != nil {
		return err
	}
	defer cache.Close()

	entries, err := cache.List(ctx, *school, *limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		h := e.Hash
		if len(h) > 10 {
			h = h[:10]
		}
		fmt.Printf("%s  %-14s %-10s %8d  %s\n",
			e.FetchedAt.Format("2006-01-02 15:04:05"), e.School, h, e.Size, e.Source)
	}
	return nil
}

func cmdSecret(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: econgrads secret set|delete")
	}
	switch args[0] {
	case "set":
		fmt.Fprint(os.Stderr, "enrichment API token: ")
		var token string
		if _, err := fmt.Scanln(&token); err != nil {
			return err
		}
		if err := secrets.SetEnrichToken(strings.TrimSpace(token)); err != nil {
			return err
		}
		fmt.Println("token stored")
		return nil
	case "delete":
		if err := secrets.DeleteEnrichToken(); err != nil {
			return err
		}
		fmt.Println("token deleted")
		return nil
	default:
		return fmt.Errorf("unknown secret subcommand %q", args[0])
	}
}
