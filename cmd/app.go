// Package cmd implements the CLI application to manage simulated portfolios.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"stockemu"
	"stockemu/alphavantage"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "portfolios")
	c.Register(&openCmd{}, "portfolios")
	c.Register(&saveCmd{}, "portfolios")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&detailCmd{}, "reports")
	c.Register(&costBasisCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")

	c.Register(&strategyCmd{}, "strategies")
	c.Register(&investCmd{}, "strategies")
	c.Register(&investEqualCmd{}, "strategies")
	c.Register(&dcaCmd{}, "strategies")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", ".semu", "Path to the folder holding portfolio and strategy files")
var apiKey = flag.String("key", "", "AlphaVantage API key (defaults to the ALPHAVANTAGE_API_KEY environment variable)")

// quote series barely move within a day, a long TTL keeps replays off the network.
const cacheTTL = 24 * time.Hour

var sharedCache = alphavantage.NewCache(cacheTTL)

// quoteSource builds the live quote source from the -key flag, falling
// back to the environment.
func quoteSource() stockemu.QuoteSource {
	key := *apiKey
	if key == "" {
		key = alphavantage.KeyFromEnv()
	}
	return alphavantage.New(key, sharedCache)
}

func portfolioFile(index int) string {
	return filepath.Join(*dataDir, fmt.Sprintf("portfolio-%d.json", index))
}

func strategyFile(index int, name string) string {
	return filepath.Join(*dataDir, fmt.Sprintf("strategy-%d-%s.json", index, name))
}

// loadRegistry rebuilds the registry from the data folder. A missing
// folder is an empty registry, not an error.
func loadRegistry() (*stockemu.Registry, error) {
	quotes := quoteSource()
	r := stockemu.NewRegistry(quotes)

	files, err := filepath.Glob(filepath.Join(*dataDir, "portfolio-*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return r, nil
	}
	// File names carry the portfolio index, sort numerically to keep
	// indexes stable across invocations.
	sort.Slice(files, func(i, j int) bool {
		return portfolioIndex(files[i]) < portfolioIndex(files[j])
	})

	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("cannot open portfolio file %q: %w", file, err)
		}
		p, err := stockemu.DecodePortfolio(f, quotes)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot load portfolio file %q: %w", file, err)
		}
		if err := r.AddPortfolio(p); err != nil {
			return nil, err
		}
	}

	if err := loadStrategies(r); err != nil {
		return nil, err
	}
	return r, nil
}

func loadStrategies(r *stockemu.Registry) error {
	files, err := filepath.Glob(filepath.Join(*dataDir, "strategy-*.json"))
	if err != nil {
		return err
	}
	for _, file := range files {
		index, ok := strategyIndex(file)
		if !ok || index >= r.Count() {
			log.Printf("warning, ignoring stray strategy file %q", file)
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("cannot open strategy file %q: %w", file, err)
		}
		s, err := stockemu.DecodeStrategy(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("cannot load strategy file %q: %w", file, err)
		}
		p, err := r.Portfolio(index)
		if err != nil {
			return err
		}
		if err := p.DefineStrategy(s); err != nil {
			return err
		}
	}
	return nil
}

// saveRegistry writes every portfolio and strategy back to the data folder.
func saveRegistry(r *stockemu.Registry) error {
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		return err
	}
	for i := 0; i < r.Count(); i++ {
		p, err := r.Portfolio(i)
		if err != nil {
			return err
		}
		if err := writePortfolio(portfolioFile(i), p); err != nil {
			return err
		}
		for _, name := range p.StrategyNames() {
			s, err := p.Strategy(name)
			if err != nil {
				return err
			}
			if err := writeStrategy(strategyFile(i, name), s); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePortfolio(file string, p *stockemu.Portfolio) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cannot create portfolio file %q: %w", file, err)
	}
	defer f.Close()
	return stockemu.EncodePortfolio(f, p)
}

func writeStrategy(file string, s stockemu.Strategy) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cannot create strategy file %q: %w", file, err)
	}
	defer f.Close()
	return stockemu.EncodeStrategy(f, s)
}

func portfolioIndex(file string) int {
	base := strings.TrimSuffix(filepath.Base(file), ".json")
	n, err := strconv.Atoi(strings.TrimPrefix(base, "portfolio-"))
	if err != nil {
		return -1
	}
	return n
}

func strategyIndex(file string) (int, bool) {
	base := strings.TrimSuffix(filepath.Base(file), ".json")
	rest, ok := strings.CutPrefix(base, "strategy-")
	if !ok {
		return 0, false
	}
	num, _, ok := strings.Cut(rest, "-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseMoment parses a -at style flag, defaulting to now when empty.
func parseMoment(s string) (stockemu.Datetime, error) {
	if s == "" {
		return stockemu.Now(), nil
	}
	return stockemu.ParseDatetime(s)
}

// parseWeights parses a "TICKER:WEIGHT,TICKER:WEIGHT" flag value.
func parseWeights(s string) (map[string]stockemu.Percent, error) {
	weights := make(map[string]stockemu.Percent)
	for _, pair := range strings.Split(s, ",") {
		ticker, weight, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q, expected TICKER:WEIGHT", pair)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value in %q: %w", pair, err)
		}
		weights[strings.TrimSpace(ticker)] = stockemu.Percent(w)
	}
	return weights, nil
}
