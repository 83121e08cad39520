// Package alphavantage implements the live quote source on top of the
// AlphaVantage daily time series API.
package alphavantage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"stockemu"
)

const apiKeyEnv = "ALPHAVANTAGE_API_KEY"

const defaultBaseURL = "https://www.alphavantage.co"

// KeyFromEnv returns the API key from the environment, or "".
func KeyFromEnv() string { return os.Getenv(apiKeyEnv) }

// Client fetches daily opening prices from AlphaVantage. It implements
// stockemu.QuoteSource. One fetch retrieves the full daily series of a
// ticker; with a Cache injected, subsequent lookups for the same ticker are
// served locally until the cache entry expires.
type Client struct {
	Key        string
	HTTPClient *http.Client
	BaseURL    string // overridable for tests

	cache *Cache
}

var _ stockemu.QuoteSource = (*Client)(nil)

// New creates a client with the given API key. cache may be nil, in which
// case every lookup fetches.
func New(key string, cache *Cache) *Client {
	return &Client{
		Key:        key,
		HTTPClient: http.DefaultClient,
		BaseURL:    defaultBaseURL,
		cache:      cache,
	}
}

// Price implements stockemu.QuoteSource: it returns the opening price of
// ticker on the given day, fetching (or reusing) the ticker's daily series.
// Days absent from the series (weekends, holidays) fail with
// stockemu.ErrMarketClosed.
func (c *Client) Price(on stockemu.Date, ticker string) (stockemu.Money, error) {
	var series map[string]stockemu.Money
	if c.cache != nil {
		series, _ = c.cache.get(ticker)
	}
	if series == nil {
		var err error
		series, err = c.fetchDaily(ticker)
		if err != nil {
			return stockemu.Money{}, err
		}
		if c.cache != nil {
			c.cache.put(ticker, series)
		}
	}

	price, ok := series[on.String()]
	if !ok {
		return stockemu.Money{}, fmt.Errorf("%w: no %s data on %s", stockemu.ErrMarketClosed, ticker, on)
	}
	return price, nil
}

// fetchDaily retrieves the full daily series for ticker and extracts the
// opening price per day.
func (c *Client) fetchDaily(ticker string) (map[string]stockemu.Money, error) {
	addr := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&outputsize=full&symbol=%s&apikey=%s&datatype=json",
		c.BaseURL, url.QueryEscape(ticker), url.QueryEscape(c.Key))

	var jobj any
	if err := jwget(c.HTTPClient, addr, &jobj); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", stockemu.ErrQuoteNotFound, ticker, err)
	}

	// AlphaVantage reports its failure modes as regular 200 responses with
	// well-known fields instead of the series.
	if note, err := jsonpath.Get("$.Note", jobj); err == nil {
		return nil, fmt.Errorf("%w: %v", stockemu.ErrRateLimited, note)
	}
	if msg, err := jsonpath.Get(`$["Error Message"]`, jobj); err == nil {
		return nil, fmt.Errorf("%w: %s: %v", stockemu.ErrQuoteNotFound, ticker, msg)
	}

	jseries, err := jsonpath.Get(`$["Time Series (Daily)"]`, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: unexpected response shape: %w", stockemu.ErrQuoteNotFound, ticker, err)
	}
	days, ok := jseries.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected response shape", stockemu.ErrQuoteNotFound, ticker)
	}

	series := make(map[string]stockemu.Money, len(days))
	for day, jday := range days {
		fields, ok := jday.(map[string]any)
		if !ok {
			continue
		}
		open, ok := fields["1. open"].(string)
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(open)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad price %q on %s: %w", stockemu.ErrQuoteNotFound, ticker, open, day, err)
		}
		series[day] = stockemu.M(d)
	}
	return series, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	log.Printf("%v %v %v", resp.Request.Method, resp.Request.URL.Host, resp.Status)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
