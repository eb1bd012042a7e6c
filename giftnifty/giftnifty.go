package giftnifty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"oilevels/config"
	"oilevels/logger"
)

// Quote is the latest GIFT Nifty print from the scanner API.
type Quote struct {
	Price float64   `json:"price"`
	Time  time.Time `json:"time"`
}

type Fetcher struct {
	cfg    *config.GiftNiftyConfig
	client *http.Client
	log    *logger.Logger
}

func NewFetcher(cfg *config.GiftNiftyConfig) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.GetTimeout()},
		log:    logger.L(),
	}
}

type scanRequest struct {
	Symbols struct {
		Tickers []string `json:"tickers"`
		Query   struct {
			Types []string `json:"types"`
		} `json:"query"`
	} `json:"symbols"`
	Columns []string `json:"columns"`
}

type scanResponse struct {
	Data []struct {
		D []float64 `json:"d"`
	} `json:"data"`
}

// Fetch posts a scanner query for the configured symbol and returns its
// close price and print time.
func (f *Fetcher) Fetch(ctx context.Context) (*Quote, error) {
	var payload scanRequest
	payload.Symbols.Tickers = []string{f.cfg.Symbol}
	payload.Symbols.Query.Types = []string{}
	payload.Columns = []string{"close", "time"}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scanner payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.ScannerURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scanner request: %w", err)
	}
	// The scanner rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scanner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scanner returned status %d", resp.StatusCode)
	}

	var parsed scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode scanner response: %w", err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].D) < 2 {
		return nil, fmt.Errorf("scanner returned no data for %s", f.cfg.Symbol)
	}

	quote := &Quote{
		Price: parsed.Data[0].D[0],
		Time:  time.Unix(int64(parsed.Data[0].D[1]), 0),
	}
	f.log.Debug("Fetched GIFT Nifty quote", map[string]interface{}{
		"price": quote.Price,
		"time":  quote.Time,
	})
	return quote, nil
}
