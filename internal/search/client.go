// Package search talks to the external shopping-search collaborator,
// a Naver-shopping-compatible keyword search API.
package search

import (
	"context"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/talkincode/selectshop/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Item is one ranked search result. The upstream encodes prices as
// numeric strings.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	LowestPrice int    `json:"lprice,string"`
}

type searchResult struct {
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

type Client struct {
	apiURL       string
	clientID     string
	clientSecret string
	display      int
	timeout      time.Duration
}

func NewClient(cfg config.SearchConfig) *Client {
	display := cfg.Display
	if display <= 0 {
		display = 15
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:       cfg.ApiUrl,
		clientID:     cfg.ClientId,
		clientSecret: cfg.ClientSecret,
		display:      display,
		timeout:      timeout,
	}
}

// SearchItems queries the collaborator with a free-text keyword and
// returns the ranked items. An empty slice is a valid response.
func (c *Client) SearchItems(ctx context.Context, query string) ([]Item, error) {
	var body []byte
	var code int
	err := gout.GET(c.apiURL).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetQuery(gout.H{"query": query, "display": c.display}).
		SetHeader(gout.H{
			"X-Naver-Client-Id":     c.clientID,
			"X-Naver-Client-Secret": c.clientSecret,
		}).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "search request failed")
	}
	if code != http.StatusOK {
		return nil, errors.Errorf("search api returned status %d", code)
	}

	var result searchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}
	return result.Items, nil
}
