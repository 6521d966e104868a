package pretix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nixcon/pretix-github-badge-import/internal/domain"
	"github.com/nixcon/pretix-github-badge-import/internal/httpx"
)

type orderPage struct {
	Results []domain.Order `json:"results"`
	Next    *string        `json:"next"`
}

// OrderIterator walks the paginated orders listing lazily: the next page is
// fetched only once the current one is exhausted. Each call to
// Client.Orders starts over from the first page; mid-stream resume is not
// supported.
type OrderIterator struct {
	client  *Client
	nextURL string
	buf     []domain.Order
	idx     int
	done    bool
}

// Orders lists orders for the configured event, filtered to the "new" and
// "pending" status codes.
func (c *Client) Orders() *OrderIterator {
	q := url.Values{"status": []string{"n", "p"}}
	return &OrderIterator{
		client:  c,
		nextURL: c.eventURL() + "/orders/?" + q.Encode(),
	}
}

// Next yields the next order in listing order. The second return is false
// once the sequence is exhausted. A page fetch failure propagates
// immediately; there is no partial-page retry.
func (it *OrderIterator) Next(ctx context.Context) (domain.Order, bool, error) {
	for it.idx >= len(it.buf) {
		if it.done {
			return domain.Order{}, false, nil
		}
		if err := it.fetchPage(ctx); err != nil {
			return domain.Order{}, false, err
		}
	}
	o := it.buf[it.idx]
	it.idx++
	return o, true, nil
}

func (it *OrderIterator) fetchPage(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, it.nextURL, nil)
	if err != nil {
		return err
	}

	resp, err := it.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckResponse(resp); err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	var page orderPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return fmt.Errorf("decode orders page: %w", err)
	}

	it.buf = page.Results
	it.idx = 0
	if page.Next == nil || *page.Next == "" {
		it.done = true
	} else {
		it.nextURL = *page.Next
	}
	return nil
}
