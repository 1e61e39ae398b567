package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
)

// BulkAction is one document operation inside a bulk request. The zero
// OpType means "index". Doc is the source document; delete actions carry
// none.
type BulkAction struct {
	OpType  string
	Index   string
	ID      string
	Routing string
	Doc     any
}

// records renders the action as its wire records: the metadata line and,
// for every op type except delete, the source line. Update actions must
// carry their own {"doc": ...} or script wrapper in Doc.
func (a BulkAction) records(s Serializer) ([]any, error) {
	opType := a.OpType
	if opType == "" {
		opType = "index"
	}

	meta := map[string]any{}
	if a.Index != "" {
		meta["_index"] = a.Index
	}
	if a.ID != "" {
		meta["_id"] = a.ID
	}
	if a.Routing != "" {
		meta["routing"] = a.Routing
	}
	line, err := s.Encode(map[string]any{opType: meta})
	if err != nil {
		return nil, wrapSerialization(err)
	}

	if opType == "delete" {
		return []any{json.RawMessage(line)}, nil
	}
	if a.Doc == nil {
		return nil, missingArgument("doc")
	}
	doc, err := s.Encode(a.Doc)
	if err != nil {
		return nil, wrapSerialization(err)
	}
	return []any{json.RawMessage(line), json.RawMessage(doc)}, nil
}

// BulkItemError is one failed item from a bulk response, keyed by its
// position in the submitted action list.
type BulkItemError struct {
	Position int
	OpType   string
	Status   int
	Raw      json.RawMessage
}

// BulkIndexError reports the items a bulk call could not apply.
type BulkIndexError struct {
	Errors []BulkItemError
}

// Error returns a summary of the failed items.
func (e *BulkIndexError) Error() string {
	return fmt.Sprintf("%d bulk item(s) failed", len(e.Errors))
}

// BulkIndexerConfig tunes BulkIndex chunking.
type BulkIndexerConfig struct {
	Index     string // default index for actions that do not name one
	ChunkSize int    // actions per request, default 500
	MaxBytes  int    // payload bytes per request, default 100 MB
	Refresh   string
}

// BulkStats summarizes a BulkIndex run.
type BulkStats struct {
	Succeeded int
	Failed    int
}

// BulkIndex sends actions in chunks and collects per-item failures. The
// actions slice is never mutated. On item failures it returns the stats
// together with a *BulkIndexError listing every rejected item; transport
// and serialization failures abort the run and are returned as-is.
func BulkIndex(ctx context.Context, c *Client, actions []BulkAction, cfg BulkIndexerConfig) (*BulkStats, error) {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 500
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 100 * 1024 * 1024
	}

	stats := &BulkStats{}
	var itemErrs []BulkItemError
	position := 0

	var chunk []any
	var chunkActions, chunkBytes int
	flush := func() error {
		if chunkActions == 0 {
			return nil
		}
		start := position - chunkActions
		if err := bulkFlush(ctx, c, cfg, chunk, start, stats, &itemErrs); err != nil {
			return err
		}
		chunk = chunk[:0]
		chunkActions, chunkBytes = 0, 0
		return nil
	}

	for _, action := range actions {
		records, err := action.records(c.serializer)
		if err != nil {
			return stats, err
		}
		size := 0
		for _, r := range records {
			raw, _ := rawBody(r)
			size += len(raw) + 1
		}
		if chunkActions > 0 && (chunkActions >= chunkSize || chunkBytes+size > maxBytes) {
			if err := flush(); err != nil {
				return stats, err
			}
		}
		chunk = append(chunk, records...)
		chunkActions++
		chunkBytes += size
		position++
	}
	if err := flush(); err != nil {
		return stats, err
	}

	if len(itemErrs) > 0 {
		return stats, &BulkIndexError{Errors: itemErrs}
	}
	return stats, nil
}

// bulkFlush sends one chunk and folds the per-item results into stats.
func bulkFlush(ctx context.Context, c *Client, cfg BulkIndexerConfig, chunk []any, start int, stats *BulkStats, itemErrs *[]BulkItemError) error {
	resp, err := c.Bulk(ctx, BulkRequest{
		Index:   cfg.Index,
		Refresh: cfg.Refresh,
		Body:    chunk,
	})
	if err != nil {
		return err
	}

	var result struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := c.serializer.Decode(resp.Body, &result); err != nil {
		return wrapSerialization(err)
	}

	for i, item := range result.Items {
		for opType, detail := range item {
			if detail.Status >= 300 || len(detail.Error) > 0 {
				stats.Failed++
				*itemErrs = append(*itemErrs, BulkItemError{
					Position: start + i,
					OpType:   opType,
					Status:   detail.Status,
					Raw:      detail.Error,
				})
			} else {
				stats.Succeeded++
			}
		}
	}
	return nil
}

// ScanConfig tunes Scan.
type ScanConfig struct {
	Index  []string
	Query  any    // search body; nil means match_all
	Scroll string // context keep-alive per batch, default 5m
	Size   int    // hits per batch, default 1000
}

// Scan pages through every hit of a search using the scroll API, calling
// fn once per hit with the raw hit JSON. The scroll context is cleared
// when the scan ends, on failure included. A non-nil error from fn stops
// the scan and is returned.
func Scan(ctx context.Context, c *Client, cfg ScanConfig, fn func(hit json.RawMessage) error) error {
	scroll := cfg.Scroll
	if scroll == "" {
		scroll = "5m"
	}
	size := cfg.Size
	if size <= 0 {
		size = 1000
	}

	resp, err := c.Search(ctx, SearchRequest{
		Index:  cfg.Index,
		Body:   cfg.Query,
		Scroll: scroll,
		Size:   Int(size),
	})
	if err != nil {
		return err
	}

	scrollID := ""
	defer func() {
		if scrollID == "" {
			return
		}
		_, _ = c.ClearScroll(ctx, ClearScrollRequest{
			Body: map[string]any{"scroll_id": []string{scrollID}},
		})
	}()

	for {
		var page struct {
			ScrollID string `json:"_scroll_id"`
			Hits     struct {
				Hits []json.RawMessage `json:"hits"`
			} `json:"hits"`
		}
		if err := c.serializer.Decode(resp.Body, &page); err != nil {
			return wrapSerialization(err)
		}
		if page.ScrollID != "" {
			scrollID = page.ScrollID
		}
		if len(page.Hits.Hits) == 0 {
			return nil
		}
		for _, hit := range page.Hits.Hits {
			if err := fn(hit); err != nil {
				return err
			}
		}
		if scrollID == "" {
			return nil
		}

		resp, err = c.Scroll(ctx, ScrollRequest{
			Scroll: scroll,
			Body:   map[string]any{"scroll_id": scrollID},
		})
		if err != nil {
			return err
		}
	}
}
