package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"gossipscan/internal/domain"
)

// batchFields restricts each reply item to the join key plus the two country
// columns.
const batchFields = "query,country,countryCode"

const defaultBatchSize = 100

// BatchClient resolves hosts through an ip-api style batch endpoint, one
// POST per chunk of at most batchSize hosts.
type BatchClient struct {
	url       string
	batchSize int
	client    *http.Client
}

func NewBatchClient(url string, batchSize int, timeout time.Duration) *BatchClient {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &BatchClient{
		url:       url,
		batchSize: batchSize,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type batchQuery struct {
	Query  string `json:"query"`
	Fields string `json:"fields"`
}

type batchReply struct {
	Query       string `json:"query"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// Resolve sends the hosts to the batch endpoint chunk by chunk, strictly in
// sequence. A failed chunk is logged and its hosts left out of the result
// while the remaining chunks still run. Reply items that resolved without
// country fields map to the Unknown country.
func (c *BatchClient) Resolve(ctx context.Context, hosts []string) map[string]domain.GeoLocation {
	results := make(map[string]domain.GeoLocation, len(hosts))

	for start := 0; start < len(hosts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(hosts) {
			end = len(hosts)
		}
		chunk := hosts[start:end]

		replies, err := c.resolveChunk(ctx, chunk)
		if err != nil {
			log.Error("Error geolocating batch", "offset", start, "size", len(chunk), "error", err)
			continue
		}

		for _, reply := range replies {
			if reply.Query == "" {
				continue
			}
			results[reply.Query] = domain.GeoLocation{
				CountryCode: orUnknown(reply.CountryCode),
				CountryName: orUnknown(reply.Country),
			}
		}
	}

	return results
}

func (c *BatchClient) resolveChunk(ctx context.Context, chunk []string) ([]batchReply, error) {
	queries := make([]batchQuery, len(chunk))
	for i, host := range chunk {
		queries[i] = batchQuery{Query: host, Fields: batchFields}
	}

	payload, err := json.Marshal(queries)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("batch endpoint returned status %d", resp.StatusCode)
	}

	var replies []batchReply
	if err := json.NewDecoder(resp.Body).Decode(&replies); err != nil {
		return nil, fmt.Errorf("decoding batch response: %w", err)
	}

	return replies, nil
}
