package feedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LivePlay é a fatia mínima de uma aposta ao vivo que o simulador
// precisa conhecer pra fabricar os ticks
type LivePlay struct {
	ID        string    `json:"id"`
	League    string    `json:"league"`
	Market    string    `json:"market"`
	Line      string    `json:"line"`
	StartTime time.Time `json:"startTime"`
}

// Client consulta o feed-service pra descobrir as apostas ao vivo
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// LivePlays busca o bucket "live" de /v1/plays
func (c *Client) LivePlays(ctx context.Context) ([]LivePlay, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/plays", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("feed plays http %d", res.StatusCode)
	}

	var out struct {
		Live []LivePlay `json:"live"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Live, nil
}
