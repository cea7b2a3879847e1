package broker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"wargame/game"
)

// Client talks to a move relay server.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: http.DefaultClient}
}

// PostMove publishes a move played locally so the remote host can pick
// it up.
func (c *Client) PostMove(m game.Move, turn int) error {
	body, err := json.Marshal(TurnMove{Move: m, Turn: turn})
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.baseURL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("broker post: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("broker post: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		return fmt.Errorf("broker post: status %d", resp.StatusCode)
	}
	return nil
}

// GetMove fetches the latest relayed move and reports whether it is the
// one played on the wanted turn. Older or missing moves report false; the
// caller polls again.
func (c *Client) GetMove(turn int) (game.Move, bool, error) {
	resp, err := c.http.Get(c.baseURL + "/move")
	if err != nil {
		return game.Move{}, false, fmt.Errorf("broker get: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return game.Move{}, false, fmt.Errorf("broker get: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		return game.Move{}, false, fmt.Errorf("broker get: status %d", resp.StatusCode)
	}
	if env.Data == nil || env.Data.Turn != turn {
		return game.Move{}, false, nil
	}
	return env.Data.Move, true, nil
}
