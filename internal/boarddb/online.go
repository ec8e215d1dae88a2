package boarddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/embeddedci/boardcat/internal/board"
	"github.com/embeddedci/boardcat/internal/ctxlog"
)

// DefaultBaseURL is the production board database endpoint.
const DefaultBaseURL = "https://api.boardcat.io"

// boardsPath is the API route listing every board visible to the caller.
const boardsPath = "/api/v4/targets"

// AuthTokenEnvVar names the environment variable carrying the API auth
// token needed to see private boards. Referenced in error messages so a
// 401 points the user at the fix.
const AuthTokenEnvVar = "BOARDCAT_API_AUTH_TOKEN"

// Error kinds for online database failures.
var (
	// ErrBoardAPI indicates the API request failed or returned a
	// non-success status.
	ErrBoardAPI = errors.New("board database API request failed")
	// ErrResponseJSON indicates the API response body could not be
	// decoded.
	ErrResponseJSON = errors.New("invalid JSON received from board database API")
)

// Client talks to the online board database.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient creates an online database client. An empty baseURL selects
// the production endpoint; an empty authToken restricts results to
// public boards.
func NewClient(baseURL, authToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   baseURL,
		authToken: authToken,
	}
}

// FetchBoards retrieves every board visible to the caller from the
// online database.
func (c *Client) FetchBoards(ctx context.Context) ([]board.Board, error) {
	logger := ctxlog.FromContext(ctx)
	url := c.baseURL + boardsPath
	logger.Debug("Fetching boards from online database.", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoardAPI, err)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoardAPI, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: authentication failed for %q, check that %s is set to a valid access token", ErrBoardAPI, url, AuthTokenEnvVar)
	default:
		return nil, fmt.Errorf("%w: HTTP %d received from %q", ErrBoardAPI, resp.StatusCode, url)
	}

	var envelope struct {
		Data []board.OnlineEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResponseJSON, err)
	}

	boards := make([]board.Board, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		boards = append(boards, board.FromOnlineEntry(entry))
	}
	logger.Debug("Fetched boards from online database.", "count", len(boards))

	return boards, nil
}
