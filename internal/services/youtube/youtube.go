// Package youtube talks to the YouTube Data API v3.
package youtube

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/buger/jsonparser"

	"xaudio/internal/domain"
	"xaudio/internal/logger"
)

const (
	defaultSearchURL = "https://youtube.googleapis.com/youtube/v3/search"
	defaultVideosURL = "https://youtube.googleapis.com/youtube/v3/videos"
)

// isoDuration matches the API's ISO-8601 durations, e.g. PT1H2M3S.
var isoDuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

type Client struct {
	apiKey     string
	maxResults int
	httpClient *http.Client
	searchURL  string
	videosURL  string
}

func NewClient(apiKey string, maxResults int) *Client {
	return &Client{
		apiKey:     apiKey,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		searchURL:  defaultSearchURL,
		videosURL:  defaultVideosURL,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet *struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) get(endpoint string, query url.Values) ([]byte, error) {
	query.Set("key", c.apiKey)
	resp, err := c.httpClient.Get(endpoint + "?" + query.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube returned non-200 status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) Search(keyword string) ([]domain.SongEntry, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("order", "relevance")
	query.Set("type", "video")
	query.Set("q", keyword)
	query.Set("maxResults", strconv.Itoa(c.maxResults))

	body, err := c.get(c.searchURL, query)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("could not parse youtube search response: %w", err)
	}

	entries := make([]domain.SongEntry, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Snippet == nil || item.ID.VideoID == "" {
			continue
		}
		entries = append(entries, domain.SongEntry{
			ID:    item.ID.VideoID,
			Title: item.Snippet.Title,
		})
	}
	logger.Log.Infof("youtube search for %q returned %d entries", keyword, len(entries))
	return entries, nil
}

func (c *Client) LookupDuration(id string) (time.Duration, error) {
	query := url.Values{}
	query.Set("part", "contentDetails")
	query.Set("id", id)

	body, err := c.get(c.videosURL, query)
	if err != nil {
		return 0, fmt.Errorf("youtube duration lookup: %w", err)
	}

	raw, err := jsonparser.GetString(body, "items", "[0]", "contentDetails", "duration")
	if err != nil {
		return 0, fmt.Errorf("no duration in videos response for %s: %w", id, err)
	}
	return ParseISODuration(raw)
}

// ParseISODuration converts the API's PT#H#M#S form into a time.Duration.
func ParseISODuration(raw string) (time.Duration, error) {
	captures := isoDuration.FindStringSubmatch(raw)
	if captures == nil {
		return 0, fmt.Errorf("unrecognized duration format: %q", raw)
	}

	var total time.Duration
	for i, unit := range []time.Duration{time.Hour, time.Minute, time.Second} {
		group := captures[i+1]
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return 0, fmt.Errorf("unrecognized duration format: %q", raw)
		}
		total += time.Duration(n) * unit
	}
	return total, nil
}
