// Package videometa looks up YouTube video metadata through the YouTube Data
// API v3.
package videometa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
)

// Info is the metadata kept for a library video. Duration is in seconds.
type Info struct {
	VideoID    string   `json:"video_id"`
	Title      string   `json:"title"`
	Channel    string   `json:"channel"`
	Duration   int64    `json:"duration"`
	ViewCount  int64    `json:"view_count"`
	LikeCount  int64    `json:"like_count"`
	ChannelID  string   `json:"channel_id"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// Fetcher resolves a video URL to its metadata. Every failure wraps
// common.ErrVideoUnavailable.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Info, error)
}

// DefaultBaseURL is the public Data API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client is a Fetcher backed by the Data API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client. An empty baseURL means DefaultBaseURL; a nil
// httpClient gets a 10 second timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, http: httpClient}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", common.ErrVideoUnavailable, err)
}

func (c *Client) Fetch(ctx context.Context, rawURL string) (*Info, error) {
	if c.apiKey == "" {
		return nil, unavailable(errors.New("no YouTube API key configured"))
	}

	videoID, playlistID, err := ParseURL(rawURL)
	if err != nil {
		return nil, unavailable(err)
	}

	if videoID == "" {
		videoID, err = c.firstPlaylistVideo(ctx, playlistID)
		if err != nil {
			return nil, unavailable(err)
		}
	}

	info, categoryID, err := c.video(ctx, videoID)
	if err != nil {
		return nil, unavailable(err)
	}

	// a missing category name is not worth failing the lookup
	if categoryID != "" {
		if name, err := c.categoryName(ctx, categoryID); err == nil && name != "" {
			info.Categories = []string{name}
		}
	}

	return info, nil
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string   `json:"title"`
			ChannelID    string   `json:"channelId"`
			ChannelTitle string   `json:"channelTitle"`
			CategoryID   string   `json:"categoryId"`
			Tags         []string `json:"tags"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *Client) video(ctx context.Context, id string) (*Info, string, error) {
	var resp videoListResponse
	err := c.get(ctx, "videos", url.Values{"part": {"snippet,contentDetails,statistics"}, "id": {id}}, &resp)
	if err != nil {
		return nil, "", err
	}
	if len(resp.Items) == 0 {
		return nil, "", fmt.Errorf("video %s not found", id)
	}
	item := resp.Items[0]

	info := &Info{
		VideoID:    item.ID,
		Title:      item.Snippet.Title,
		Channel:    item.Snippet.ChannelTitle,
		ChannelID:  item.Snippet.ChannelID,
		Tags:       item.Snippet.Tags,
		Categories: []string{},
	}
	if info.Tags == nil {
		info.Tags = []string{}
	}

	if item.ContentDetails.Duration != "" {
		d, err := ParseDuration(item.ContentDetails.Duration)
		if err != nil {
			return nil, "", err
		}
		info.Duration = int64(d / time.Second)
	}
	info.ViewCount = parseCount(item.Statistics.ViewCount)
	info.LikeCount = parseCount(item.Statistics.LikeCount)

	return info, item.Snippet.CategoryID, nil
}

// parseCount treats hidden or missing statistics as zero.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type categoryListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Client) categoryName(ctx context.Context, id string) (string, error) {
	var resp categoryListResponse
	if err := c.get(ctx, "videoCategories", url.Values{"part": {"snippet"}, "id": {id}}, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Snippet.Title, nil
}

type playlistItemsResponse struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func (c *Client) firstPlaylistVideo(ctx context.Context, playlistID string) (string, error) {
	var resp playlistItemsResponse
	err := c.get(ctx, "playlistItems",
		url.Values{"part": {"contentDetails"}, "playlistId": {playlistID}, "maxResults": {"1"}}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails.VideoID == "" {
		return "", fmt.Errorf("playlist %s is empty", playlistID)
	}
	return resp.Items[0].ContentDetails.VideoID, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		// drop the request URL so the API key never reaches a log line
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%s request: %w", resource, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", resource, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", resource, err)
	}
	return nil
}
