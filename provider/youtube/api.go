package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AvaAvarai/IndimensionalYoutube/network"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/lo"
)

const (
	APIID   = "youtube-api"
	APIName = "YouTube Data API"

	dataAPIURL = "https://www.googleapis.com/youtube/v3/search"
	// maxAPIResults is the largest maxResults search.list accepts.
	maxAPIResults = 50
)

// ErrNoAPIKey is returned when the API provider is used without a key.
var ErrNoAPIKey = errors.New("youtube data api key is not set, run \"itube auth set\"")

type apiItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
	} `json:"snippet"`
}

type apiResponse struct {
	Items []apiItem `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// API searches through the YouTube Data API v3.
type API struct {
	Client network.Doer
	Key    string
	Limit  int

	// BaseURL replaces the search.list endpoint, for tests.
	BaseURL string
}

func NewAPI(client network.Doer, key string, limit int) *API {
	return &API{Client: client, Key: key, Limit: limit, BaseURL: dataAPIURL}
}

func (*API) Name() string { return APIName }
func (*API) ID() string   { return APIID }

func (a *API) Search(query string) ([]*source.Video, error) {
	if a.Key == "" {
		return nil, ErrNoAPIKey
	}

	limit := a.Limit
	if limit <= 0 || limit > maxAPIResults {
		limit = maxAPIResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoEmbeddable", "true")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("key", a.Key)

	ctx, cancel := context.WithTimeout(context.Background(), network.Timeout())
	defer cancel()

	resp, err := network.Fetch(ctx, a.Client, http.MethodGet, a.BaseURL+"?"+params.Encode(), map[string]string{"Accept": "application/json"}, "")
	if err != nil {
		return nil, err
	}

	var decoded apiResponse
	if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if resp.Status != http.StatusOK {
		if decoded.Error != nil {
			return nil, fmt.Errorf("youtube data api %d: %s", decoded.Error.Code, decoded.Error.Message)
		}
		return nil, fmt.Errorf("youtube data api: unexpected status %d", resp.Status)
	}

	videos := lo.FilterMap(decoded.Items, func(item apiItem, _ int) (*source.Video, bool) {
		if item.ID.VideoID == "" {
			return nil, false
		}
		return &source.Video{
			ID:      item.ID.VideoID,
			Title:   html.UnescapeString(item.Snippet.Title),
			Channel: html.UnescapeString(item.Snippet.ChannelTitle),
			Source:  a,
		}, true
	})

	return videos, nil
}
