// Package youtube implements the built-in YouTube search providers.
package youtube

import (
	"context"
	"errors"
	"net/url"

	"github.com/AvaAvarai/IndimensionalYoutube/network"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
)

const (
	ScraperID   = "youtube"
	ScraperName = "YouTube"

	resultsURL = "https://www.youtube.com/results"
	// videosOnly is the sp filter that restricts results to videos.
	videosOnly = "EgIQAQ%3D%3D"
)

var errNoInitialData = errors.New("ytInitialData not found in results page")

// Scraper searches by parsing the results page. It needs no credentials.
type Scraper struct {
	Client network.Doer
	Limit  int

	// BaseURL replaces the results page address, for tests.
	BaseURL string
}

func NewScraper(client network.Doer, limit int) *Scraper {
	return &Scraper{Client: client, Limit: limit, BaseURL: resultsURL}
}

func (*Scraper) Name() string { return ScraperName }
func (*Scraper) ID() string   { return ScraperID }

func (s *Scraper) Search(query string) ([]*source.Video, error) {
	ctx, cancel := context.WithTimeout(context.Background(), network.Timeout())
	defer cancel()

	page, err := network.Get(ctx, s.Client, s.BaseURL+"?search_query="+url.QueryEscape(query)+"&sp="+videosOnly)
	if err != nil {
		return nil, err
	}

	data := initialData(page)
	if data == nil {
		return nil, errNoInitialData
	}

	videos := videosFromInitialData(data, s.Limit)
	for _, v := range videos {
		v.Source = s
	}

	return videos, nil
}
