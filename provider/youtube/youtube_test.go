package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/network"
	. "github.com/smartystreets/goconvey/convey"
)

const initialDataJSON = `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[` +
	`{"itemSectionRenderer":{"contents":[` +
	`{"videoRenderer":{"videoId":"aaaaaaaaaaa","title":{"runs":[{"text":"First \"quoted\" {video}"}]},"ownerText":{"runs":[{"text":"Chan"}]}}},` +
	`{"adSlotRenderer":{}},` +
	`{"videoRenderer":{"videoId":"bbbbbbbbbbb","title":{"runs":[{"text":"Second"}]}}},` +
	`{"videoRenderer":{"videoId":"aaaaaaaaaaa","title":{"runs":[{"text":"Duplicate"}]}}}` +
	`]}}]}}}}}`

func resultsPage(data string) string {
	return fmt.Sprintf(`<html><script>var ytInitialData = %s;</script><script>var other = {};</script></html>`, data)
}

func TestExtract(t *testing.T) {
	Convey("Given a results page", t, func() {
		data := initialData(resultsPage(initialDataJSON))

		Convey("The embedded object should be cut out exactly", func() {
			So(string(data), ShouldEqual, initialDataJSON)
		})

		Convey("Videos should be found in document order without duplicates", func() {
			videos := videosFromInitialData(data, 0)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].ID, ShouldEqual, "aaaaaaaaaaa")
			So(videos[0].Title, ShouldEqual, `First "quoted" {video}`)
			So(videos[0].Channel, ShouldEqual, "Chan")
			So(videos[1].ID, ShouldEqual, "bbbbbbbbbbb")
		})

		Convey("The limit should be honored", func() {
			So(videosFromInitialData(data, 1), ShouldHaveLength, 1)
		})
	})

	Convey("Titles split into several runs should be joined", t, func() {
		data := []byte(`{"a":[{"b":{"videoRenderer":{"videoId":"ccccccccccc","title":{"runs":[{"text":"Lo-fi "},{"text":"music","bold":true},{"text":" to study to"}]},` +
			`"ownerText":{"runs":[{"text":"Lofi "},{"text":"Girl"}]}}}}]}`)

		videos := videosFromInitialData(data, 0)
		So(videos, ShouldHaveLength, 1)
		So(videos[0].Title, ShouldEqual, "Lo-fi music to study to")
		So(videos[0].Channel, ShouldEqual, "Lofi Girl")
	})

	Convey("A truncated document should keep the videos read so far", t, func() {
		data := []byte(`{"contents":[{"videoRenderer":{"videoId":"aaaaaaaaaaa","title":{"runs":[{"text":"First"}]}}},{"videoRenderer":{"videoId":"bbb`)

		videos := videosFromInitialData(data, 0)
		So(videos, ShouldHaveLength, 1)
		So(videos[0].ID, ShouldEqual, "aaaaaaaaaaa")
	})

	Convey("A page without initial data should yield nothing", t, func() {
		So(initialData("<html></html>"), ShouldBeNil)
		So(balancedObject([]byte(`{"open": true`)), ShouldBeNil)
	})
}

func TestScraper(t *testing.T) {
	Convey("Given a fake results page server", t, func() {
		var gotQuery, gotFilter string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("search_query")
			gotFilter = r.URL.Query().Get("sp")
			if gotQuery == "broken" {
				_, _ = w.Write([]byte("<html>nothing here</html>"))
				return
			}
			_, _ = w.Write([]byte(resultsPage(initialDataJSON)))
		}))
		defer server.Close()

		scraper := NewScraper(network.Client, 10)
		scraper.BaseURL = server.URL

		Convey("Search should return the videos of the page", func() {
			videos, err := scraper.Search("lo-fi beats")
			So(err, ShouldBeNil)
			So(gotQuery, ShouldEqual, "lo-fi beats")
			So(gotFilter, ShouldEqual, "EgIQAQ==")
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Source, ShouldEqual, scraper)
		})

		Convey("A page without data should be an error", func() {
			_, err := scraper.Search("broken")
			So(errors.Is(err, errNoInitialData), ShouldBeTrue)
		})
	})
}

func TestAPI(t *testing.T) {
	Convey("Given a fake data api", t, func() {
		var gotKey, gotMax string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.URL.Query().Get("key")
			gotMax = r.URL.Query().Get("maxResults")
			w.Header().Set("Content-Type", "application/json")
			if gotKey == "bad" {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"items":[` +
				`{"id":{"videoId":"ccccccccccc"},"snippet":{"title":"Rock &amp; Roll","channelTitle":"Band"}},` +
				`{"id":{"channelId":"xyz"},"snippet":{"title":"A channel"}}]}`))
		}))
		defer server.Close()

		api := NewAPI(network.Client, "secret", 500)
		api.BaseURL = server.URL

		Convey("Search should return videos only, with unescaped titles", func() {
			videos, err := api.Search("rock")
			So(err, ShouldBeNil)
			So(gotKey, ShouldEqual, "secret")
			So(gotMax, ShouldEqual, "50")
			So(videos, ShouldHaveLength, 1)
			So(videos[0].Title, ShouldEqual, "Rock & Roll")
			So(videos[0].Channel, ShouldEqual, "Band")
		})

		Convey("API errors should be reported", func() {
			api.Key = "bad"
			_, err := api.Search("rock")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "quota exceeded")
		})

		Convey("A missing key should be reported without a request", func() {
			api.Key = ""
			_, err := api.Search("rock")
			So(errors.Is(err, ErrNoAPIKey), ShouldBeTrue)
		})
	})
}
