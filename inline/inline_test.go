package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/picker"
	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type stubSource struct {
	results []*source.Video
	err     error
	queries []string
}

func (*stubSource) Name() string { return "Stub" }
func (*stubSource) ID() string   { return "stub" }

func (s *stubSource) Search(query string) ([]*source.Video, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func newEngine(src source.Source) *session.Engine {
	rng := random.NewFixed(0)
	engine, err := session.New(session.Options{
		Source:   src,
		Selector: selector.New(rng, []string{"cats"}),
		Picker:   picker.New(rng),
	})
	So(err, ShouldBeNil)
	return engine
}

func TestRun(t *testing.T) {
	Convey("Given a provider with results", t, func() {
		src := &stubSource{results: []*source.Video{{ID: "catvideo01", Title: "Cat compilation", Channel: "Cats"}}}
		var buf bytes.Buffer
		options := &Options{Out: &buf, Engine: newEngine(src), Cycles: 3}

		Convey("Plain output should print one line per shuffle", func() {
			So(Run(context.Background(), options), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldEqual, "https://www.youtube.com/watch?v=catvideo01\tCat compilation")
			So(src.queries, ShouldResemble, []string{"cats", "cats", "cats"})
		})

		Convey("Json output should describe every shuffle", func() {
			options.Json = true
			options.Keyword = mo.Some("kittens")
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Source, ShouldEqual, "Stub")
			So(output.Mode, ShouldEqual, "free")
			So(output.Keyword, ShouldEqual, "kittens")
			So(output.Results, ShouldHaveLength, 3)
			So(output.Results[2].Index, ShouldEqual, 2)
			So(output.Results[0].Query, ShouldEqual, "kittens")
			So(output.Results[0].Video.Channel, ShouldEqual, "Cats")
			So(output.Results[0].Empty, ShouldBeFalse)
		})

		Convey("Genre cycle should report the genre of each shuffle", func() {
			options.Json = true
			options.Courageous = true
			options.Genres = mo.Some([]string{"Music", "News"})
			options.Mode = mo.Some(selector.ModeGenreCycle)
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Mode, ShouldEqual, "genre-cycle")
			So(output.Results[0].Genre, ShouldNotBeEmpty)
			for i := 1; i < len(output.Results); i++ {
				So(output.Results[i].Genre, ShouldNotEqual, output.Results[i-1].Genre)
			}
		})

		Convey("Genre cycle without genres should be refused", func() {
			options.Mode = mo.Some(selector.ModeGenreCycle)
			err := Run(context.Background(), options)
			So(errors.Is(err, selector.ErrConfig), ShouldBeTrue)
			So(src.queries, ShouldBeEmpty)
		})

		Convey("Cycles out of range should be refused", func() {
			options.Cycles = 0
			So(Run(context.Background(), options), ShouldNotBeNil)
			options.Cycles = MaxCycles + 1
			So(Run(context.Background(), options), ShouldNotBeNil)
		})
	})

	Convey("Given a failing provider", t, func() {
		src := &stubSource{err: errors.New("offline")}
		var buf bytes.Buffer
		options := &Options{Out: &buf, Engine: newEngine(src), Cycles: 1, Json: true}

		Convey("The result should be empty and carry the error", func() {
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Results, ShouldHaveLength, 1)
			So(output.Results[0].Empty, ShouldBeTrue)
			So(output.Results[0].Video, ShouldBeNil)
			So(output.Results[0].Error, ShouldContainSubstring, "offline")
		})
	})
}
