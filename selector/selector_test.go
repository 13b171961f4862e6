package selector

import (
	"errors"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

var genres = []string{"Music", "Gaming", "News", "Sports", "Comedy", "Education", "Film", "Technology", "Travel"}

func TestFixedTerm(t *testing.T) {
	Convey("Given a fixed term", t, func() {
		sel := New(random.NewSeeded(1), []string{"alpha", "beta"})
		cfg := QueryConfig{
			FixedTerm:    mo.Some("cats"),
			Mode:         ModeGenreCycle,
			Genres:       genres,
			CurrentGenre: mo.Some("News"),
		}

		Convey("It should be returned for any mode and avoid flag", func() {
			for _, mode := range []Mode{ModeFree, ModeGenreCycle} {
				for _, avoid := range []bool{false, true} {
					cfg.Mode = mode
					query, genre, err := sel.NextQuery(cfg, avoid)
					So(err, ShouldBeNil)
					So(query, ShouldEqual, "cats")
					So(genre, ShouldResemble, mo.Some("News"))
				}
			}
		})

		Convey("A blank term should be ignored", func() {
			cfg.FixedTerm = mo.Some("   ")
			query, _, err := sel.NextQuery(cfg, false)
			So(err, ShouldBeNil)
			So(genres, ShouldContain, query)
		})
	})
}

func TestGenreCycle(t *testing.T) {
	Convey("Given genre-cycle mode", t, func() {
		cfg := QueryConfig{Mode: ModeGenreCycle, Genres: genres}

		Convey("A plain shuffle returns a member of the genre set", func() {
			sel := New(random.New(), nil)
			for i := 0; i < 200; i++ {
				query, genre, err := sel.NextQuery(cfg, false)
				So(err, ShouldBeNil)
				So(genres, ShouldContain, query)
				So(genre, ShouldResemble, mo.Some(query))
			}
		})

		Convey("A plain shuffle may repeat the current genre", func() {
			cfg.Genres = []string{"music", "news"}
			cfg.CurrentGenre = mo.Some("music")
			query, genre, err := New(random.NewFixed(0), nil).NextQuery(cfg, false)
			So(err, ShouldBeNil)
			So(query, ShouldEqual, "music")
			So(genre, ShouldResemble, mo.Some("music"))
		})

		Convey("A courageous shuffle never returns the current genre", func() {
			sel := New(random.New(), nil)
			cfg.CurrentGenre = mo.Some("Music")
			for i := 0; i < 200; i++ {
				query, genre, err := sel.NextQuery(cfg, true)
				So(err, ShouldBeNil)
				So(query, ShouldNotEqual, "Music")
				So(genres, ShouldContain, query)
				So(genre, ShouldResemble, mo.Some(query))
			}
		})

		Convey("A courageous shuffle keeps the configured order", func() {
			cfg.Genres = []string{"Music", "Gaming", "News"}
			cfg.CurrentGenre = mo.Some("Music")
			query, genre, err := New(random.NewFixed(0), nil).NextQuery(cfg, true)
			So(err, ShouldBeNil)
			So(query, ShouldEqual, "Gaming")
			So(genre, ShouldResemble, mo.Some("Gaming"))
		})

		Convey("A courageous shuffle before any genre was picked uses the whole set", func() {
			cfg.Genres = []string{"Music", "Gaming"}
			query, _, err := New(random.NewFixed(0), nil).NextQuery(cfg, true)
			So(err, ShouldBeNil)
			So(query, ShouldEqual, "Music")
		})

		Convey("A courageous shuffle with a single genre fails", func() {
			cfg.Genres = []string{"Music"}
			cfg.CurrentGenre = mo.Some("Music")
			_, genre, err := New(random.New(), nil).NextQuery(cfg, true)
			So(errors.Is(err, ErrConfig), ShouldBeTrue)
			So(genre, ShouldResemble, mo.Some("Music"))

			var configErr *ConfigError
			So(errors.As(err, &configErr), ShouldBeTrue)
		})

		Convey("An empty genre set fails", func() {
			cfg.Genres = nil
			_, _, err := New(random.New(), nil).NextQuery(cfg, false)
			So(errors.Is(err, ErrConfig), ShouldBeTrue)
		})
	})
}

func TestFreeMode(t *testing.T) {
	Convey("Given free mode", t, func() {
		cfg := QueryConfig{Mode: ModeFree, CurrentGenre: mo.Some("Film")}

		Convey("Queries come from the word list", func() {
			words := []string{"alpha", "beta", "gamma"}
			sel := New(random.New(), words)
			for i := 0; i < 100; i++ {
				query, genre, err := sel.NextQuery(cfg, true)
				So(err, ShouldBeNil)
				So(words, ShouldContain, query)
				So(genre, ShouldResemble, mo.Some("Film"))
			}
		})

		Convey("A fixed draw of zero picks the first word", func() {
			query, _, err := New(random.NewFixed(0), []string{"music", "news"}).NextQuery(QueryConfig{Mode: ModeFree}, false)
			So(err, ShouldBeNil)
			So(query, ShouldEqual, "music")
		})

		Convey("A missing word list falls back to random", func() {
			sel := New(random.New(), nil)
			So(sel.Words(), ShouldResemble, []string{"random"})
			query, _, err := sel.NextQuery(cfg, false)
			So(err, ShouldBeNil)
			So(query, ShouldEqual, "random")
		})
	})
}

func TestQueryConfig(t *testing.T) {
	Convey("Given a query config", t, func() {
		cfg := QueryConfig{Mode: ModeGenreCycle, Genres: genres, CurrentGenre: mo.Some("Travel")}

		Convey("WithKeyword should set and clear the fixed term", func() {
			cfg = cfg.WithKeyword("  cats ")
			term, ok := cfg.Term()
			So(ok, ShouldBeTrue)
			So(term, ShouldEqual, "cats")

			cfg = cfg.WithKeyword("")
			_, ok = cfg.Term()
			So(ok, ShouldBeFalse)
		})

		Convey("WithGenres should reset a current genre that is gone", func() {
			cfg = cfg.WithGenres([]string{"Music", "News", "Music", ""})
			So(cfg.Genres, ShouldResemble, []string{"Music", "News"})
			So(cfg.CurrentGenre.IsAbsent(), ShouldBeTrue)
		})

		Convey("WithGenres should keep a current genre that stays", func() {
			cfg = cfg.WithGenres([]string{"Travel", "Film"})
			So(cfg.CurrentGenre, ShouldResemble, mo.Some("Travel"))
		})

		Convey("Validate should reject an empty genre set", func() {
			cfg.Genres = nil
			So(errors.Is(cfg.Validate(), ErrConfig), ShouldBeTrue)
		})

		Convey("Validate should accept free mode without genres", func() {
			cfg.Genres = nil
			cfg.Mode = ModeFree
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestParseMode(t *testing.T) {
	Convey("ParseMode should round trip String", t, func() {
		for _, mode := range []Mode{ModeFree, ModeGenreCycle} {
			parsed, err := ParseMode(mode.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, mode)
		}

		_, err := ParseMode("sideways")
		So(err, ShouldNotBeNil)
	})
}
