package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestFetch(t *testing.T) {
	Convey("Given a test server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/echo":
				w.Header().Set("X-Agent", r.Header.Get("User-Agent"))
				_, _ = w.Write([]byte(r.Header.Get("X-Custom")))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		ctx := context.Background()

		Convey("Fetch should send default and custom headers", func() {
			resp, err := Fetch(ctx, Client, http.MethodGet, server.URL+"/echo", map[string]string{"X-Custom": "hello"}, "")
			So(err, ShouldBeNil)
			So(resp.Status, ShouldEqual, http.StatusOK)
			So(resp.Body, ShouldEqual, "hello")
			So(resp.Headers.Get("X-Agent"), ShouldContainSubstring, "Mozilla")
		})

		Convey("Get should fail on a non-200 status", func() {
			_, err := Get(ctx, Client, server.URL+"/missing")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
		})

		Convey("The spoofed client should fall back to plain http for http urls", func() {
			body, err := Get(ctx, Spoofed(), server.URL+"/echo")
			So(err, ShouldBeNil)
			So(body, ShouldBeEmpty)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Default should follow network.spoof_tls", t, func() {
		viper.Set(key.NetworkSpoofTLS, false)
		So(Default(), ShouldEqual, Client)

		viper.Set(key.NetworkSpoofTLS, true)
		So(Default(), ShouldEqual, Spoofed())
	})

	Convey("Timeout should fall back to a minute", t, func() {
		viper.Set(key.NetworkTimeout, 0)
		So(Timeout().Seconds(), ShouldEqual, 60)
	})
}
