package player

import (
	"bufio"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/session"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers every command with reply, preceded by a broadcast event.
func fakeMPV(t *testing.T, reply string) string {
	dir, err := os.MkdirTemp("", "itube-ipc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	socket := filepath.Join(dir, "mpv.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}

			go func(conn net.Conn) {
				defer conn.Close()
				if _, err := bufio.NewReader(conn).ReadBytes('\n'); err != nil {
					return
				}
				_, _ = conn.Write([]byte(`{"event":"playback-restart"}` + "\n" + reply + "\n"))
			}(conn)
		}
	}()

	return socket
}

func TestSanitize(t *testing.T) {
	Convey("Given media targets", t, func() {
		Convey("A YouTube watch URL should pass", func() {
			target, err := sanitizeMediaTarget(" https://www.youtube.com/watch?v=dQw4w9WgXcQ ")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("Flags, control characters and other schemes should be refused", func() {
			for _, target := range []string{"", "--script=evil.lua", "https://a\n.com", "file:///etc/passwd", "ytdl://x"} {
				_, err := sanitizeMediaTarget(target)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Titles should lose control characters", func() {
			So(sanitizeTitle("\tcats\nand\x00 dogs\r"), ShouldEqual, "cats and dogs")
		})
	})
}

func TestArgs(t *testing.T) {
	Convey("mpv should start idle with an IPC socket", t, func() {
		args := mpvArgs("/tmp/x.sock")
		So(args, ShouldContain, "--input-ipc-server=/tmp/x.sock")
		So(args, ShouldContain, "--idle=yes")
		So(args, ShouldNotContain, "--hwdec=auto")
	})
}

func TestNew(t *testing.T) {
	Convey("Given a player name", t, func() {
		Convey("mpv should be created case-insensitively", func() {
			p, err := New("MPV", nil)
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &MPV{})
			So(p.IsRunning(), ShouldBeFalse)
		})

		Convey("An unknown player should be an error", func() {
			_, err := New("vlc", nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "mpv")
		})

		Convey("Binaries should match the backend", func() {
			So(Binary(NameMPV), ShouldEqual, "mpv")
			So(Binary(NameIINA), ShouldEqual, "iina")
		})
	})
}

func TestTranslate(t *testing.T) {
	Convey("Given mpv events", t, func() {
		Convey("A restart should mean playback started", func() {
			ev, ok := Translate("playback-restart", mpvEvent{Event: "playback-restart"})
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, session.PlaybackStarted{})
		})

		Convey("A file ending with an error should be a failure", func() {
			ev, ok := Translate("end-file", mpvEvent{Event: "end-file", Reason: "error", FileError: "loading failed"})
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, session.PlaybackFailed{Reason: "loading failed"})
		})

		Convey("A file that was replaced or finished should be ignored", func() {
			for _, reason := range []string{"stop", "eof", "quit"} {
				_, ok := Translate("end-file", mpvEvent{Event: "end-file", Reason: reason})
				So(ok, ShouldBeFalse)
			}
		})

		Convey("Property changes should be ignored", func() {
			_, ok := Translate("pause", true)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestIPC(t *testing.T) {
	Convey("Given an mpv socket", t, func() {
		Convey("A reply should be read past broadcast events", func() {
			socket := fakeMPV(t, `{"data":4242,"error":"success","request_id":0}`)

			data, err := doSendCommand(socket, []any{"get_property", "pid"})
			So(err, ShouldBeNil)
			So(data, ShouldEqual, float64(4242))
		})

		Convey("An mpv error should be returned", func() {
			socket := fakeMPV(t, `{"error":"property unavailable"}`)

			_, err := doSendCommand(socket, []any{"get_property", "time-pos"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "property unavailable")
		})

		Convey("A missing socket should fail to connect", func() {
			_, err := doSendCommand(filepath.Join(os.TempDir(), "itube-missing.sock"), []any{"quit"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEventListener(t *testing.T) {
	Convey("Given an event listener", t, func() {
		dir, err := os.MkdirTemp("", "itube-events")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		socket := filepath.Join(dir, "mpv.sock")
		listener, err := net.Listen("unix", socket)
		So(err, ShouldBeNil)
		defer listener.Close()

		go func() {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			_, _ = bufio.NewReader(conn).ReadBytes('\n')
			_, _ = conn.Write([]byte(`{"data":null,"error":"success"}` + "\n"))
			_, _ = conn.Write([]byte(`{"event":"property-change","id":1,"name":"pause","data":true}` + "\n"))
			_, _ = conn.Write([]byte(`{"event":"end-file","reason":"stop"}` + "\n" + `{"event":"end-fi`))
			time.Sleep(50 * time.Millisecond)
			_, _ = conn.Write([]byte(`le","reason":"error","file_error":"unrecognized file format"}` + "\n"))
			time.Sleep(time.Second)
		}()

		events := make(chan session.Event, 4)
		properties := make(chan string, 4)

		el := NewEventListener(socket, func(name string, data any) {
			if ev, ok := Translate(name, data); ok {
				events <- ev
				return
			}
			properties <- name
		})
		So(el.Start(), ShouldBeNil)
		defer el.Stop()

		Convey("Property changes and failures should be delivered in order", func() {
			So(<-properties, ShouldEqual, "pause")
			So(<-properties, ShouldEqual, "end-file")

			select {
			case ev := <-events:
				So(ev, ShouldResemble, session.PlaybackFailed{Reason: "unrecognized file format"})
			case <-time.After(2 * time.Second):
				So("no failure event", ShouldBeEmpty)
			}
		})
	})
}

func TestLoadedVideos(t *testing.T) {
	Convey("Given two videos loaded one after the other", t, func() {
		videos := newLoadedVideos()

		videos.begin("catvideo01")
		videos.loaded("catvideo01", map[string]any{"playlist_entry_id": float64(1)})
		videos.begin("dogvideo01")
		videos.loaded("dogvideo01", map[string]any{"playlist_entry_id": float64(2)})

		Convey("A late failure of the first file should name the first video", func() {
			ev := videos.attribute(session.PlaybackFailed{Reason: "loading failed"}, mpvEvent{Event: "end-file", Reason: "error", PlaylistEntryID: 1})
			So(ev, ShouldResemble, session.PlaybackFailed{VideoID: "catvideo01", Reason: "loading failed"})
		})

		Convey("A failure without an entry should name the current video", func() {
			ev := videos.attribute(session.PlaybackFailed{}, mpvEvent{Event: "end-file", Reason: "error"})
			So(ev, ShouldResemble, session.PlaybackFailed{VideoID: "dogvideo01"})
		})

		Convey("A restart should name the current video", func() {
			So(videos.attribute(session.PlaybackStarted{}, nil), ShouldResemble, session.PlaybackStarted{VideoID: "dogvideo01"})
		})

		Convey("Old entries should be forgotten", func() {
			for i := 3; i < 3+keptEntries; i++ {
				videos.loaded("later", map[string]any{"playlist_entry_id": float64(i)})
			}
			So(videos.entries, ShouldNotContainKey, int64(1))
			So(len(videos.entries), ShouldBeLessThanOrEqualTo, keptEntries)
		})
	})
}
