package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV implements Player over mpv's JSON-IPC protocol.
// A single idle mpv window is kept and each Play replaces the loaded file.
type MPV struct {
	handle Handler
	videos *loadedVideos

	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener

	// mu protects socket writes
	mu sync.Mutex

	// startMu guards process startup
	startMu sync.Mutex
}

// NewMPV creates an mpv backend. The process is started by the first Play.
func NewMPV(handle Handler) *MPV {
	exited := make(chan struct{})
	close(exited)

	return &MPV{
		handle: handle,
		videos: newLoadedVideos(),
		exited: exited,
	}
}

// Play loads the video into mpv, starting the process if needed.
func (m *MPV) Play(video *source.Video) error {
	if video == nil {
		return errors.New("nil video")
	}

	target, err := sanitizeMediaTarget(video.URL())
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := m.ensureRunning(); err != nil {
		return err
	}

	title := sanitizeTitle(video.Title)
	if err := m.Set("force-media-title", title); err != nil {
		log.Warnf("set mpv title: %s", err)
	}

	m.videos.begin(video.ID)
	reply, err := m.sendCommand([]any{"loadfile", target, "replace"})
	if err != nil {
		return fmt.Errorf("loadfile: %w", err)
	}
	m.videos.loaded(video.ID, reply)

	log.Infof("mpv loaded %s", target)
	return nil
}

func (m *MPV) ensureRunning() error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.IsRunning() {
		return nil
	}

	return m.start()
}

func (m *MPV) start() error {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.App, randomBytes))

	m.cmd = exec.Command("mpv", mpvArgs(m.socketPath)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warn("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	if m.handle == nil {
		return nil
	}

	m.listener = NewEventListener(m.socketPath, func(name string, data any) {
		if ev, ok := Translate(name, data); ok {
			m.handle(m.videos.attribute(ev, data))
		}
	})

	if err := m.listener.Start(); err != nil {
		log.Warnf("mpv events unavailable: %s", err)
		m.listener = nil
	}

	return nil
}

// mpvArgs keeps the user's mpv.conf in charge of video output and decoding.
func mpvArgs(socket string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socket),
		fmt.Sprintf("--title=%s", constant.App),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=no",
	}
}

func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) Paused() (bool, error) {
	data, err := m.sendCommand([]any{"get_property", "pause"})
	if err != nil {
		return false, err
	}
	paused, _ := data.(bool)
	return paused, nil
}

func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]any{"cycle", "pause"})
	return err
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// Close quits mpv and removes its socket.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	if m.listener != nil {
		m.listener.Stop()
		m.listener = nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	m.socketPath = ""

	return nil
}

// Set a property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

// sanitizeMediaTarget only lets http(s) URLs through to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
