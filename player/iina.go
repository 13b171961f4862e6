package player

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/AvaAvarai/IndimensionalYoutube/source"
)

// IINA opens videos in the macOS IINA player through LaunchServices.
// IINA has no IPC socket, so it reports no playback events and
// failed videos have to be skipped by hand.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA() *IINA {
	exited := make(chan struct{})
	close(exited)
	return &IINA{exited: exited}
}

func (m *IINA) Play(video *source.Video) error {
	if runtime.GOOS != "darwin" {
		return errors.New("IINA is only supported on macOS")
	}

	if video == nil {
		return errors.New("nil video")
	}

	target, err := sanitizeMediaTarget(video.URL())
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{
		"-a", "IINA",
		"--args", fmt.Sprintf("--mpv-force-media-title=%s", sanitizeTitle(video.Title)),
		target,
	}

	m.cmd = exec.Command("open", args...)
	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	return nil
}

func (m *IINA) Wait() <-chan struct{} {
	return m.exited
}

func (m *IINA) TogglePause() error    { return nil }
func (m *IINA) Paused() (bool, error) { return false, errors.New("not supported on IINA") }

func (m *IINA) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *IINA) Close() error {
	if m.cmd != nil && m.cmd.Process != nil {
		_ = m.cmd.Process.Kill()
	}
	return nil
}
