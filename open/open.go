// Package open hands URLs to the desktop's default browser.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
)

// Start opens url without waiting for the browser to exit.
func Start(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", url), nil
	case constant.Darwin:
		return exec.Command("open", url), nil
	case constant.Linux:
		return exec.Command("xdg-open", url), nil
	case constant.Android:
		return exec.Command("termux-open-url", url), nil
	default:
		return nil, fmt.Errorf("opening urls is not supported on %s", goos)
	}
}
