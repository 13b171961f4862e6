package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// ytdlp is what mpv uses to resolve YouTube pages into streams.
const ytdlp = "yt-dlp"

// CheckDependencies exits unless the configured player is installed.
// A missing yt-dlp is only a warning since mpv may be built with another resolver.
func CheckDependencies() {
	name := viper.GetString(key.Player)

	if _, err := player.Available(name); err != nil {
		printMissingDependencyError(player.Binary(name))
		os.Exit(1)
	}

	if player.Binary(name) == player.NameMPV {
		if _, err := exec.LookPath(ytdlp); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s not found, mpv may fail to open YouTube videos\n", icon.Get(icon.Warn), ytdlp)
		}
	}
}

func installCommand(dep string) string {
	switch runtime.GOOS {
	case "darwin":
		if dep == player.NameIINA {
			return "brew install --cask iina"
		}
		return "brew install " + dep
	case "linux":
		if dep == ytdlp {
			return "pipx install yt-dlp"
		}
		return "sudo apt install " + dep
	case "windows":
		return "scoop install " + dep
	}
	return ""
}

func printMissingDependencyError(dep string) {
	installCmd := installCommand(dep)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
