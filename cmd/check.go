package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/style"
)

// hardDependencies are the external tools the core flow cannot work without.
// ffplay is not listed, playback degrades to a basic adapter without it.
var hardDependencies = []string{"yt-dlp", "ffprobe"}

// CheckDependencies verifies the availability of required system dependencies.
func CheckDependencies() {
	for _, dep := range hardDependencies {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + installPackage(dep)
	case "linux":
		installCmd = "sudo apt install " + installPackage(dep)
	case "windows":
		installCmd = "scoop install " + installPackage(dep)
	}

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

// installPackage maps a binary to the package that ships it.
func installPackage(dep string) string {
	if dep == "ffprobe" {
		return "ffmpeg"
	}
	return dep
}
