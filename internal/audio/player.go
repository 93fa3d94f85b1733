package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"
)

//go:generate moq -out mocks/command_runner.go -pkg mocks -skip-ensure -fmt goimports . CommandRunner

// CommandRunner provides OS-specific command creation for audio playback
type CommandRunner interface {
	GetAudioCommand(filename string) (*exec.Cmd, error)
}

// Player plays finished episodes on the local machine
type Player struct {
	cmdRunner CommandRunner
}

// NewPlayer creates a player using the system's default audio player
func NewPlayer(cmdRunner CommandRunner) *Player {
	if cmdRunner == nil {
		cmdRunner = &DefaultCommandRunner{}
	}
	return &Player{cmdRunner: cmdRunner}
}

// Play plays an audio file and waits for it to finish
func (p *Player) Play(filename string) error {
	// check if file exists before attempting to play
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("audio file does not exist: %s", filename)
		}
		return fmt.Errorf("failed to check audio file: %w", err)
	}

	cmd, err := p.cmdRunner.GetAudioCommand(filename)
	if err != nil {
		return fmt.Errorf("failed to get audio command: %w", err)
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error playing audio: %w", err)
	}
	return nil
}

// DefaultCommandRunner is the default implementation of CommandRunner
type DefaultCommandRunner struct{}

// linux players in order of preference, with the flags that keep them quiet and exit at the end
var linuxPlayers = []struct {
	name string
	args []string
}{
	{name: "mpv", args: []string{"--no-video", "--really-quiet"}},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{name: "mplayer", args: []string{"-really-quiet"}},
	{name: "mpg123", args: []string{"-q"}},
}

// GetAudioCommand returns the appropriate audio command for the current OS
func (r *DefaultCommandRunner) GetAudioCommand(filename string) (*exec.Cmd, error) {
	// validate filename to prevent potential security issues
	if hasParentSegment(filename) || strings.ContainsAny(filename, ";|&$`") {
		return nil, fmt.Errorf("invalid filename: potential security risk")
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", filename), nil
	case "windows":
		return exec.Command("cmd", "/C", "start", filename), nil
	case "linux":
		for _, player := range linuxPlayers {
			if _, err := exec.LookPath(player.name); err == nil {
				// #nosec G204 -- player is selected from a whitelist of known audio players
				return exec.Command(player.name, slices.Concat(player.args, []string{filename})...), nil
			}
		}
		return nil, fmt.Errorf("no suitable audio player found on your system")
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// hasParentSegment reports whether any path element is "..", dots inside a file name are allowed
func hasParentSegment(filename string) bool {
	return slices.Contains(strings.FieldsFunc(filename, func(r rune) bool { return r == '/' || r == '\\' }), "..")
}
