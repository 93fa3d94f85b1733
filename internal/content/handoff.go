package content

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/podcraft-ai/podcraft/podcast"
)

// hand-off file names inside a run directory
const (
	RawScriptFile     = "raw_script.txt"
	Host1File         = "host1.txt"
	Host2File         = "host2.txt"
	MergedScriptFile  = "merged_dialogue.txt"
	RevisedScriptFile = "revised_dialogue.txt"
	IntroFile         = "intro.wav"
	SpeechTrackFile   = "speech.pcm"
)

// WriteTurns persists each speaker sequence to its own file, one turn per line
func WriteTurns(dir string, turns podcast.Turns) error {
	if err := WriteLines(filepath.Join(dir, Host1File), turns.Host1); err != nil {
		return err
	}
	return WriteLines(filepath.Join(dir, Host2File), turns.Host2)
}

// ReadTurns loads the speaker sequences written by WriteTurns
func ReadTurns(dir string) (podcast.Turns, error) {
	host1, err := ReadLines(filepath.Join(dir, Host1File))
	if err != nil {
		return podcast.Turns{}, err
	}
	host2, err := ReadLines(filepath.Join(dir, Host2File))
	if err != nil {
		return podcast.Turns{}, err
	}
	return podcast.Turns{Host1: host1, Host2: host2}, nil
}

// WriteLines writes each line followed by a newline, an empty slice produces an empty file
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return WriteText(path, sb.String())
}

// WriteText writes text to path as-is
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return podcast.Wrap(podcast.ErrArtifactIO, "write "+filepath.Base(path), err)
	}
	return nil
}

// ReadLines reads a file written by WriteLines, one entry per line
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, podcast.Wrap(podcast.ErrArtifactIO, "open "+filepath.Base(path), err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, podcast.Wrap(podcast.ErrArtifactIO, fmt.Sprintf("read %s", filepath.Base(path)), err)
	}
	return lines, nil
}

// ReadText reads a whole hand-off file
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", podcast.Wrap(podcast.ErrArtifactIO, "read "+filepath.Base(path), err)
	}
	return string(data), nil
}
