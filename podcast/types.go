package podcast

import (
	"context"
	"iter"
	"strings"
	"unicode"
)

// ShowName is the title the hosts introduce the episode with
const ShowName = "Podcraft AI"

// DefaultTopic replaces an empty topic
const DefaultTopic = "podcast"

// Host represents a podcast host with name, gender, and character traits
type Host struct {
	Name      string
	Gender    string // "male" or "female"
	Character string // personality traits and perspective
	Voice     string // openAI TTS voice to use
}

// Speaker identifies one of the two hosts
type Speaker int

const (
	Host1 Speaker = iota
	Host2
)

// String returns the hand-off name of the speaker
func (s Speaker) String() string {
	switch s {
	case Host1:
		return "host1"
	case Host2:
		return "host2"
	default:
		return "unknown"
	}
}

// Other returns the opposite speaker
func (s Speaker) Other() Speaker {
	if s == Host1 {
		return Host2
	}
	return Host1
}

// DialogueTurn is one uninterrupted utterance by a single speaker
type DialogueTurn struct {
	Speaker Speaker
	Text    string
}

// Turns keeps the parsed dialogue as two ordered sequences, one per speaker
type Turns struct {
	Host1 []string
	Host2 []string
}

// Add appends a turn to the sequence of its speaker
func (t *Turns) Add(turn DialogueTurn) {
	switch turn.Speaker {
	case Host1:
		t.Host1 = append(t.Host1, turn.Text)
	case Host2:
		t.Host2 = append(t.Host2, turn.Text)
	}
}

// Len returns the total number of turns for both speakers
func (t Turns) Len() int {
	return len(t.Host1) + len(t.Host2)
}

// DefaultHosts returns the two personas of the show
func DefaultHosts() [2]Host {
	return [2]Host{
		{
			Name:      "Ofir",
			Gender:    "male",
			Character: "Curious and upbeat, opens the show, loves puns and new ideas.",
			Voice:     "echo",
		},
		{
			Name:      "Daniel",
			Gender:    "male",
			Character: "Dry humor, critical thinker, enjoys teasing his co-host.",
			Voice:     "fable",
		},
	}
}

// HostNames returns the names of both hosts in speaker order
func HostNames(hosts [2]Host) [2]string {
	return [2]string{hosts[0].Name, hosts[1].Name}
}

// NormalizeTopic trims the topic and falls back to DefaultTopic when it is empty
func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return DefaultTopic
	}
	return topic
}

// SanitizeTopic makes the topic safe to use as a file name, whitespace becomes underscores
func SanitizeTopic(topic string) string {
	topic = NormalizeTopic(topic)
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case r == '/' || r == '\\':
			return '_'
		default:
			return r
		}
	}, topic)
}

// EpisodeFilename returns the final artifact name for the topic
func EpisodeFilename(topic string) string {
	return SanitizeTopic(topic) + ".mp3"
}

//go:generate moq -out mocks/chat.go -pkg mocks -skip-ensure -fmt goimports . ChatStarter ChatSession

// ChatStarter opens stateful chat sessions against the text generation service
type ChatStarter interface {
	StartChat(ctx context.Context) (ChatSession, error)
}

// ChatSession keeps history between calls, Send streams the reply fragments in order
type ChatSession interface {
	Send(ctx context.Context, prompt string) iter.Seq2[string, error]
}
