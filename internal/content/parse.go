package content

import (
	"regexp"
	"strings"

	"github.com/podcraft-ai/podcraft/podcast"
)

// ParserState is the speaker the parser is currently collecting text for
type ParserState int

const (
	NoSpeaker ParserState = iota
	Host1Active
	Host2Active
)

func (s ParserState) String() string {
	switch s {
	case Host1Active:
		return "host1_active"
	case Host2Active:
		return "host2_active"
	default:
		return "no_speaker"
	}
}

func stateFor(speaker podcast.Speaker) ParserState {
	if speaker == podcast.Host1 {
		return Host1Active
	}
	return Host2Active
}

func (s ParserState) speaker() podcast.Speaker {
	if s == Host1Active {
		return podcast.Host1
	}
	return podcast.Host2
}

// segmentHeaderRe matches bold segment announcements like "**Segment 3: The Future**"
var segmentHeaderRe = regexp.MustCompile(`(?i)\*\*Segment\s+\d+:.*?\*\*`)

// TurnParser recovers per-speaker turns from streamed dialogue text, one line at a time.
// A marker line for a host closes the other host's open turn, even an empty one, and opens
// (or continues) a turn for the marked host. Unmarked lines continue the open turn and are
// dropped while no speaker is active.
type TurnParser struct {
	markers [2][]string
	state   ParserState
	parts   []string
	turns   podcast.Turns
}

// NewTurnParser creates a parser for the two host names
func NewTurnParser(hosts [2]string) *TurnParser {
	p := &TurnParser{}
	for i, name := range hosts {
		p.markers[i] = []string{"**" + name + ":**", "**" + name + "**:", name + ":"}
	}
	return p
}

// State returns the current parser state
func (p *TurnParser) State() ParserState {
	return p.state
}

// Feed consumes one line of raw script
func (p *TurnParser) Feed(line string) {
	line = strings.TrimSpace(segmentHeaderRe.ReplaceAllString(line, ""))

	if speaker, rest, ok := p.match(line); ok {
		if next := stateFor(speaker); p.state != next {
			p.flush()
			p.state = next
		}
		p.appendText(rest)
		return
	}

	if p.state == NoSpeaker {
		return
	}
	p.appendText(line)
}

// Finish flushes the open turn and returns everything collected so far
func (p *TurnParser) Finish() podcast.Turns {
	p.flush()
	p.state = NoSpeaker
	return p.turns
}

func (p *TurnParser) match(line string) (podcast.Speaker, string, bool) {
	for i, prefixes := range p.markers {
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				return podcast.Speaker(i), strings.TrimSpace(line[len(prefix):]), true
			}
		}
	}
	return 0, "", false
}

func (p *TurnParser) appendText(text string) {
	if text = strings.TrimSpace(text); text != "" {
		p.parts = append(p.parts, text)
	}
}

func (p *TurnParser) flush() {
	if p.state == NoSpeaker {
		return
	}
	p.turns.Add(podcast.DialogueTurn{
		Speaker: p.state.speaker(),
		Text:    strings.Join(p.parts, " "),
	})
	p.parts = nil
}

// ParseTurns splits a raw multi-segment script into the ordered turns of each host
func ParseTurns(raw string, hosts [2]string) podcast.Turns {
	p := NewTurnParser(hosts)
	for _, line := range strings.Split(raw, "\n") {
		p.Feed(line)
	}
	return p.Finish()
}
