package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHosts = [2]string{"Ofir", "Daniel"}

func TestParseTurns(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		host1 []string
		host2 []string
	}{
		{
			name:  "alternating bold markers",
			raw:   "**Ofir:** Hello there\nand welcome\n**Daniel:** Hi\n**Ofir:** Bye",
			host1: []string{"Hello there and welcome", "Bye"},
			host2: []string{"Hi"},
		},
		{
			name:  "all marker forms",
			raw:   "**Ofir**: one\nDaniel: two\n**Daniel:** three",
			host1: []string{"one"},
			host2: []string{"two three"},
		},
		{
			name:  "marker without text yields empty turn",
			raw:   "**Ofir:**\n**Daniel:** Hi",
			host1: []string{""},
			host2: []string{"Hi"},
		},
		{
			name:  "repeated marker continues the turn",
			raw:   "Ofir: a\nOfir: b\nDaniel: c",
			host1: []string{"a b"},
			host2: []string{"c"},
		},
		{
			name:  "text before first marker is dropped",
			raw:   "Welcome to the show\n\nOfir: a\nDaniel: b",
			host1: []string{"a"},
			host2: []string{"b"},
		},
		{
			name:  "segment headers removed",
			raw:   "**Segment 1: The Beginning**\nOfir: a\n**SEGMENT 2: Deep Dive**\nDaniel: b",
			host1: []string{"a"},
			host2: []string{"b"},
		},
		{
			name:  "crlf line endings",
			raw:   "Ofir: a\r\nDaniel: b\r\n",
			host1: []string{"a"},
			host2: []string{"b"},
		},
		{
			name: "no markers",
			raw:  "just some text\nwithout speakers",
		},
		{
			name: "empty input",
			raw:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			turns := ParseTurns(tc.raw, testHosts)
			assert.Equal(t, tc.host1, turns.Host1)
			assert.Equal(t, tc.host2, turns.Host2)
		})
	}
}

func TestParseTurns_TurnCountMatchesSpeakerSwitches(t *testing.T) {
	var sb strings.Builder
	for i := range 9 {
		fmt.Fprintf(&sb, "**%s:** line %d\n", testHosts[i%2], i)
		sb.WriteString("continued\n")
	}

	turns := ParseTurns(sb.String(), testHosts)
	assert.Equal(t, 9, turns.Len())
	assert.Len(t, turns.Host1, 5)
	assert.Len(t, turns.Host2, 4)
	assert.Equal(t, "line 0 continued", turns.Host1[0])
	assert.Equal(t, "line 7 continued", turns.Host2[3])
}

func TestTurnParser_States(t *testing.T) {
	p := NewTurnParser(testHosts)
	assert.Equal(t, NoSpeaker, p.State())

	p.Feed("intro music fades")
	assert.Equal(t, NoSpeaker, p.State())

	p.Feed("**Daniel:** first")
	assert.Equal(t, Host2Active, p.State())

	p.Feed("Ofir: second")
	assert.Equal(t, Host1Active, p.State())
	assert.Equal(t, "host1_active", p.State().String())

	turns := p.Finish()
	assert.Equal(t, NoSpeaker, p.State())
	require.Len(t, turns.Host1, 1)
	require.Len(t, turns.Host2, 1)
	assert.Equal(t, "second", turns.Host1[0])
	assert.Equal(t, "first", turns.Host2[0])
}

func TestTurnParser_StreamedFragments(t *testing.T) {
	// fragments split mid-line are joined before feeding
	fragments := []string{"**Ofir:** Hel", "lo\n**Dan", "iel:** Hi", " there\n"}
	turns := ParseTurns(strings.Join(fragments, ""), testHosts)
	assert.Equal(t, []string{"Hello"}, turns.Host1)
	assert.Equal(t, []string{"Hi there"}, turns.Host2)
}
