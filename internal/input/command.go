// Package input parses raw submitted lines into typed commands.
package input

import "strings"

const loadOpcode = "/load"

// Command is the result of parsing one submitted line.
type Command interface {
	isCommand()
}

// FetchPodcastFeed carries the argument of a /load line: every token
// after the opcode concatenated without separators. Callers rely on
// the concatenation staying exactly this way; URL validation happens
// later, at submit time.
type FetchPodcastFeed struct {
	URL string
}

// NoOp is produced for every line that is not a recognized command,
// including the empty line.
type NoOp struct{}

func (FetchPodcastFeed) isCommand() {}
func (NoOp) isCommand()             {}

// Parse turns a raw line into a Command. It is pure and total: no
// validation, no side effects, and unrecognized input degrades to NoOp
// instead of failing.
func Parse(raw string) Command {
	parts := strings.Split(raw, " ")
	switch parts[0] {
	case loadOpcode:
		return FetchPodcastFeed{URL: strings.Join(parts[1:], "")}
	default:
		return NoOp{}
	}
}
