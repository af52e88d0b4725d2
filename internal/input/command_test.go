package input

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Command
	}{
		{
			name:     "load with single argument",
			raw:      "/load https://feeds.example.com/show.rss",
			expected: FetchPodcastFeed{URL: "https://feeds.example.com/show.rss"},
		},
		{
			name:     "load arguments concatenate without separators",
			raw:      "/load https://google.com something else",
			expected: FetchPodcastFeed{URL: "https://google.comsomethingelse"},
		},
		{
			name:     "load with no argument",
			raw:      "/load",
			expected: FetchPodcastFeed{URL: ""},
		},
		{
			name:     "load with trailing space",
			raw:      "/load ",
			expected: FetchPodcastFeed{URL: ""},
		},
		{
			name:     "bare word is not a command",
			raw:      "something",
			expected: NoOp{},
		},
		{
			name:     "empty line",
			raw:      "",
			expected: NoOp{},
		},
		{
			name:     "unknown slash command",
			raw:      "/play https://feeds.example.com/show.rss",
			expected: NoOp{},
		},
		{
			name:     "leading space hides the opcode",
			raw:      " /load https://feeds.example.com/show.rss",
			expected: NoOp{},
		},
		{
			name:     "opcode is case sensitive",
			raw:      "/LOAD https://feeds.example.com/show.rss",
			expected: NoOp{},
		},
		{
			name:     "double space between tokens",
			raw:      "/load  https://feeds.example.com/show.rss",
			expected: FetchPodcastFeed{URL: "https://feeds.example.com/show.rss"},
		},
		{
			name:     "tab is not a separator",
			raw:      "/load\thttps://feeds.example.com/show.rss",
			expected: NoOp{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got != tt.expected {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	inputs := []string{
		"/load https://feeds.example.com/show.rss",
		"/load a b c",
		"garbage",
		"",
	}

	for _, raw := range inputs {
		first := Parse(raw)
		second := Parse(raw)
		if first != second {
			t.Errorf("Parse(%q) not deterministic: %#v then %#v", raw, first, second)
		}
	}
}
