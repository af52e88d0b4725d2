// Package message defines the vocabulary exchanged between the
// foreground loop and the background worker. It carries no logic, only
// the two tagged unions and the display state enum.
package message

import (
	"net/url"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/feed"
)

// DisplayAction names what the foreground is currently rendering. It is
// owned and mutated only by the foreground loop.
type DisplayAction int

const (
	ActionInput DisplayAction = iota
	ActionListEpisodes
	ActionDescribeEpisode
)

func (a DisplayAction) String() string {
	switch a {
	case ActionInput:
		return "input"
	case ActionListEpisodes:
		return "list-episodes"
	case ActionDescribeEpisode:
		return "describe-episode"
	default:
		return "unknown"
	}
}

// Request travels foreground → worker. The variants are disjoint; there
// is no correlation id, so at most one request can be outstanding with
// an unambiguous answer.
type Request interface {
	isRequest()
}

// FetchFeed asks the worker to retrieve and decode the feed at URL. The
// URL has already been validated as absolute by the foreground.
type FetchFeed struct {
	URL url.URL
}

// FetchEpisode moves an already-selected episode value across the
// worker boundary. Episode is nil when no selection existed at submit
// time. No network I/O is ever performed for this variant.
type FetchEpisode struct {
	Episode *feed.Episode
}

func (FetchFeed) isRequest()    {}
func (FetchEpisode) isRequest() {}

// Response travels worker → foreground. A request yields at most one
// response, and only on success; failures produce nothing.
type Response interface {
	isResponse()
}

// FeedLoaded carries a fully decoded channel.
type FeedLoaded struct {
	Channel feed.Channel
}

// EpisodeLoaded echoes back the episode from a FetchEpisode request,
// unchanged.
type EpisodeLoaded struct {
	Episode feed.Episode
}

func (FeedLoaded) isResponse()    {}
func (EpisodeLoaded) isResponse() {}
