package feed

import (
	"fmt"
	"io"

	"github.com/mmcdole/gofeed"
)

// Parser decodes a feed document into a Channel. It accepts whatever
// dialect gofeed understands (RSS, Atom, JSON Feed), though the client
// only ever targets a single well-formed channel document.
type Parser struct {
	parser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		parser: gofeed.NewParser(),
	}
}

func (p *Parser) Parse(reader io.Reader) (*Channel, error) {
	parsed, err := p.parser.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	channel := &Channel{
		Title:       parsed.Title,
		Description: parsed.Description,
		Episodes:    make([]Episode, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		channel.Episodes = append(channel.Episodes, Episode{
			GUID:        item.GUID,
			Title:       item.Title,
			Description: item.Description,
			AudioURL:    audioURL(item),
			Link:        item.Link,
		})
	}

	return channel, nil
}

// audioURL picks the first enclosure with a URL; episodes without an
// enclosure yield the empty string and the presentation layer falls
// back to a placeholder.
func audioURL(item *gofeed.Item) string {
	for _, enclosure := range item.Enclosures {
		if enclosure != nil && enclosure.URL != "" {
			return enclosure.URL
		}
	}
	return ""
}
