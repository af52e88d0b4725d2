package feed

// Channel is a decoded podcast feed: the channel title plus its episodes
// in document order.
type Channel struct {
	Title       string
	Description string
	Episodes    []Episode
}

// Episode is one entry of a channel. All fields are plain strings so an
// episode travels across goroutine boundaries by value and compares with
// struct equality.
type Episode struct {
	GUID        string
	Title       string
	Description string
	AudioURL    string
	Link        string
}
