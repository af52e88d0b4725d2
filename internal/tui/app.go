package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/config"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/debuglog"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/feed"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/input"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/message"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/validation"
)

// Broker carries requests to the background worker and responses back.
// Both directions must be non-blocking; the foreground never waits on
// the worker.
type Broker interface {
	Submit(req message.Request) bool
	Poll() (message.Response, bool)
}

// pollTickMsg fires on the recurring response-poll interval.
type pollTickMsg struct{}

// App is the foreground model. It owns the input buffer, the loaded
// channel and episode, the list cursor and the current display action.
// Nothing outside Update mutates it; the worker only ever receives
// copies of its data.
type App struct {
	config     *config.Config
	broker     Broker
	validator  *validation.FeedURLValidator
	keyHandler *KeyHandler

	textInput textinput.Model
	selection selection
	action    message.DisplayAction
	channel   *feed.Channel
	episode   *feed.Episode

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
	detailCache     string
	detailFor       *feed.Episode
	detailWidth     int
}

func NewApp(cfg *config.Config, broker Broker) *App {
	ti := textinput.New()
	ti.Placeholder = "/load <feed url>"
	ti.Focus()

	app := &App{
		config:    cfg,
		broker:    broker,
		validator: validation.NewFeedURLValidator(),
		textInput: ti,
		action:    message.ActionInput,
	}

	app.keyHandler = NewKeyHandler(app)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.pollResponses(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.textInput.Width = a.inputContentWidth()
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case pollTickMsg:
		if resp, ok := a.broker.Poll(); ok {
			a.applyResponse(resp)
		}
		return a, a.pollResponses()
	}

	// Everything else (cursor blink and friends) belongs to the input.
	var cmd tea.Cmd
	a.textInput, cmd = a.textInput.Update(msg)
	return a, cmd
}

// pollResponses schedules the next drain of the outbound queue. Each
// tick takes at most one response without blocking, so the loop stays
// responsive no matter how slow the network is.
func (a *App) pollResponses() tea.Cmd {
	return tea.Tick(a.config.UI.PollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// applyResponse folds a worker response into the model. Responses only
// ever replace data; the display action moves on user submits alone.
func (a *App) applyResponse(resp message.Response) {
	switch r := resp.(type) {
	case message.FeedLoaded:
		channel := r.Channel
		a.channel = &channel
		debuglog.WithFields(map[string]interface{}{
			"title":    channel.Title,
			"episodes": len(channel.Episodes),
		}).Infof("feed loaded")

	case message.EpisodeLoaded:
		episode := r.Episode
		a.episode = &episode
		debuglog.Infof("episode loaded title=%q", episode.Title)
	}
}

// handleSubmit runs one step of the display state machine. Submit is
// the only trigger for transitions; data arrival never moves the
// state.
func (a *App) handleSubmit() {
	switch a.action {
	case message.ActionInput:
		a.submitCommand()
	case message.ActionListEpisodes:
		a.submitSelection()
	case message.ActionDescribeEpisode:
		// Reserved for future detail actions.
	}
}

// submitCommand parses the input buffer. A /load line with an absolute
// URL becomes a fetch request and advances to the episode list; every
// other line leaves the model exactly as it was.
func (a *App) submitCommand() {
	cmd := input.Parse(a.textInput.Value())

	fetch, ok := cmd.(input.FetchPodcastFeed)
	if !ok {
		debuglog.Debugf("submit ignored, not a command: %q", a.textInput.Value())
		return
	}

	parsed, err := a.validator.Validate(fetch.URL)
	if err != nil {
		debuglog.Debugf("rejected feed URL %q: %v", fetch.URL, err)
		return
	}

	a.submit(message.FetchFeed{URL: *parsed})
	a.textInput.Reset()
	a.setAction(message.ActionListEpisodes)
}

// submitSelection ships the cursor-selected episode to the worker, or
// an empty request when no valid selection exists.
func (a *App) submitSelection() {
	episode, ok := a.selectedEpisode()
	if !ok {
		a.submit(message.FetchEpisode{Episode: nil})
		return
	}

	a.submit(message.FetchEpisode{Episode: &episode})
	a.setAction(message.ActionDescribeEpisode)
}

func (a *App) submit(req message.Request) {
	if !a.broker.Submit(req) {
		debuglog.Warnf("request queue full, dropping %T", req)
	}
}

func (a *App) setAction(action message.DisplayAction) {
	debuglog.Debugf("display action %s -> %s", a.action, action)
	a.action = action
}

// selectedEpisode resolves the cursor against the loaded channel. The
// cursor can point past the end after a shorter channel replaces a
// longer one; that counts as no selection.
func (a *App) selectedEpisode() (feed.Episode, bool) {
	if a.channel == nil || !a.selection.set {
		return feed.Episode{}, false
	}
	if a.selection.index >= len(a.channel.Episodes) {
		return feed.Episode{}, false
	}
	return a.channel.Episodes[a.selection.index], true
}

func (a *App) episodeCount() int {
	if a.channel == nil {
		return 0
	}
	return len(a.channel.Episodes)
}

func (a *App) inputContentWidth() int {
	w := a.width - 8
	if w < 10 {
		w = a.width - 4
	}
	if w < 0 {
		w = 0
	}
	return w
}
