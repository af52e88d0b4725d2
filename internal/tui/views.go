package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jaytaylor/html2text"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/debuglog"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/message"
)

// Placeholders shown while the corresponding data has not arrived.
const (
	fallbackChannelTitle = "[Title]"
	fallbackEpisodeTitle = "[Episode Title]"
	fallbackDescription  = "Description"
	fallbackAudioURL     = "[Audio URL]"
	missingEpisodeTitle  = "Title missing!"
	playbarPlaceholder   = "This is the playbar"
)

// View lays the frame out as four stacked regions: hint bar, input
// box, display area, play bar. Nothing renders until the first window
// size arrives.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	hint := a.renderHint()
	inputBox := a.renderInput()
	playbar := a.renderPlaybar()

	displayHeight := a.height - lipgloss.Height(hint) - lipgloss.Height(inputBox) - lipgloss.Height(playbar)
	if displayHeight < 1 {
		displayHeight = 1
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		hint,
		inputBox,
		a.renderDisplay(displayHeight),
		playbar,
	)
}

func (a *App) renderHint() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		HeaderStyle.Render(AppName),
		HelpStyle.Render(" · Press Esc to exit, Enter to submit"),
	)
}

func (a *App) renderInput() string {
	return renderInputFrame(a.textInput.View(), a.action == message.ActionInput, a.inputContentWidth())
}

func (a *App) renderDisplay(height int) string {
	var content string
	if a.action == message.ActionDescribeEpisode {
		content = a.renderEpisodeDetail()
	} else {
		content = a.renderEpisodeList(height)
	}
	return ContentWrapper(a.width, height).Render(content)
}

// renderEpisodeList draws the channel header and the numbered episode
// rows, keeping the cursor row in the visible window. The cursor row
// gets a ">> " prefix; a cursor pointing past the end of a replaced,
// shorter channel highlights nothing.
func (a *App) renderEpisodeList(height int) string {
	title := fallbackChannelTitle
	if a.channel != nil && a.channel.Title != "" {
		title = "[" + a.channel.Title + "]"
	}

	rows := []string{FeedTitleStyle.Render(truncateEnd(title, a.width-2))}

	visible := height - 1
	if visible < 1 {
		visible = 1
	}

	count := a.episodeCount()
	start := 0
	if a.selection.set && a.selection.index >= visible {
		start = a.selection.index - visible + 1
	}

	for i := start; i < count && i < start+visible; i++ {
		label := a.channel.Episodes[i].Title
		if label == "" {
			label = missingEpisodeTitle
		}
		row := truncateEnd(fmt.Sprintf("%d: %s", i, label), a.width-4)
		if a.selection.set && i == a.selection.index {
			rows = append(rows, SelectedItemStyle.Render(">> "+row))
		} else {
			rows = append(rows, "   "+row)
		}
	}

	return strings.Join(rows, "\n")
}

// renderEpisodeDetail renders the loaded episode as markdown. The
// result is cached per episode and width; View runs on every frame and
// the markdown pipeline is not free.
func (a *App) renderEpisodeDetail() string {
	if a.detailCache != "" && a.detailFor == a.episode && a.detailWidth == a.width {
		return a.detailCache
	}

	markdown := a.episodeMarkdown()

	rendered := markdown
	if r, err := a.getRenderer(); err == nil {
		if out, renderErr := r.Render(markdown); renderErr == nil {
			rendered = out
		} else {
			debuglog.Debugf("markdown render failed: %v", renderErr)
		}
	}

	a.detailCache = rendered
	a.detailFor = a.episode
	a.detailWidth = a.width
	return rendered
}

// episodeMarkdown lays the episode out as a small markdown document:
// title heading, audio URL, separator, then the description converted
// from HTML to text. Placeholders stand in for missing fields.
func (a *App) episodeMarkdown() string {
	title := fallbackEpisodeTitle
	description := fallbackDescription
	audio := fallbackAudioURL

	if a.episode != nil {
		if a.episode.Title != "" {
			title = a.episode.Title
		}
		if a.episode.Description != "" {
			description = a.episode.Description
		}
		if a.episode.AudioURL != "" {
			audio = a.episode.AudioURL
		}
	}

	if text, err := html2text.FromString(description); err == nil {
		description = text
	} else {
		debuglog.Debugf("html conversion failed: %v", err)
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("***" + audio + "***\n\n")
	b.WriteString("---\n\n")
	b.WriteString(description)
	return b.String()
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrap := (a.width * 9) / 10
	if wordWrap > a.config.UI.WordWrapMaxWidth {
		wordWrap = a.config.UI.WordWrapMaxWidth
	}
	if wordWrap < a.config.UI.WordWrapMinWidth {
		wordWrap = a.config.UI.WordWrapMinWidth
	}
	if a.width < 50 {
		wordWrap = a.width - 4
		if wordWrap < 20 {
			wordWrap = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrap) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrap
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// renderPlaybar draws the bottom strip. Playback is not implemented;
// the bar is a fixed placeholder.
func (a *App) renderPlaybar() string {
	w := a.width - 2
	if w < 0 {
		w = 0
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(w).
		Render(renderMuted(playbarPlaceholder))
}
