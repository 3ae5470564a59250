// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlai-aus/arcade/internal/content"
)

// loopGen numbers loops across every model in the process, so a tick left
// over from a finished game never matches the next one.
var loopGen atomic.Int64

func nextGen() int {
	return int(loopGen.Add(1))
}

// frameMsg triggers a simulation frame. gen identifies the loop that
// scheduled it; frames from a stopped loop are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// intervalMsg triggers the fixed-interval callback of an IntervalGame.
type intervalMsg struct {
	gen int
}

// ContentMsg delivers a reloaded content library to a running model.
type ContentMsg struct {
	Library content.Library
}

// frameCmd schedules the next frame at the requested rate.
func frameCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func intervalCmd(d time.Duration, gen int) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return intervalMsg{gen: gen}
	})
}

// waitContent blocks on ch and turns the next library into a ContentMsg.
// It returns nil once ch is closed.
func waitContent(ch <-chan content.Library) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		lib, ok := <-ch
		if !ok {
			return nil
		}
		return ContentMsg{Library: lib}
	}
}
