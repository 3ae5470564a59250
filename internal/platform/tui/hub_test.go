package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlai-aus/arcade/internal/content"
)

func TestHubPublishReplacesPending(t *testing.T) {
	hub := NewContentHub(content.Library{})
	_, ch := hub.Subscribe()

	first := content.Default()
	second := content.Library{Logos: first.Logos[:1]}
	hub.Publish(first)
	hub.Publish(second)

	got := <-ch
	assert.Len(t, got.Logos, 1)
	assert.Len(t, hub.Current().Logos, 1)

	select {
	case <-ch:
		t.Fatal("only the latest library should be pending")
	default:
	}
}

func TestHubUnsubscribeCloses(t *testing.T) {
	hub := NewContentHub(content.Library{})
	id, ch := hub.Subscribe()
	_, other := hub.Subscribe()
	require.Equal(t, 2, hub.Len())

	hub.Unsubscribe(id)
	hub.Unsubscribe(id)
	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 1, hub.Len())

	hub.Close()
	_, ok = <-other
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Len())
}

func TestWaitContent(t *testing.T) {
	assert.Nil(t, waitContent(nil))

	ch := make(chan content.Library, 1)
	ch <- content.Default()
	msg := waitContent(ch)()
	_, ok := msg.(ContentMsg)
	assert.True(t, ok)

	close(ch)
	assert.Nil(t, waitContent(ch)())
}
