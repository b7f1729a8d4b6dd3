package observer

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddBot_DuplicateKindIgnored(t *testing.T) {
	forum := NewForum()

	var buf bytes.Buffer
	forum.AddBot(&buf, NewSpamDetector())
	forum.AddBot(&buf, NewSpamDetector())

	require.Equal(t, []string{"SpamDetector"}, forum.Observers())
	require.Equal(t, 1, strings.Count(buf.String(), "Adding observer: SpamDetector"))
}

func TestNewPost_NotifiesInSubscriptionOrder(t *testing.T) {
	forum := NewForum()
	forum.AddBot(io.Discard, NewSentimentAnalyser())
	forum.AddBot(io.Discard, NewProfanityDetector())

	var buf bytes.Buffer
	forum.NewPost(&buf, "post")

	out := buf.String()
	require.Less(t,
		strings.Index(out, "SentimentAnalyser"),
		strings.Index(out, "ProfanityDetector"))
}

func TestRemoveBot_StopsNotifications(t *testing.T) {
	forum := NewForum()
	forum.AddBot(io.Discard, NewSentimentAnalyser())
	forum.AddBot(io.Discard, NewProfanityDetector())

	forum.RemoveBot(io.Discard, "ProfanityDetector")
	require.Equal(t, []string{"SentimentAnalyser"}, forum.Observers())

	var buf bytes.Buffer
	forum.NewPost(&buf, "post")
	require.NotContains(t, buf.String(), "ProfanityDetector")
}

func TestRemoveBot_UnknownKindIsNoOp(t *testing.T) {
	forum := NewForum()
	forum.AddBot(io.Discard, NewSpamDetector())

	var buf bytes.Buffer
	forum.RemoveBot(&buf, "Nonexistent")

	require.Empty(t, buf.String())
	require.Equal(t, []string{"SpamDetector"}, forum.Observers())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "Adding post and notifying observers..."))
	// The profanity detector only sees the first post.
	require.Equal(t, 1, strings.Count(out, "> ProfanityDetector is processing the new post"))
	require.Equal(t, 2, strings.Count(out, "> SpamDetector is processing the new post"))
}
