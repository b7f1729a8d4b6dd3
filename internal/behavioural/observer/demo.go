package observer

import (
	"context"
	"fmt"
	"io"
)

// Demo subscribes three bots to a forum, posts, unsubscribes one and
// posts again to show the changed notification fan-out.
func Demo(ctx context.Context, w io.Writer) error {
	forum := NewForum()

	forum.AddBot(w, NewSentimentAnalyser())
	forum.AddBot(w, NewProfanityDetector())
	forum.AddBot(w, NewSpamDetector())
	fmt.Fprintln(w)

	forum.NewPost(w, "Hello this is a post.")
	fmt.Fprintln(w)

	forum.RemoveBot(w, "ProfanityDetector")
	fmt.Fprintln(w)

	forum.NewPost(w, "Hello this is another post.")
	return nil
}
