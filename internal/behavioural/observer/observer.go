// Package observer demonstrates the Observer pattern.
//
// A forum notifies a set of observer bots whenever a post is added. Bots
// subscribe and unsubscribe by kind; at most one bot of each kind can be
// attached at a time.
package observer

import (
	"fmt"
	"io"
)

// Bot observes forum posts.
type Bot interface {
	// Kind identifies the bot type. The forum keeps one bot per kind.
	Kind() string
	// Process handles a new post.
	Process(w io.Writer, post string)
}

// Forum is the observable subject.
type Forum struct {
	bots []Bot
}

// NewForum creates a forum with no observers.
func NewForum() *Forum {
	return &Forum{}
}

// AddBot subscribes a bot. A bot of the same kind that is already
// subscribed keeps its place; the new one is ignored.
func (f *Forum) AddBot(w io.Writer, bot Bot) {
	for _, existing := range f.bots {
		if existing.Kind() == bot.Kind() {
			return
		}
	}
	fmt.Fprintf(w, "Adding observer: %s\n", bot.Kind())
	f.bots = append(f.bots, bot)
}

// RemoveBot unsubscribes the bot of the given kind, if present.
func (f *Forum) RemoveBot(w io.Writer, kind string) {
	for i, bot := range f.bots {
		if bot.Kind() == kind {
			fmt.Fprintf(w, "Removing observer: %s\n", kind)
			f.bots = append(f.bots[:i], f.bots[i+1:]...)
			return
		}
	}
}

// Observers returns the kinds of all subscribed bots, in subscription
// order.
func (f *Forum) Observers() []string {
	kinds := make([]string, 0, len(f.bots))
	for _, bot := range f.bots {
		kinds = append(kinds, bot.Kind())
	}
	return kinds
}

// NewPost adds a post and notifies every subscribed bot in order.
func (f *Forum) NewPost(w io.Writer, post string) {
	fmt.Fprintln(w, "Adding post and notifying observers...")
	for _, bot := range f.bots {
		bot.Process(w, post)
	}
}

// processorBot is the shared behavior of the concrete demo bots.
type processorBot struct {
	kind string
}

func (b processorBot) Kind() string { return b.kind }

func (b processorBot) Process(w io.Writer, post string) {
	fmt.Fprintf(w, "> %s is processing the new post\n", b.kind)
}

// NewSentimentAnalyser creates a bot that scores post sentiment.
func NewSentimentAnalyser() Bot { return processorBot{kind: "SentimentAnalyser"} }

// NewProfanityDetector creates a bot that flags profanity.
func NewProfanityDetector() Bot { return processorBot{kind: "ProfanityDetector"} }

// NewSpamDetector creates a bot that flags spam.
func NewSpamDetector() Bot { return processorBot{kind: "SpamDetector"} }
