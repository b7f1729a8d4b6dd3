// Package state demonstrates the state pattern: a TV whose button behavior
// is delegated to its current state object, which swaps itself for the next
// state after every press.
package state

import (
	"fmt"
	"io"
)

// State is one mode the TV can be in. Operate performs the press and
// ChangeState installs the follow-up state on the TV.
type State interface {
	Operate(w io.Writer)
	ChangeState(w io.Writer)
}

// TV delegates button presses to its current state.
type TV struct {
	on    State
	off   State
	state State
}

// NewTV returns a TV that starts switched on.
func NewTV() *TV {
	tv := &TV{}
	tv.on = &turnOn{tv: tv}
	tv.off = &turnOff{tv: tv}
	tv.state = tv.on
	return tv
}

// Press operates the current state and transitions to the next one.
func (t *TV) Press(w io.Writer) {
	t.state.Operate(w)
	t.state.ChangeState(w)
}

// IsOn reports whether the next press would turn the TV on.
func (t *TV) IsOn() bool {
	return t.state == t.on
}

type turnOn struct {
	tv *TV
}

func (s *turnOn) Operate(w io.Writer) {
	fmt.Fprintln(w, "Turning Tv On")
}

func (s *turnOn) ChangeState(w io.Writer) {
	fmt.Fprintln(w, "Changing state to Off...")
	s.tv.state = s.tv.off
}

type turnOff struct {
	tv *TV
}

func (s *turnOff) Operate(w io.Writer) {
	fmt.Fprintln(w, "Turning Tv Off")
}

func (s *turnOff) ChangeState(w io.Writer) {
	fmt.Fprintln(w, "Changing state to On...")
	s.tv.state = s.tv.on
}
