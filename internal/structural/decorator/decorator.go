// Package decorator demonstrates the decorator pattern: validators wrap
// handler functions middleware-style, adding behavior without touching the
// handler or reaching for inheritance.
package decorator

import (
	"fmt"
	"strings"
	"unicode"
)

// Handler processes one form input and returns the response line.
type Handler func(value any) string

// Decorator wraps a handler with extra behavior around the call.
type Decorator func(Handler) Handler

// Chain applies decorators to a handler so that the first decorator listed
// validates first.
func Chain(h Handler, decorators ...Decorator) Handler {
	for i := len(decorators) - 1; i >= 0; i-- {
		h = decorators[i](h)
	}
	return h
}

// IsString short-circuits the handler when the input is not a string.
func IsString(next Handler) Handler {
	return func(value any) string {
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("'%v' is invalid. Input should be a string.", value)
		}
		return next(value)
	}
}

// IsLowercase short-circuits the handler when the input contains uppercase
// letters. It assumes IsString ran first.
func IsLowercase(next Handler) Handler {
	return func(value any) string {
		text := value.(string)
		if strings.ContainsFunc(text, unicode.IsUpper) {
			return fmt.Sprintf("'%v' is invalid. Input should be lowercase.", text)
		}
		return next(value)
	}
}

// TextForm registers inputs. The username and team-name handlers are
// wrapped in validators; the comments handler is deliberately left bare.
type TextForm struct {
	inputUsername Handler
	inputTeamName Handler
}

// NewTextForm builds a form with string and lowercase validation on its
// input handlers.
func NewTextForm() *TextForm {
	register := func(value any) string {
		return fmt.Sprintf("'%v' is valid. Input registered.", value)
	}
	validators := []Decorator{IsString, IsLowercase}
	return &TextForm{
		inputUsername: Chain(register, validators...),
		inputTeamName: Chain(register, validators...),
	}
}

// InputUsername runs the username input through the validator chain.
func (f *TextForm) InputUsername(value any) string {
	return f.inputUsername(value)
}

// InputTeamName runs the team-name input through the validator chain.
func (f *TextForm) InputTeamName(value any) string {
	return f.inputTeamName(value)
}

// SpecialInputComments accepts anything; no validators are attached.
func (f *TextForm) SpecialInputComments(value any) string {
	return "Comments are always valid!"
}
