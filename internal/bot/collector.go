// Package bot implements the conversational front-end: a state machine that
// collects a valid, ordered date range from free-form user input and submits
// it to the booking store.
//
// The machine is externally driven: one Handle call per user turn, no
// background work. Bot replies are produced by a Generator, but generator
// output is presentation-only; only the raw user input advances the machine.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/example/booking-assistant/internal/calendar"
	"github.com/example/booking-assistant/internal/domain"
)

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation log. The log is append-only and is
// used only as context for the Generator; the store never sees it.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Generator produces the bot's free-text replies. instruction tells the
// generator what to say; log supplies the conversation so far as context.
// Implementations live in internal/llm.
type Generator interface {
	Generate(ctx context.Context, instruction string, log []Message) (string, error)
}

// BookingCreator is the single store operation the collector depends on.
type BookingCreator interface {
	Create(from, to time.Time) (domain.Booking, error)
}

// State enumerates the collector's states. Confirming and Submitting are
// transited within a single Handle call (no user input arrives between the
// summary and the store call), so callers only ever observe the awaiting
// states and Done.
type State int

const (
	StateAwaitingStart State = iota + 1
	StateAwaitingEnd
	StateConfirming
	StateSubmitting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "awaiting_start"
	case StateAwaitingEnd:
		return "awaiting_end"
	case StateConfirming:
		return "confirming"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Generator instructions, modelled as directives rather than final copy: the
// generator turns them into user-facing text. The fallback strings below are
// used verbatim when the generator fails.
const (
	instrGreeting     = "You are a helpful booking assistant. Greet the user and ask for the start date of the booking in ISO format (YYYY-MM-DDTHH:MM:SS)."
	instrAskEnd       = "The start date is recorded. Ask the user for the end date of the booking in ISO format (YYYY-MM-DDTHH:MM:SS)."
	instrRestartOrder = "The start date must be earlier than the end date. Apologise and ask the user to re-enter both dates, starting with the start date."
)

const (
	fallbackGreeting     = "Hello! I can book a time slot for you. Please provide the start date in ISO format (YYYY-MM-DDTHH:MM:SS)."
	fallbackAskEnd       = "Got it. Now please provide the end date in ISO format (YYYY-MM-DDTHH:MM:SS)."
	fallbackRestartOrder = "The start date must be earlier than the end date. Let's start over: please provide the start date again."
	fallbackDone         = "This booking is already complete. Start a new session to make another booking."
)

// Collector gathers two valid, ordered timestamps one user turn at a time and
// submits them to the store exactly once. Not safe for concurrent use; the
// SessionManager serializes access per session.
type Collector struct {
	state       State
	log         []Message
	pendingFrom *time.Time
	pendingTo   *time.Time
	store       BookingCreator
	gen         Generator
}

// NewCollector returns a Collector in StateAwaitingStart.
func NewCollector(store BookingCreator, gen Generator) *Collector {
	return &Collector{state: StateAwaitingStart, store: store, gen: gen}
}

// State returns the collector's current state.
func (c *Collector) State() State { return c.state }

// Log returns a copy of the conversation log.
func (c *Collector) Log() []Message {
	out := make([]Message, len(c.log))
	copy(out, c.log)
	return out
}

// Greeting emits the opening prompt asking for the start date.
func (c *Collector) Greeting(ctx context.Context) string {
	return c.say(ctx, instrGreeting, fallbackGreeting)
}

// Handle processes one user turn and returns the bot's reply. done is true
// once the machine has reached StateDone: whether the submission succeeded
// or failed, the session's flow is over and is not retried.
func (c *Collector) Handle(ctx context.Context, input string) (reply string, done bool) {
	if c.state == StateDone {
		return fallbackDone, true
	}

	c.log = append(c.log, Message{Role: RoleUser, Content: input})

	ts, err := calendar.ParseTimestamp(input)
	if err != nil {
		// Malformed input keeps the machine in place; there is no cap on
		// retries.
		return c.correct(ctx, input), false
	}

	switch c.state {
	case StateAwaitingStart:
		c.pendingFrom = &ts
		c.state = StateAwaitingEnd
		return c.say(ctx, instrAskEnd, fallbackAskEnd), false

	case StateAwaitingEnd:
		c.pendingTo = &ts
		if !c.pendingFrom.Before(*c.pendingTo) {
			// Both dates parsed but the pair is invalid: discard both and
			// restart collection from the beginning.
			c.pendingFrom, c.pendingTo = nil, nil
			c.state = StateAwaitingStart
			return c.say(ctx, instrRestartOrder, fallbackRestartOrder), false
		}
		return c.submit(), true
	}

	return fallbackDone, true
}

// submit runs the Confirming and Submitting steps back to back: summarise the
// collected range, call the store exactly once, and report the outcome. The
// confirmation and failure messages are composed directly (not generated) so
// the booking id or error detail is always present verbatim.
func (c *Collector) submit() string {
	c.state = StateConfirming
	from, to := *c.pendingFrom, *c.pendingTo
	summary := fmt.Sprintf("Booking from %s to %s.",
		from.Format(calendar.TimestampFormat), to.Format(calendar.TimestampFormat))

	c.state = StateSubmitting
	booking, err := c.store.Create(from, to)
	c.state = StateDone

	var reply string
	if err != nil {
		reply = fmt.Sprintf("%s Unfortunately the booking could not be created: %v.", summary, err)
	} else {
		reply = fmt.Sprintf("%s Your booking has been confirmed! Booking ID: %d.", summary, booking.ID)
	}
	c.log = append(c.log, Message{Role: RoleAssistant, Content: reply})
	return reply
}

// correct asks the user to fix a malformed timestamp without changing state.
func (c *Collector) correct(ctx context.Context, input string) string {
	which := "start"
	if c.state == StateAwaitingEnd {
		which = "end"
	}
	instr := fmt.Sprintf("The input %q is not a valid timestamp. Ask the user to re-enter the %s date in ISO format (YYYY-MM-DDTHH:MM:SS).", input, which)
	fallback := fmt.Sprintf("Sorry, %q is not a valid timestamp. Please provide the %s date in ISO format (YYYY-MM-DDTHH:MM:SS).", input, which)
	return c.say(ctx, instr, fallback)
}

// say asks the generator for a reply and appends it to the log. A generator
// failure is a presentation problem only: the fallback text is used and the
// machine's state is untouched.
func (c *Collector) say(ctx context.Context, instruction, fallback string) string {
	text, err := c.gen.Generate(ctx, instruction, c.log)
	if err != nil || text == "" {
		text = fallback
	}
	c.log = append(c.log, Message{Role: RoleAssistant, Content: text})
	return text
}
