package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sonyjtp/joke-bot/internal/config"
	"github.com/sonyjtp/joke-bot/internal/models"
	"github.com/sonyjtp/joke-bot/pkg/logger"
)

var (
	// ErrTooManySteps means the run loop hit its step bound. The bound only
	// exists to catch a routing defect; a healthy session never reaches it.
	ErrTooManySteps = errors.New("session step limit reached")

	// ErrInputClosed means stdin ended while the session still wanted input.
	ErrInputClosed = errors.New("input closed before quit")

	errInvalidChoice = errors.New("invalid menu choice")
)

// State names one step of the session controller.
type State int

const (
	StateShowMenu State = iota
	StateFetchJoke
	StateUpdateCategory
	StateExit
)

func (s State) String() string {
	switch s {
	case StateShowMenu:
		return "show_menu"
	case StateFetchJoke:
		return "fetch_joke"
	case StateUpdateCategory:
		return "update_category"
	case StateExit:
		return "exit"
	}
	return "unknown"
}

// JokeSource supplies joke text for a language/category pair.
type JokeSource interface {
	Get(language models.Language, category models.Category) (string, error)
}

// Session is the mutable state of one interactive run. Jokes is append-only;
// Done never reverts to false once set.
type Session struct {
	Jokes      []models.Joke
	LastChoice models.Choice
	Category   models.Category
	Language   models.Language
	Done       bool
}

// Controller drives the session through its states, reading choices from its
// input and rendering to its output.
type Controller struct {
	cfg    config.SessionConfig
	source JokeSource
	in     *bufio.Scanner
	out    io.Writer
	sess   *Session
}

func New(cfg config.SessionConfig, source JokeSource, opts ...Option) (*Controller, error) {
	if source == nil {
		return nil, fmt.Errorf("joke source is required")
	}

	c := &Controller{
		cfg:    cfg,
		source: source,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		sess: &Session{
			LastChoice: models.ChoiceNext,
			Category:   models.Category(cfg.Category),
			Language:   models.Language(cfg.Language),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type Option func(*Controller)

func WithInput(r io.Reader) Option {
	return func(c *Controller) {
		c.in = bufio.NewScanner(r)
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		c.out = w
	}
}

// route maps the last recorded choice to the next state. ShowMenu validates
// input before recording it, so the error branch is unreachable in a correct
// controller.
func route(choice models.Choice) (State, error) {
	switch choice {
	case models.ChoiceNext:
		return StateFetchJoke, nil
	case models.ChoiceChange:
		return StateUpdateCategory, nil
	case models.ChoiceQuit:
		return StateExit, nil
	}
	return StateShowMenu, fmt.Errorf("%w: %q", errInvalidChoice, choice)
}

// Run executes the state loop until Exit, input exhaustion, cancellation or
// the step bound. The returned Session is valid in every case and holds
// whatever jokes were told before the loop ended.
func (c *Controller) Run(ctx context.Context) (*Session, error) {
	fmt.Fprintln(c.out, renderWelcome())

	state := StateShowMenu
	for step := 0; ; step++ {
		if step >= c.cfg.MaxSteps {
			logger.Error("step limit reached, aborting session",
				logger.Int("max_steps", c.cfg.MaxSteps),
				logger.String("state", state.String()),
			)
			return c.sess, fmt.Errorf("aborted after %d steps: %w", step, ErrTooManySteps)
		}

		if err := ctx.Err(); err != nil {
			return c.sess, err
		}

		switch state {
		case StateShowMenu:
			if err := c.showMenu(); err != nil {
				return c.sess, err
			}
			next, err := route(c.sess.LastChoice)
			if err != nil {
				logger.Error("routing invariant violated", logger.Err(err))
				return c.sess, err
			}
			state = next

		case StateFetchJoke:
			c.fetchJoke()
			state = StateShowMenu

		case StateUpdateCategory:
			if err := c.updateCategory(); err != nil {
				return c.sess, err
			}
			state = StateShowMenu

		case StateExit:
			c.exit()
			return c.sess, nil
		}
	}
}

// showMenu prompts until the token is one of n/c/q and records it. This is
// the only retry loop in the controller.
func (c *Controller) showMenu() error {
	fmt.Fprintln(c.out, renderMenuHeader(c.sess.Category, len(c.sess.Jokes)))
	fmt.Fprintln(c.out, renderOptions())

	for {
		token, err := c.readToken("Your choice: ")
		if err != nil {
			return err
		}

		choice := models.Choice(token)
		if choice.Valid() {
			c.sess.LastChoice = choice
			logger.Debug("menu choice recorded", logger.String("choice", token))
			return nil
		}

		fmt.Fprintln(c.out, renderError("Invalid choice. Please enter 'n', 'c', or 'q'."))
	}
}

// fetchJoke asks the source for one joke and records it. A source failure is
// reported and the session returns to the menu with nothing appended.
func (c *Controller) fetchJoke() {
	text, err := c.source.Get(c.sess.Language, c.sess.Category)
	if err != nil {
		logger.Error("failed to fetch joke",
			logger.Err(err),
			logger.String("language", string(c.sess.Language)),
			logger.String("category", string(c.sess.Category)),
		)
		fmt.Fprintln(c.out, renderError("No joke available for this category right now."))
		return
	}

	joke := models.Joke{Text: text, Category: c.sess.Category}
	c.sess.Jokes = append(c.sess.Jokes, joke)
	fmt.Fprintln(c.out, renderJoke(joke))
}

// updateCategory reads a numeric index into the category list. Anything not
// parseable or out of range is reported and leaves the category unchanged.
func (c *Controller) updateCategory() error {
	categories := models.Categories()
	fmt.Fprintln(c.out, renderCategoryMenu(categories))

	token, err := c.readToken("Select a category by number: ")
	if err != nil {
		return err
	}

	index, convErr := strconv.Atoi(token)
	if convErr != nil {
		fmt.Fprintln(c.out, renderError("Invalid input. Please enter a number."))
		return nil
	}
	if index < 0 || index >= len(categories) {
		fmt.Fprintln(c.out, renderError("Invalid choice. Please enter a valid number."))
		return nil
	}

	c.sess.Category = categories[index]
	fmt.Fprintln(c.out, renderCategoryChanged(c.sess.Category))
	logger.Debug("category changed", logger.String("category", string(c.sess.Category)))
	return nil
}

func (c *Controller) exit() {
	c.sess.Done = true
	fmt.Fprintln(c.out, renderFarewell())
	if len(c.sess.Jokes) > 0 {
		fmt.Fprintln(c.out, renderRecap(c.sess.Jokes))
	}
}

func (c *Controller) readToken(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return strings.ToLower(strings.TrimSpace(c.in.Text())), nil
}
