// Package terminal runs a quiz session on a text terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

// clearScreen moves the cursor home and clears the screen.
const clearScreen = "\033[H\033[2J"

const (
	msgHint          = "Type an option number, p (previous), n (next), s (submit) or q (quit)."
	msgNotAvailable  = "Not available here."
	msgInvalidOption = "Unknown option."
	msgSubmitOnLast  = "Submit is available on the last question."
)

// Runner drives one session from line-based input.
type Runner struct {
	session *service.Session
	texts   view.Texts
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	clear   bool
}

// NewRunner creates a Runner. When clear is set the screen is cleared on
// every question change so the new question starts at the top.
func NewRunner(session *service.Session, texts view.Texts, in io.Reader, out io.Writer, logger *zap.Logger, clear bool) *Runner {
	return &Runner{
		session: session,
		texts:   texts,
		in:      in,
		out:     out,
		logger:  logger,
		clear:   clear,
	}
}

// Run renders the first question and processes commands until the quiz is
// submitted, the user quits, the input ends or ctx is done.
// The goroutine reading r.in stays blocked in Read after Run returns and
// exits only when the reader returns.
func (r *Runner) Run(ctx context.Context) error {
	unsubscribe := r.session.Subscribe(r.render)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.drawPage(true)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			done, err := r.handle(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

func (r *Runner) handle(cmd string) (bool, error) {
	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "q":
		return true, nil
	case "p":
		changed, err := r.session.Previous()
		if err != nil {
			return false, err
		}
		if !changed {
			r.println(msgNotAvailable)
		}
	case "n":
		changed, err := r.session.Next()
		if err != nil {
			return false, err
		}
		if !changed {
			r.println(msgNotAvailable)
		}
	case "s":
		_, err := r.session.Submit()
		if errors.Is(err, service.ErrSubmitUnavailable) {
			r.println(msgSubmitOnLast)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	default:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			r.println(msgHint)
			return false, nil
		}
		if err := r.session.Select(n - 1); err != nil {
			if errors.Is(err, service.ErrInvalidOption) {
				r.println(msgInvalidOption)
				return false, nil
			}
			return false, err
		}
	}

	return false, nil
}

func (r *Runner) render(c service.Change) {
	if c.Report != nil {
		r.println("")
		r.println(view.ReportText(*c.Report))
		r.logger.Debug("quiz submitted",
			zap.Int("score", c.Report.Score),
			zap.Int("total", c.Report.Total),
		)
		return
	}
	r.drawPage(c.IndexChanged)
}

func (r *Runner) drawPage(top bool) {
	if top && r.clear {
		fmt.Fprint(r.out, clearScreen)
	}
	fmt.Fprint(r.out, FormatPage(view.NewPage(r.texts, r.session.Bank(), r.session.State())))
}

func (r *Runner) println(s string) {
	fmt.Fprintln(r.out, s)
}

// FormatPage renders the header, the question with its options, the
// navigation controls and the footer.
func FormatPage(p view.Page) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s ===\n\n", p.Header)
	fmt.Fprintf(&sb, "%s\n", p.Heading())

	for _, opt := range p.Options {
		mark := " "
		if opt.Checked {
			mark = "•"
		}
		fmt.Fprintf(&sb, "  %d) (%s) %s\n", opt.Index+1, mark, opt.Label)
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Join([]string{
		control("p", p.Previous),
		control("n", p.Next),
		control("s", p.Submit),
	}, "   "))
	sb.WriteString("\n")

	if p.Footer != "" {
		fmt.Fprintf(&sb, "\n%s\n", p.Footer)
	}

	return sb.String()
}

func control(key string, c view.Control) string {
	if !c.Enabled {
		return "[-] " + c.Label
	}
	return "[" + key + "] " + c.Label
}
