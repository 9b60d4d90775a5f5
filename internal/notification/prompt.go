package notification

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const maxPromptAttempts = 3

// Prompter renders the pending notifications of a Center on a terminal and resolves them from the
// user's answers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt asks about every pending notification in turn. An empty answer, end of input or repeated
// invalid answers dismiss the notification.
func (p *Prompter) Prompt(ctx context.Context, c *Center) error {
	for _, item := range c.Pending() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.ask(item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prompter) ask(item *Item) error {
	fmt.Fprintln(p.out, item.Message)
	if item.Options.Detail != "" {
		fmt.Fprintln(p.out, item.Options.Detail)
	}
	for i, b := range item.Options.Buttons {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, b.Text)
	}

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprintf(p.out, "Choose [1-%d], or press enter to dismiss: ", len(item.Options.Buttons))

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "failed to read answer")
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			item.Dismiss()
			return nil
		}

		choice, convErr := strconv.Atoi(answer)
		if convErr == nil && choice >= 1 && choice <= len(item.Options.Buttons) {
			return item.Click(choice - 1)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		fmt.Fprintf(p.out, "%q is not a valid choice\n", answer)
	}

	item.Dismiss()
	return nil
}
