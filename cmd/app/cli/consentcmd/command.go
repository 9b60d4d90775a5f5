package consentcmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/consent"
)

type CommandDeps struct {
	fx.In

	Store consent.Store
}

func Command(depsFn func() (CommandDeps, func(), error)) *cli.Command {
	withDeps := func(fn func(c *cli.Context, deps CommandDeps) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			deps, stop, err := depsFn()
			if err != nil {
				return err
			}
			defer stop()
			return fn(c, deps)
		}
	}

	return &cli.Command{
		Name:  "consent",
		Usage: "inspect remembered consent prompts",
		Subcommands: []*cli.Command{
			{
				Name:      "status",
				Usage:     "tell whether the prompt for a request name was already shown",
				ArgsUsage: "[request-name]",
				Action:    withDeps(status),
			},
			{
				Name:      "forget",
				Usage:     "forget the prompt for a request name so that it is shown again",
				ArgsUsage: "[request-name]",
				Action:    withDeps(forget),
			},
		},
	}
}

func status(c *cli.Context, deps CommandDeps) error {
	key := consent.Key(c.Args().First())
	record, err := deps.Store.Get(c.Context, key)
	if errors.Is(err, consent.ErrNotFound) {
		fmt.Fprintf(c.App.Writer, "%s: not asked\n", key)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read consent record %s", key)
	}
	if record.AskedAt.IsZero() {
		fmt.Fprintf(c.App.Writer, "%s: asked\n", key)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "%s: asked at %s\n", key, record.AskedAt.Format(time.RFC3339))
	return nil
}

func forget(c *cli.Context, deps CommandDeps) error {
	key := consent.Key(c.Args().First())
	if err := deps.Store.Delete(c.Context, key); err != nil {
		return errors.Wrapf(err, "failed to delete consent record %s", key)
	}
	fmt.Fprintf(c.App.Writer, "%s: forgotten\n", key)
	return nil
}
