package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/moviematch/core/internal/client"
	"github.com/moviematch/core/internal/logging"
	"github.com/urfave/cli/v3"
)

const (
	likeReaction = 1
	passReaction = 0
)

func swipe(ctx context.Context, c *client.Client, in *bufio.Scanner, out io.Writer) error {
	for {
		movies, err := c.Feed(ctx)
		if errors.Is(err, client.ErrFeedExhausted) {
			fmt.Fprintln(out, "No movies left. Come back after the next import.")
			return nil
		}
		if err != nil {
			return err
		}

		for _, m := range movies {
			fmt.Fprintf(out, "\n%s  (%.1f)\n", m.Title, m.VoteAverage)
			if m.Platform != "" {
				fmt.Fprintf(out, "  on %s\n", m.Platform)
			}
			if m.GenresList != "" {
				fmt.Fprintf(out, "  %s\n", m.GenresList)
			}
			if m.Overview != "" {
				fmt.Fprintf(out, "  %s\n", m.Overview)
			}
			fmt.Fprint(out, "[l]ike, [p]ass, [q]uit: ")

			if !in.Scan() {
				return in.Err()
			}

			var reaction int
			switch strings.ToLower(strings.TrimSpace(in.Text())) {
			case "l":
				reaction = likeReaction
			case "p":
				reaction = passReaction
			case "q":
				return nil
			default:
				fmt.Fprintln(out, "skipped")
				continue
			}

			outcome, err := c.React(ctx, m.ID, reaction)
			if err != nil {
				return err
			}
			if outcome.Match {
				fmt.Fprintf(out, "*** %s %s ***\n", outcome.Message, m.Title)
			}
		}
	}
}

func main() {
	app := &cli.Command{
		Name:  "swipe",
		Usage: "Swipe through the movie feed from the console",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "API base URL",
				Value: "http://localhost:3000/api",
			},
			&cli.IntFlag{
				Name:  "viewer",
				Usage: "Participant id sent as X-Viewer-ID (0 uses the server default)",
			},
			&cli.StringFlag{
				Name:  "genre",
				Usage: "Only show movies of this genre",
			},
			&cli.StringFlag{
				Name:  "platform",
				Usage: "Only show movies streaming on this platform",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := client.New(cmd.String("url"), int64(cmd.Int("viewer")),
				client.WithFilter(cmd.String("genre"), cmd.String("platform")))
			return swipe(ctx, c, bufio.NewScanner(os.Stdin), os.Stdout)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logging.Logger().Error().Err(err).Msg("swipe failed")
		stop()
		os.Exit(1)
	}
}
