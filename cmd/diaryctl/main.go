// Command diaryctl manages diary entries on a running server.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/diary_app/internal/dto"
	"github.com/SscSPs/diary_app/internal/utils"
	"github.com/SscSPs/diary_app/pkg/client"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		slog.Error("diaryctl failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	entryFlags := []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "entry date (YYYY-MM-DD)"},
		&cli.IntFlag{Name: "mood", Usage: "mood from 1 to 10"},
		&cli.StringFlag{Name: "learned"},
		&cli.StringFlag{Name: "improvements"},
		&cli.StringSliceFlag{Name: "gratitude", Usage: "gratitude item, repeat the flag for more items"},
		&cli.StringFlag{Name: "looking-forward"},
		&cli.StringFlag{Name: "news"},
	}

	return &cli.App{
		Name:   "diaryctl",
		Usage:  "manage daily diary entries",
		Writer: out,

		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:8080", EnvVars: []string{"DIARY_SERVER"}},
			&cli.StringFlag{Name: "token", EnvVars: []string{"DIARY_TOKEN"}, Usage: "bearer token when the server requires auth"},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list entries, newest first",
				Action: func(c *cli.Context) error {
					entries, err := apiClient(c).List(c.Context)
					if err != nil {
						return err
					}
					return printJSON(out, entries)
				},
			},
			{
				Name:      "get",
				Usage:     "show one entry",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := requireID(c)
					if err != nil {
						return err
					}
					entry, err := apiClient(c).Get(c.Context, id)
					if err != nil {
						return err
					}
					return printJSON(out, entry)
				},
			},
			{
				Name:  "add",
				Usage: "create an entry",
				Flags: entryFlags,
				Action: func(c *cli.Context) error {
					entry, err := apiClient(c).Create(c.Context, requestFromFlags(c))
					if err != nil {
						return err
					}
					return printJSON(out, entry)
				},
			},
			{
				Name:      "update",
				Usage:     "replace an entry",
				ArgsUsage: "<id>",
				Flags:     entryFlags,
				Action: func(c *cli.Context) error {
					id, err := requireID(c)
					if err != nil {
						return err
					}
					entry, err := apiClient(c).Update(c.Context, id, requestFromFlags(c))
					if err != nil {
						return err
					}
					return printJSON(out, entry)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an entry",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := requireID(c)
					if err != nil {
						return err
					}
					if err := apiClient(c).Delete(c.Context, id); err != nil {
						return err
					}
					_, err = fmt.Fprintf(out, "deleted %s\n", id)
					return err
				},
			},
			{
				Name:  "stats",
				Usage: "show mood statistics",
				Action: func(c *cli.Context) error {
					stats, err := apiClient(c).Stats(c.Context)
					if err != nil {
						return err
					}
					return printJSON(out, stats)
				},
			},
			{
				Name:  "token",
				Usage: "mint a bearer token signed with the server's JWT secret",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Required: true},
					&cli.StringFlag{Name: "subject", Value: "diaryctl"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
				},
				Action: func(c *cli.Context) error {
					token, err := utils.GenerateAccessToken(c.String("subject"), c.String("secret"), c.Duration("ttl"))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(out, token)
					return err
				},
			},
			{
				Name:  "export",
				Usage: "download all entries",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "json", Usage: "json or csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "file to write, stdout when empty"},
				},
				Action: func(c *cli.Context) error {
					data, err := apiClient(c).Export(c.Context, c.String("format"))
					if err != nil {
						return err
					}
					if path := c.String("output"); path != "" {
						return os.WriteFile(path, data, 0o644)
					}
					_, err = out.Write(data)
					return err
				},
			},
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("server"), client.WithToken(c.String("token")))
}

func requireID(c *cli.Context) (string, error) {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", errors.New("entry id argument is required")
	}
	return id, nil
}

func requestFromFlags(c *cli.Context) dto.EntryRequest {
	return dto.EntryRequest{
		Date:           c.String("date"),
		Mood:           c.Int("mood"),
		Learned:        c.String("learned"),
		Improvements:   c.String("improvements"),
		Gratitude:      c.StringSlice("gratitude"),
		LookingForward: c.String("looking-forward"),
		News:           c.String("news"),
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
