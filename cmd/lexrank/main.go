// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/lexrank"
	"github.com/poiesic/lexrank/rank"
	"github.com/poiesic/lexrank/seed"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lexrank",
		Usage: "Rank the condition catalog against free-text queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "rank",
				Usage:     "Rank catalog records against a query",
				ArgsUsage: "<query terms...>",
				Action:    rankCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of results to return",
						Value:   rank.DefaultTopN,
					},
				},
			},
			{
				Name:   "add",
				Usage:  "Add a record to the catalog, then rank a query against it",
				Action: addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "label",
						Usage: "Record label",
					},
					&cli.StringFlag{
						Name:  "keywords",
						Usage: "Space-separated keyword text",
					},
					&cli.StringFlag{
						Name:  "note",
						Usage: "Free-text note returned with a match",
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "Optional query to rank after adding",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of results to return",
						Value:   rank.DefaultTopN,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List the catalog records",
				Action: listCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log := slog.Default()
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newCatalog() (*lexrank.Catalog, error) {
	records, err := seed.Records()
	if err != nil {
		return nil, err
	}
	return lexrank.New(records)
}

func rankCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "please enter query terms")
		return nil
	}

	catalog, err := newCatalog()
	if err != nil {
		return err
	}
	return runQuery(c, catalog, query)
}

func addCommand(c *cli.Context) error {
	label := c.String("label")
	keywords := c.String("keywords")
	note := c.String("note")
	if strings.TrimSpace(label) == "" || strings.TrimSpace(keywords) == "" || strings.TrimSpace(note) == "" {
		fmt.Fprintln(os.Stderr, "please provide --label, --keywords, and --note")
		return nil
	}

	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	record, err := catalog.AddRecord(label, keywords, note)
	if err != nil {
		return err
	}
	fmt.Printf("added record %d: %s\n", record.Id, record.Label)

	if query := c.String("query"); strings.TrimSpace(query) != "" {
		return runQuery(c, catalog, query)
	}
	return nil
}

func runQuery(c *cli.Context, catalog *lexrank.Catalog, query string) error {
	ranker, err := catalog.NewRanker()
	if err != nil {
		return err
	}
	defer ranker.Release()

	results, err := ranker.Rank(c.Context, query, c.Int("top"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d. %s - %.2f%%\n", i+1, hit.Record.Label, hit.Similarity)
		fmt.Printf("   matched: %s\n", hit.Evidence)
		fmt.Printf("   note: %s\n", hit.Record.Note)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	catalog, err := newCatalog()
	if err != nil {
		return err
	}
	for _, record := range catalog.Records() {
		fmt.Printf("%2d  %-16s %s\n", record.Id, record.Label, record.KeywordText)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
