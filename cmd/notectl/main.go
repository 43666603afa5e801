// notectl is a small operator CLI over the note store, useful for
// inspecting a drive without the web frontend.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"drivenotes/internal/config"
	"drivenotes/internal/domain/services"
	driverepo "drivenotes/internal/repository/drive"
	"drivenotes/internal/service/extract"
	"drivenotes/internal/service/folders"
	"drivenotes/internal/service/notes"
	"drivenotes/internal/service/store"
	"drivenotes/internal/service/summarize"
)

func newNoteService(logger *slog.Logger) services.NoteService {
	cfg := config.Load()
	files := driverepo.NewStore(logger)
	resolver := folders.NewResolver(files, cfg.RootFolderName, logger)
	slotStore := store.NewStore(files, logger)
	return notes.NewService(resolver, slotStore, files, extract.NewExtractor(logger), logger)
}

func token(cmd *cli.Command) (string, error) {
	t := cmd.String("token")
	if t == "" {
		return "", fmt.Errorf("no access token: set --token or GOOGLE_ACCESS_TOKEN")
	}
	return t, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cmd := &cli.Command{
		Name:  "notectl",
		Usage: "Inspect and manage drive-backed notes from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Drive access token",
				Sources: cli.EnvVars("GOOGLE_ACCESS_TOKEN"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List note folders, newest first",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					t, err := token(cmd)
					if err != nil {
						return err
					}
					list, err := newNoteService(logger).List(ctx, t)
					if err != nil {
						return err
					}
					for _, n := range list {
						fmt.Printf("%s\t%s\t%s\n", n.ID, n.CreatedTime.Format("2006-01-02 15:04"), n.Name)
					}
					return nil
				},
			},
			{
				Name:      "create",
				Usage:     "Create an empty note",
				ArgsUsage: "<title>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					t, err := token(cmd)
					if err != nil {
						return err
					}
					title := cmd.Args().First()
					note, err := newNoteService(logger).Create(ctx, t, title)
					if err != nil {
						return err
					}
					fmt.Println(note.ID)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Print a note's summary, body and tags",
				ArgsUsage: "<folder-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					t, err := token(cmd)
					if err != nil {
						return err
					}
					svc := newNoteService(logger)
					id := cmd.Args().First()

					data, err := svc.Load(ctx, t, id)
					if err != nil {
						return err
					}
					tags, err := svc.LoadTags(ctx, t, id)
					if err != nil {
						return err
					}

					fmt.Printf("summary:\n%s\n\nnote:\n%s\n\ntags: %v\nsketch: %v\n",
						data.Summary, data.Note, tags, data.HasSketch)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Move a note to the trash",
				ArgsUsage: "<folder-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					t, err := token(cmd)
					if err != nil {
						return err
					}
					return newNoteService(logger).Delete(ctx, t, cmd.Args().First())
				},
			},
			{
				Name:      "summarize",
				Usage:     "Summarize a local text file via the inference endpoint",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "prompt",
						Usage: "Additional custom instruction",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					data, err := os.ReadFile(cmd.Args().First())
					if err != nil {
						return err
					}

					summarizer, err := summarize.NewGeminiSummarizer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
					if err != nil {
						return err
					}
					return summarizer.SummarizeTextStream(ctx, string(data), cmd.String("prompt"),
						func(chunk string) error {
							fmt.Print(chunk)
							return nil
						})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
