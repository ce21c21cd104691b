package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/generate"
	"slate/internal/pool"
	"slate/internal/render"
	"slate/internal/store"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		category    string
		description string
		contentType string
		count       int
		batchFile   string
	)

	cmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Synthesize quiz content for a topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				parsedType := store.TypeProblem
				if strings.TrimSpace(contentType) != "" {
					parsed, ok := store.ParseContentType(contentType)
					if !ok {
						return fmt.Errorf("unknown content type %q (expected problem or concept)", contentType)
					}
					parsedType = parsed
				}

				var requests []generate.Request
				switch {
				case batchFile != "":
					if len(args) > 0 {
						return fmt.Errorf("provide either a topic argument or --batch, not both")
					}
					loaded, err := loadBatchRequests(batchFile, parsedType)
					if err != nil {
						return err
					}
					requests = loaded
				case len(args) == 1:
					requests = []generate.Request{{
						Topic:       args[0],
						Category:    category,
						Description: description,
						ContentType: parsedType,
					}}
				default:
					return fmt.Errorf("topic argument or --batch file is required")
				}

				orchestrator := generate.New(cfg, st, pool.New(ctx.logger()), render.NewFileRenderer(cfg, ctx.logger()), ctx.logger())
				out := cmd.OutOrStdout()

				for _, req := range requests {
					items, err := orchestrator.GenerateBatch(cmd.Context(), req, count)
					if err != nil {
						return err
					}
					for _, item := range items {
						fmt.Fprintf(out, "Generated content %d (%s) for topic %q: %s\n",
							item.ID, item.ContentType, req.Topic, item.Status)
						if item.DiagramPath != "" {
							fmt.Fprintf(out, "  diagram: %s\n", item.DiagramPath)
						}
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Topic category, e.g. beam or stress")
	cmd.Flags().StringVar(&description, "description", "", "Topic description used for template matching")
	cmd.Flags().StringVar(&contentType, "type", "", "Content type: problem or concept")
	cmd.Flags().IntVar(&count, "count", 1, "Number of items to generate per topic")
	cmd.Flags().StringVar(&batchFile, "batch", "", "File with one topic per line (topic|category|description)")
	return cmd
}

// loadBatchRequests parses a batch file. Each non-empty line holds a topic,
// optionally followed by |category and |description fields. Lines starting
// with # are skipped.
func loadBatchRequests(path string, contentType store.ContentType) ([]generate.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer file.Close()

	var requests []generate.Request
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "|", 3)
		req := generate.Request{Topic: strings.TrimSpace(fields[0]), ContentType: contentType}
		if len(fields) > 1 {
			req.Category = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			req.Description = strings.TrimSpace(fields[2])
		}
		requests = append(requests, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("batch file %s contains no topics", path)
	}
	return requests, nil
}
