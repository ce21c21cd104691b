package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pool"
	"slate/internal/services"
)

// Renderer turns a generated script into a diagram artifact on disk and
// returns the artifact path.
type Renderer interface {
	RenderDiagram(ctx context.Context, contentID int64, script *pool.Script) (string, error)
}

// FileRenderer writes a framed text card per content item under the
// configured output directory.
type FileRenderer struct {
	outputDir string
	logger    *slog.Logger
}

// NewFileRenderer builds the default renderer from config.
func NewFileRenderer(cfg *config.Config, logger *slog.Logger) *FileRenderer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileRenderer{
		outputDir: cfg.Paths.OutputDir,
		logger:    logging.NewComponentLogger(logger, "render"),
	}
}

// RenderDiagram lays the script out as a bordered card and writes it to
// slate-<contentID>.txt in the output directory.
func (r *FileRenderer) RenderDiagram(ctx context.Context, contentID int64, script *pool.Script) (string, error) {
	if script == nil {
		return "", services.Wrap(services.ErrValidation, "render", "diagram", "script is nil", nil)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrCollaborator, "render", "diagram", "create output dir", err)
	}

	card := buildCard(script)
	path := filepath.Join(r.outputDir, fmt.Sprintf("slate-%d.txt", contentID))
	if err := os.WriteFile(path, []byte(card), 0o644); err != nil {
		return "", services.Wrap(services.ErrCollaborator, "render", "diagram", "write artifact", err)
	}

	r.logger.Info("rendered diagram",
		logging.Int64(logging.FieldContentID, contentID),
		logging.String(logging.FieldTemplateID, script.TemplateID),
		logging.String("path", path))
	return path, nil
}

func buildCard(script *pool.Script) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault

	tw.AppendHeader(table.Row{script.HookText})
	tw.AppendRow(table.Row{script.DiagramDescription})
	tw.AppendSeparator()
	for _, step := range script.ContentSteps {
		tw.AppendRow(table.Row{step.Text})
	}

	if script.Statement != "" {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{script.Statement})
	}
	if len(script.AnswerOptions) > 0 {
		tw.AppendSeparator()
		for _, opt := range script.AnswerOptions {
			tw.AppendRow(table.Row{opt})
		}
	}
	if len(script.KeyFacts) > 0 {
		tw.AppendSeparator()
		for _, fact := range script.KeyFacts {
			tw.AppendRow(table.Row{fact})
		}
	}
	if script.Formula != "" {
		tw.AppendRow(table.Row{script.Formula})
	}
	if script.CTAText != "" {
		tw.AppendFooter(table.Row{script.CTAText})
	}

	var sb strings.Builder
	sb.WriteString(tw.Render())
	sb.WriteString("\n")
	return sb.String()
}
