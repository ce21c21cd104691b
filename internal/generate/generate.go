package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pool"
	"slate/internal/render"
	"slate/internal/services"
	"slate/internal/store"
)

// Orchestrator runs the generation pipeline: pick a template, synthesize the
// script, render the diagram, and move the content item to READY. A failed
// step marks the item FAILED with the error text; the topic and content rows
// are kept so operators can inspect what went wrong.
type Orchestrator struct {
	store        *store.Store
	pool         *pool.Pool
	renderer     render.Renderer
	logger       *slog.Logger
	maxBatch     int
	recentWindow int

	wg sync.WaitGroup
}

// New builds an orchestrator with limits taken from config.
func New(cfg *config.Config, st *store.Store, p *pool.Pool, r render.Renderer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{
		store:        st,
		pool:         p,
		renderer:     r,
		logger:       logging.NewComponentLogger(logger, "generate"),
		maxBatch:     cfg.Generation.MaxBatch,
		recentWindow: cfg.Generation.RecentWindow,
	}
}

// Request describes one generation job.
type Request struct {
	Topic       string
	Category    string
	Description string
	ContentType store.ContentType
}

func (req Request) validate() error {
	if strings.TrimSpace(req.Topic) == "" {
		return services.Wrap(services.ErrValidation, "generate", "request", "topic is required", nil)
	}
	return nil
}

// Generate runs the full pipeline synchronously and returns the finished
// content item. On pipeline failure the item is returned in FAILED state
// alongside the error.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*store.ContentItem, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = store.TypeProblem
	}

	topic, err := o.store.FindOrCreateTopic(ctx, req.Topic, req.Category, req.Description)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "generate", "topic", "find or create topic", err)
	}

	item, err := o.store.NewContent(ctx, topic.ID, contentType)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "generate", "content", "create content row", err)
	}

	if err := o.runPipeline(ctx, topic, item); err != nil {
		return item, err
	}
	return item, nil
}

// GenerateAsync starts the pipeline in the background after the content row
// exists, returning the item immediately in GENERATING state. Wait blocks
// until all async pipelines drain.
func (o *Orchestrator) GenerateAsync(ctx context.Context, req Request) (*store.ContentItem, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = store.TypeProblem
	}

	topic, err := o.store.FindOrCreateTopic(ctx, req.Topic, req.Category, req.Description)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "generate", "topic", "find or create topic", err)
	}
	item, err := o.store.NewContent(ctx, topic.ID, contentType)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "generate", "content", "create content row", err)
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		if err := o.runPipeline(context.WithoutCancel(ctx), topic, item); err != nil {
			o.logger.Error("generation pipeline failed",
				logging.Int64(logging.FieldContentID, item.ID),
				logging.Error(err))
		}
	}()
	return item, nil
}

// GenerateBatch runs count pipelines one after another so each run sees the
// previous runs' template ids in its recency window. Items that failed
// mid-pipeline are returned in FAILED state; the batch itself only errors on
// invalid input.
func (o *Orchestrator) GenerateBatch(ctx context.Context, req Request, count int) ([]*store.ContentItem, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if count < 1 || count > o.maxBatch {
		return nil, services.Wrap(services.ErrValidation, "generate", "batch",
			fmt.Sprintf("count must be between 1 and %d", o.maxBatch), nil)
	}

	items := make([]*store.ContentItem, 0, count)
	for i := 0; i < count; i++ {
		item, err := o.Generate(ctx, req)
		if err != nil && item == nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Wait blocks until every async pipeline has finished.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) runPipeline(ctx context.Context, topic *store.Topic, item *store.ContentItem) error {
	recent, err := o.store.RecentTemplateIDs(ctx, o.recentWindow)
	if err != nil {
		return o.fail(ctx, item, fmt.Errorf("recent template ids: %w", err))
	}

	script, err := o.pool.Generate(topic.Name, topic.Category, topic.Description, recent)
	if err != nil {
		return o.fail(ctx, item, fmt.Errorf("generate script: %w", err))
	}

	payload, err := json.Marshal(script)
	if err != nil {
		return o.fail(ctx, item, fmt.Errorf("encode script: %w", err))
	}
	item.ScriptText = scriptText(script)
	item.ScriptJSON = string(payload)
	if err := o.store.UpdateContent(ctx, item); err != nil {
		return o.fail(ctx, item, fmt.Errorf("persist script: %w", err))
	}

	diagramPath, err := o.renderer.RenderDiagram(ctx, item.ID, script)
	if err != nil {
		return o.fail(ctx, item, fmt.Errorf("render diagram: %w", err))
	}
	item.DiagramPath = diagramPath

	if err := o.store.TransitionContent(ctx, item, store.StatusReady); err != nil {
		return o.fail(ctx, item, fmt.Errorf("mark ready: %w", err))
	}

	o.logger.Info("content ready",
		logging.Int64(logging.FieldContentID, item.ID),
		logging.String(logging.FieldTemplateID, script.TemplateID))
	return nil
}

// fail records the error on the item and leaves everything else in place.
// A retry is a fresh generation request.
func (o *Orchestrator) fail(ctx context.Context, item *store.ContentItem, cause error) error {
	item.SetFailed(cause.Error())
	if updateErr := o.store.UpdateContent(ctx, item); updateErr != nil {
		o.logger.Error("failed to record generation failure",
			logging.Int64(logging.FieldContentID, item.ID),
			logging.Error(updateErr))
	}
	return services.Wrap(services.ErrCollaborator, "generate", "pipeline", "generation failed", cause)
}

// scriptText flattens the script into the human-readable narration stored
// alongside the JSON payload.
func scriptText(script *pool.Script) string {
	var sb strings.Builder
	sb.WriteString(script.HookText)
	sb.WriteString("\n\n")
	for _, step := range script.ContentSteps {
		sb.WriteString(step.Text)
		sb.WriteString("\n")
	}
	if script.Statement != "" {
		sb.WriteString(script.Statement)
		sb.WriteString("\n")
	}
	for _, opt := range script.AnswerOptions {
		sb.WriteString(opt)
		sb.WriteString("\n")
	}
	for _, fact := range script.KeyFacts {
		sb.WriteString(fact)
		sb.WriteString("\n")
	}
	if script.Explanation != "" {
		sb.WriteString("\n")
		sb.WriteString(script.Explanation)
		sb.WriteString("\n")
	}
	if script.CTAText != "" {
		sb.WriteString(script.CTAText)
		sb.WriteString("\n")
	}
	return sb.String()
}
