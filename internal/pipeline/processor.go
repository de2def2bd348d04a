package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ragline/ragline/internal/config"
	"github.com/ragline/ragline/internal/knowledge"
	"github.com/ragline/ragline/internal/llm"
	"github.com/ragline/ragline/internal/prompt"
)

// Processor runs the LLM stage of the pipeline: optional retrieval,
// prompt composition, one completion call, and answer validation. It is
// built once; the prompt variant and corpus are fixed for its lifetime.
type Processor struct {
	provider    llm.Provider
	composer    *prompt.Composer
	retriever   *knowledge.Retriever
	model       string
	temperature float64
	maxTokens   int
	logger      *zap.Logger
}

// NewProcessor builds a processor from configuration. When retrieval is
// enabled the knowledge base is loaded here, exactly once; load failures
// degrade to an empty corpus and never prevent startup.
func NewProcessor(cfg *config.Config, provider llm.Provider, logger *zap.Logger) *Processor {
	spec := prompt.ForRetrieval(cfg.EnableRetrieval)

	logger.Info("prompt loaded",
		zap.String("prompt_name", spec.Name),
		zap.String("prompt_version", spec.Version),
		zap.Strings("compatible_models", spec.CompatibleModels))

	if !spec.CompatibleWith(cfg.Model) {
		logger.Warn("untested prompt/model combination",
			zap.String("prompt", spec.Name),
			zap.String("model", cfg.Model),
			zap.Strings("compatible_models", spec.CompatibleModels))
	}

	var corpus []knowledge.Document
	if cfg.EnableRetrieval {
		docs, report, err := knowledge.Load(cfg.KnowledgeBasePath, logger)
		if err != nil {
			logger.Warn("knowledge base unavailable, retrieval will return nothing",
				zap.String("path", cfg.KnowledgeBasePath),
				zap.Error(err))
		} else {
			corpus = docs
			logger.Info("knowledge base loaded",
				zap.Int("documents_count", report.Loaded),
				zap.Int("skipped_lines", report.Skipped))
		}
	} else {
		logger.Info("retrieval disabled")
	}

	return &Processor{
		provider:    provider,
		composer:    prompt.NewComposer(spec),
		retriever:   knowledge.NewRetriever(corpus, cfg.TopK, cfg.EnableRetrieval, logger),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

// Result is the processor's output for one validated query.
type Result struct {
	QueryID string
	Answer  string
	Sources []string
}

// Process retrieves context for the query, composes the prompt, and
// issues a single blocking completion call. Transport and API failures
// surface as a uniform llm_call_failed error; an answer that trims to
// nothing is empty_response.
func (p *Processor) Process(ctx context.Context, q ValidatedQuery) (Result, error) {
	p.logger.Info("processor started", zap.String("query_id", q.ID))

	sources := p.retriever.Retrieve(q.Text)
	system, user := p.composer.Compose(q.Text, sources)

	if len(sources) > 0 {
		p.logger.Debug("using retrieval mode",
			zap.String("query_id", q.ID),
			zap.Int("context_docs_count", len(sources)))
	} else {
		p.logger.Debug("using direct mode", zap.String("query_id", q.ID))
	}

	resp, err := p.provider.Complete(ctx, llm.CompletionRequest{
		Model: p.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		p.logger.Error("LLM API call failed",
			zap.String("query_id", q.ID),
			zap.Error(err))
		return Result{}, &ProcessingError{
			Kind:    ProcessingLLMCallFailed,
			Message: "LLM API call failed",
			Err:     err,
		}
	}

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		p.logger.Error("empty LLM response", zap.String("query_id", q.ID))
		return Result{}, &ProcessingError{
			Kind:    ProcessingEmptyResponse,
			Message: "empty LLM response",
		}
	}

	p.logger.Info("processor completed",
		zap.String("query_id", q.ID),
		zap.Int("answer_length", len(answer)))

	return Result{QueryID: q.ID, Answer: answer, Sources: sources}, nil
}
