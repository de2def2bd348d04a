// Package pipeline implements the query processing core: validation,
// optional lexical retrieval, prompt composition, one LLM completion,
// and result assembly. A Pipeline is constructed once per process and
// shared by all requests; per-request state never leaves Process.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ragline/ragline/internal/config"
	"github.com/ragline/ragline/internal/llm"
)

// Pipeline sequences Validator and Processor and assembles the final
// Outcome. It introduces no failure modes of its own: stage errors
// propagate to the caller unchanged.
type Pipeline struct {
	validator *Validator
	processor *Processor
	logger    *zap.Logger
}

// New constructs the pipeline and its components. Expensive resources
// (the corpus, the prompt variant) are bound here, once.
func New(cfg *config.Config, provider llm.Provider, logger *zap.Logger) *Pipeline {
	logger.Info("initializing pipeline components")

	p := &Pipeline{
		validator: NewValidator(cfg.MinQueryLength, cfg.MaxQueryLength, logger),
		processor: NewProcessor(cfg, provider, logger),
		logger:    logger,
	}

	logger.Info("pipeline initialized")
	return p
}

// Process runs one raw query through validate, process, and assemble.
func (p *Pipeline) Process(ctx context.Context, query string) (*Outcome, error) {
	start := time.Now()

	validated, err := p.validator.Validate(query)
	if err != nil {
		return nil, err
	}

	p.logger.Info("pipeline started", zap.String("query_id", validated.ID))

	result, err := p.processor.Process(ctx, validated)
	if err != nil {
		return nil, err
	}

	elapsedMS := float64(time.Since(start).Microseconds()) / 1000.0

	sources := result.Sources
	if sources == nil {
		sources = []string{}
	}

	outcome := &Outcome{
		QueryID:          result.QueryID,
		Query:            validated.Text,
		Answer:           result.Answer,
		Sources:          sources,
		ProcessingTimeMS: elapsedMS,
		Metadata: Metadata{
			SourcesCount: len(sources),
			HasContext:   len(sources) > 0,
		},
	}

	p.logger.Info("pipeline completed",
		zap.String("query_id", validated.ID),
		zap.Float64("processing_time_ms", elapsedMS))

	return outcome, nil
}
