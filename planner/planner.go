// Package planner is the public entry point: it wires the geo, pricing,
// strategy, search, and llm collaborators into the orchestration graph and
// exposes the two operations callers use. One Planner serves concurrent
// requests; each request runs its own graph state.
package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/agent"
	"github.com/voyago/tripcost/config"
	"github.com/voyago/tripcost/geo"
	"github.com/voyago/tripcost/internal/cache"
	"github.com/voyago/tripcost/internal/metrics"
	"github.com/voyago/tripcost/llm"
	"github.com/voyago/tripcost/pricing"
	"github.com/voyago/tripcost/search"
	"github.com/voyago/tripcost/strategy"
	"github.com/voyago/tripcost/types"
	"github.com/voyago/tripcost/workflow"
)

// Option customizes planner construction. Used mainly by tests and by
// callers that bring their own search or generation backends.
type Option func(*options)

type options struct {
	search  search.Service
	gen     llm.TextGenerator
	metrics *metrics.Collector
}

// WithSearchService injects a search backend, bypassing the built-in
// heuristic provider and the redis cache.
func WithSearchService(svc search.Service) Option {
	return func(o *options) { o.search = svc }
}

// WithTextGenerator injects a text-generation backend.
func WithTextGenerator(gen llm.TextGenerator) Option {
	return func(o *options) { o.gen = gen }
}

// WithMetrics attaches the prometheus collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *options) { o.metrics = m }
}

// Planner runs the travel-planning pipeline.
type Planner struct {
	cfg      *config.Config
	graph    *workflow.Graph
	cacheMgr *cache.Manager
	metrics  *metrics.Collector
	logger   *zap.Logger
}

// New wires a Planner from configuration. The redis search cache is
// optional: a missing address or a failed connection degrades to direct
// search, it never fails construction into a dead planner.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resolver := geo.NewResolver(logger)
	tiers := pricing.NewService(logger)

	var cacheRecorder strategy.CacheRecorder
	var stageRecorder workflow.StageRecorder
	var llmRecorder llm.Recorder
	var searchRecorder search.CacheRecorder
	if o.metrics != nil {
		cacheRecorder = o.metrics
		stageRecorder = o.metrics
		llmRecorder = o.metrics
		searchRecorder = o.metrics
	}

	strategies := strategy.NewCache(cfg.Planner.StrategyTTL, tiers, cacheRecorder, logger)

	gen := o.gen
	if gen == nil {
		gen = llm.NewFromConfig(cfg.LLM, logger)
	}
	gen = llm.NewInstrumented(gen, llmRecorder)

	p := &Planner{
		cfg:     cfg,
		metrics: o.metrics,
		logger:  logger.With(zap.String("component", "planner")),
	}

	svc := o.search
	if svc == nil {
		svc = search.NewHeuristicService(tiers, resolver, cfg.Planner.Currency, logger)
		if cfg.Redis.Addr != "" {
			mgr, err := cache.NewManager(cache.Config{
				Addr:       cfg.Redis.Addr,
				Password:   cfg.Redis.Password,
				DB:         cfg.Redis.DB,
				PoolSize:   cfg.Redis.PoolSize,
				DefaultTTL: cfg.Redis.TTL,
			}, logger)
			if err != nil {
				logger.Warn("search cache unavailable, continuing without it", zap.Error(err))
			} else {
				p.cacheMgr = mgr
				svc = search.NewCachedService(svc, mgr, cfg.Redis.TTL, searchRecorder, logger)
			}
		}
	}

	classifier := workflow.NewClassifier(resolver, strategies, logger)
	runner := agent.NewRunner(cfg.Planner, logger)
	agents := workflow.Agents{
		EmotionalAnalysis: agent.NewEmotionalAnalysisAgent(gen, logger),
		FlightSearch:      agent.NewFlightSearchAgent(svc, logger),
		HotelSearch:       agent.NewHotelSearchAgent(svc, logger),
		Transportation:    agent.NewTransportationAgent(strategies, tiers, logger),
		CostEstimation:    agent.NewCostEstimationAgent(tiers, logger),
		Recommendation:    agent.NewRecommendationAgent(gen, svc, logger),
	}
	p.graph = workflow.NewGraph(classifier, runner, agents, stageRecorder, logger)

	return p, nil
}

// ProcessTravelRequest runs the full pipeline for one request. Validation
// failures reject the request outright; everything after validation is
// contained at stage boundaries, so a non-nil response is returned even when
// stages failed (their messages are in the response's Errors).
func (p *Planner) ProcessTravelRequest(ctx context.Context, req *types.TravelRequest) (*types.TravelResponse, error) {
	if req == nil {
		return nil, types.NewError(types.ErrInvalidRequest, "request is required").WithHTTPStatus(400)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	state := workflow.NewPlanningState(req)
	p.graph.Run(ctx, state)
	resp := workflow.AssembleResponse(state, p.cfg.Planner.Currency)

	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordPlanningRequest(len(resp.Errors) == 0, elapsed)
	}
	p.logger.Info("travel request processed",
		zap.String("request_id", resp.RequestID),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Bool("is_domestic", resp.IsDomesticTravel),
		zap.Float64("total_cost", resp.TotalCost),
		zap.Int("stage_errors", len(resp.Errors)),
		zap.Duration("elapsed", elapsed),
	)
	return resp, nil
}

// GetSeasonRecommendation answers the lightweight season query without
// running the graph. Pure function of its arguments.
func (p *Planner) GetSeasonRecommendation(vibe types.Vibe, destination string, start types.Date) (types.SeasonRecommendation, error) {
	if !vibe.Valid() {
		return types.SeasonRecommendation{},
			types.NewError(types.ErrInvalidVibe, fmt.Sprintf("unknown vibe %q", string(vibe))).WithHTTPStatus(400)
	}
	if start.IsZero() {
		return types.SeasonRecommendation{},
			types.NewError(types.ErrInvalidDate, "start date is required").WithHTTPStatus(400)
	}
	return workflow.GetSeasonRecommendation(vibe, destination, start), nil
}

// Close releases the planner's resources.
func (p *Planner) Close() error {
	if p.cacheMgr != nil {
		return p.cacheMgr.Close()
	}
	return nil
}
