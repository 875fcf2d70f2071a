package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/config"
	"github.com/voyago/tripcost/types"
)

// Runner executes agents with uniform timeout and panic containment. It is
// stateless apart from configuration and safe for concurrent use.
type Runner struct {
	planner config.PlannerConfig
	logger  *zap.Logger
}

// NewRunner creates the execution wrapper.
func NewRunner(planner config.PlannerConfig, logger *zap.Logger) *Runner {
	return &Runner{
		planner: planner,
		logger:  logger.With(zap.String("component", "agent_runner")),
	}
}

type outcome struct {
	payload map[string]any
	err     error
}

// Run executes one agent and always returns an envelope, never an error.
// A nil agent fails fast as a precondition violation. Timeouts cancel the
// in-flight call via context; the worker goroutine is left to drain into its
// buffered channel.
func (r *Runner) Run(ctx context.Context, a Agent, req *types.TravelRequest, pctx *Context) Result {
	if a == nil {
		return Result{
			AgentName: "unknown",
			Error:     types.NewError(types.ErrAgentNotReady, "agent is not initialized").Error(),
		}
	}

	name := a.Name()
	timeout := r.planner.TimeoutFor(name)
	start := time.Now()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				ch <- outcome{err: fmt.Errorf("agent panicked: %v", rec)}
			}
		}()
		payload, err := a.Process(runCtx, req, pctx)
		ch <- outcome{payload: payload, err: err}
	}()

	var o outcome
	select {
	case o = <-ch:
	case <-runCtx.Done():
		elapsed := time.Since(start)
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			r.logger.Warn("agent timed out",
				zap.String("agent", name),
				zap.Duration("timeout", timeout),
				zap.Duration("elapsed", elapsed),
			)
			return Result{
				AgentName:      name,
				Error:          fmt.Sprintf("agent %s timed out after %s", name, timeout),
				ProcessingTime: elapsed.Seconds(),
			}
		}
		return Result{
			AgentName:      name,
			Error:          fmt.Sprintf("agent %s canceled: %v", name, runCtx.Err()),
			ProcessingTime: elapsed.Seconds(),
		}
	}

	elapsed := time.Since(start)

	if o.err != nil {
		r.logger.Warn("agent failed",
			zap.String("agent", name),
			zap.Duration("elapsed", elapsed),
			zap.Error(o.err),
		)
		return Result{
			AgentName:      name,
			Error:          o.err.Error(),
			ProcessingTime: elapsed.Seconds(),
		}
	}

	// A payload that carries its own error marker is a failure, not a
	// success with strange data.
	if msg := payloadError(o.payload); msg != "" {
		r.logger.Warn("agent returned error payload",
			zap.String("agent", name),
			zap.String("error", msg),
		)
		return Result{
			AgentName:      name,
			Error:          msg,
			ProcessingTime: elapsed.Seconds(),
		}
	}

	r.logger.Debug("agent completed",
		zap.String("agent", name),
		zap.Duration("elapsed", elapsed),
	)
	return Result{
		AgentName:      name,
		Success:        true,
		Data:           o.payload,
		ProcessingTime: elapsed.Seconds(),
	}
}

// payloadError extracts a non-empty error marker from an agent payload.
func payloadError(payload map[string]any) string {
	v, ok := payload["error"]
	if !ok || v == nil {
		return ""
	}
	switch e := v.(type) {
	case string:
		return e
	case error:
		return e.Error()
	default:
		return fmt.Sprintf("%v", e)
	}
}
