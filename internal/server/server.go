// Package server exposes the Piyavsky optimizer over HTTP as an
// asynchronous job API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/copyleftdev/SERRA/internal/config"
	"github.com/copyleftdev/SERRA/internal/optimization"
	"github.com/copyleftdev/SERRA/internal/optimization/functions"
	"github.com/copyleftdev/SERRA/internal/optimization/piyavsky"
)

// Job statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Job tracks one optimization run. The core refinement loop cannot be
// interrupted, so cancelling a job prevents a pending run from starting
// and discards the result of a running one.
type Job struct {
	ID       string
	Problem  string
	Status   string
	Accepted time.Time
	// StartTime is stamped when the job leaves pending, so it excludes
	// queue wait.
	StartTime *time.Time
	EndTime   *time.Time
	Result    *optimization.Result
	Error     string

	cancelled bool
}

// Server manages optimization jobs and the HTTP endpoints that start,
// monitor, and cancel them.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	mu   sync.RWMutex
	jobs map[string]*Job
}

// New creates a server instance with the given config and logger.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		jobs:   make(map[string]*Job),
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/functions", s.handleFunctions)
		r.Post("/optimize", s.handleOptimize)
		r.Get("/status/{id}", s.handleStatus)
		r.Delete("/optimization/{id}", s.handleCancel)
	})
}

// optimizeRequest is the body of POST /api/v1/optimize. Omitted bounds
// default to the named problem's own interval and omitted numeric knobs
// to the service configuration; supplied values are validated as given.
type optimizeRequest struct {
	Function         string   `json:"function"`
	Lower            *float64 `json:"lower,omitempty"`
	Upper            *float64 `json:"upper,omitempty"`
	Epsilon          *float64 `json:"epsilon,omitempty"`
	MaxIterations    *int     `json:"max_iterations,omitempty"`
	LipschitzSamples *int     `json:"lipschitz_samples,omitempty"`
}

// handleFunctions lists the benchmark catalog.
func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name  string  `json:"name"`
		Desc  string  `json:"description"`
		Lower float64 `json:"lower"`
		Upper float64 `json:"upper"`
		BestX float64 `json:"best_x"`
		BestY float64 `json:"best_y"`
	}

	problems := functions.All()
	entries := make([]entry, len(problems))
	for i, p := range problems {
		entries[i] = entry{
			Name:  p.Name,
			Desc:  p.Desc,
			Lower: p.Lower,
			Upper: p.Upper,
			BestX: p.BestX,
			BestY: p.BestY,
		}
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"functions": entries})
}

// handleOptimize accepts a new optimization job and starts it in the
// background.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Function == "" {
		s.respondError(w, http.StatusBadRequest, "function name is required")
		return
	}

	problem, ok := functions.Lookup(req.Function)
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown function %q", req.Function))
		return
	}

	cfg := optimization.Config{
		Objective:        problem.F,
		Lower:            problem.Lower,
		Upper:            problem.Upper,
		Epsilon:          s.cfg.Optimization.Epsilon,
		MaxIterations:    s.cfg.Optimization.MaxIterations,
		LipschitzSamples: s.cfg.Optimization.LipschitzSamples,
		Logger:           s.logger,
	}
	if req.Lower != nil {
		cfg.Lower = *req.Lower
	}
	if req.Upper != nil {
		cfg.Upper = *req.Upper
	}
	if req.Epsilon != nil {
		cfg.Epsilon = *req.Epsilon
	}
	if req.MaxIterations != nil {
		cfg.MaxIterations = *req.MaxIterations
	}
	if req.LipschitzSamples != nil {
		// An explicit sample count must be usable as given; the zero
		// value means unset only inside the engine config.
		if *req.LipschitzSamples < 2 {
			s.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("lipschitz_samples must be at least 2, got %d", *req.LipschitzSamples))
			return
		}
		cfg.LipschitzSamples = *req.LipschitzSamples
	}

	// Validation errors surface immediately rather than as failed jobs.
	opt, err := piyavsky.New(cfg)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	job := &Job{
		ID:       fmt.Sprintf("opt_%d", time.Now().UnixNano()),
		Problem:  problem.Name,
		Status:   StatusPending,
		Accepted: time.Now(),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	runsStarted.Inc()
	s.logger.Info("optimization accepted",
		zap.String("job_id", job.ID),
		zap.String("function", job.Problem))

	go s.runJob(job, opt)

	// The worker goroutine owns job state transitions from here on; the
	// accepted response always reports the pending status.
	s.respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id": job.ID,
		"status": StatusPending,
	})
}

// runJob executes the optimization and records the terminal state.
func (s *Server) runJob(job *Job, opt *piyavsky.Optimizer) {
	s.mu.Lock()
	if job.cancelled {
		s.mu.Unlock()
		runsFinished.WithLabelValues(StatusCancelled).Inc()
		return
	}
	job.Status = StatusRunning
	started := time.Now()
	job.StartTime = &started
	s.mu.Unlock()

	result, err := opt.Optimize()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	job.EndTime = &now

	if job.cancelled {
		// The cancel handler already set the job status; the result of
		// the finished run is discarded.
		runsFinished.WithLabelValues(StatusCancelled).Inc()
		return
	}
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		runsFinished.WithLabelValues(StatusFailed).Inc()
		s.logger.Error("optimization failed",
			zap.String("job_id", job.ID),
			zap.Error(err))
		return
	}

	job.Status = StatusCompleted
	job.Result = result
	runsFinished.WithLabelValues(StatusCompleted).Inc()
	iterationsPerRun.Observe(float64(result.Iterations))
	s.logger.Info("optimization completed",
		zap.String("job_id", job.ID),
		zap.Int("iterations", result.Iterations),
		zap.Float64("best_x", result.BestX),
		zap.Float64("best_y", result.BestY))
}

// handleStatus reports the state and, once completed, the result of a job.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	if !exists {
		s.respondError(w, http.StatusNotFound, "job not found")
		return
	}

	response := map[string]interface{}{
		"job_id":   job.ID,
		"function": job.Problem,
		"status":   job.Status,
		"accepted": job.Accepted.Format(time.RFC3339Nano),
	}
	if job.StartTime != nil {
		response["start_time"] = job.StartTime.Format(time.RFC3339Nano)
	}
	if job.EndTime != nil {
		response["end_time"] = job.EndTime.Format(time.RFC3339Nano)
	}
	if job.Error != "" {
		response["error"] = job.Error
	}
	if job.Result != nil {
		response["result"] = map[string]interface{}{
			"best_x":      job.Result.BestX,
			"best_y":      job.Result.BestY,
			"iterations":  job.Result.Iterations,
			"evaluations": len(job.Result.Trace),
			"elapsed_ms":  float64(job.Result.Elapsed.Microseconds()) / 1000.0,
			"lipschitz":   job.Result.Lipschitz,
			"trace":       job.Result.Trace,
		}
	}

	s.respondJSON(w, http.StatusOK, response)
}

// handleCancel cancels a pending or running job.
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		s.respondError(w, http.StatusNotFound, "job not found")
		return
	}

	switch job.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		s.respondError(w, http.StatusConflict,
			fmt.Sprintf("cannot cancel job with status %q", job.Status))
		return
	}

	job.cancelled = true
	job.Status = StatusCancelled
	now := time.Now()
	job.EndTime = &now

	s.logger.Info("optimization cancelled", zap.String("job_id", job.ID))

	s.respondJSON(w, http.StatusOK, map[string]string{
		"job_id": job.ID,
		"status": job.Status,
	})
}

// Close marks every non-terminal job as cancelled.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		switch job.Status {
		case StatusPending, StatusRunning:
			job.cancelled = true
			job.Status = StatusCancelled
		}
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.logger.Warn("request error",
		zap.Int("status", status),
		zap.String("message", message))

	s.respondJSON(w, status, map[string]string{"error": message})
}
