package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

// healthCheckTimeout bounds each dependency check.
const healthCheckTimeout = 2 * time.Second

// SnapshotInfo describes the installed snapshot.
type SnapshotInfo struct {
	Source   string           `json:"source"`
	LoadedAt time.Time        `json:"loaded_at"`
	Counts   homegraph.Counts `json:"counts"`
}

func snapshotInfo(snap *homegraph.Snapshot) SnapshotInfo {
	return SnapshotInfo{Source: snap.Source, LoadedAt: snap.LoadedAt, Counts: snap.Counts()}
}

// handleHealth reports "ok", or "degraded" with 503 when any dependency
// check fails.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string, len(s.checks))
	for name, hc := range s.checks {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := hc.HealthCheck(ctx)
		cancel()
		if err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	writeJSON(w, status, map[string]any{
		"status":  overall,
		"version": s.version,
		"checks":  checks,
	})
}

func (s *Server) handleOperations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"operations": enumerate.Operations()})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, snapshotInfo(s.store.Snapshot()))
}

// handleAudit lists recent audit entries. Query parameters: limit, offset,
// operation, outcome.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	if s.audit == nil {
		writeNotFound(w, "audit log is disabled")
		return
	}

	q := r.URL.Query()
	filter := audit.Filter{
		Operation: q.Get("operation"),
		Outcome:   audit.Outcome(q.Get("outcome")),
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeBadRequest(w, name+" must be a non-negative integer")
			return
		}
		*dst = n
	}

	result, err := s.audit.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("listing audit entries failed", "error", err)
		writeInternalError(w, "listing audit entries failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
