package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// auditTimeout bounds the audit insert so a slow disk cannot hold a
// response.
const auditTimeout = 2 * time.Second

// handleRPC decodes the request record, invokes the operation and encodes
// the response with the codec the client asked for.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	op := chi.URLParam(r, "operation")
	in := wire.ForContentType(r.Header.Get("Content-Type"))
	out := wire.ForAccept(r.Header.Get("Accept"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeEncoded(w, out, http.StatusBadRequest, Error{
			Status:  http.StatusBadRequest,
			Code:    ErrCodeBadRequest,
			Message: "reading request body: " + err.Error(),
		})
		return
	}

	var req any
	decode := func(v any) error {
		req = v
		if len(body) == 0 {
			return nil
		}
		return in.Unmarshal(body, v)
	}

	start := time.Now()
	resp, err := s.service.Invoke(op, decode)
	s.record(r, op, req, resp, err, time.Since(start))

	if err != nil {
		writeServiceError(w, out, err)
		return
	}
	writeEncoded(w, out, http.StatusOK, resp)
}

func (s *Server) record(r *http.Request, op string, req, resp any, err error, d time.Duration) {
	if s.audit == nil {
		return
	}

	entry := &audit.Entry{
		RequestID: requestIDFrom(r.Context()),
		Operation: op,
		Home:      enumerate.RequestHome(req),
		Transport: audit.TransportHTTP,
		Subject:   subjectFrom(r.Context()),
		Outcome:   audit.OutcomeOf(err),
		ItemCount: enumerate.ItemCount(resp),
		Duration:  d,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), auditTimeout)
	defer cancel()
	if aerr := s.audit.Create(ctx, entry); aerr != nil {
		s.logger.Warn("recording audit entry failed", "operation", op, "error", aerr)
	}
}
