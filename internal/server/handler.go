package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/render"
	"github.com/nao1215/salesreport/internal/repository"
)

// errorResponse is the JSON body of every error response.
type errorResponse struct {
	Error string `json:"error"`
}

// breakdownSegment is one entry of the breakdown response.
type breakdownSegment struct {
	FiscalYear int          `json:"fiscal_year"`
	Start      string       `json:"start"`
	End        string       `json:"end"`
	Total      model.Amount `json:"total"`
	Body       string       `json:"body"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n")) //nolint:errcheck // client gone
}

func (s *Server) handleSales(w http.ResponseWriter, req *http.Request) {
	logger := LoggerFrom(req.Context())

	rng, rd, ok := s.parseQuery(w, req)
	if !ok {
		return
	}

	report, err := s.reporter.GetSalesBetween(req.Context(), rng.Start, rng.End, rd)
	if err != nil {
		s.writeReportError(w, req, err)
		return
	}
	if report.Withheld {
		logger.Info("report withheld", "reason", report.Reason)
		w.Header().Set("X-Withheld-Reason", report.Reason)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(report.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.Body)) //nolint:errcheck // client gone
}

func (s *Server) handleBreakdown(w http.ResponseWriter, req *http.Request) {
	rng, rd, ok := s.parseQuery(w, req)
	if !ok {
		return
	}

	reports, err := s.reporter.Breakdown(req.Context(), s.calendar, rng, rd, s.concurrency)
	if err != nil {
		s.writeReportError(w, req, err)
		return
	}

	segments := make([]breakdownSegment, 0, len(reports))
	for _, r := range reports {
		segments = append(segments, breakdownSegment{
			FiscalYear: s.calendar.FiscalYear(r.Range.Start),
			Start:      r.Range.Start.Format(model.DateLayout),
			End:        r.Range.End.Format(model.DateLayout),
			Total:      r.Total,
			Body:       r.Body,
		})
	}
	writeJSON(w, http.StatusOK, segments)
}

// parseQuery reads start, end and format. On failure it writes a 400 and
// returns false.
func (s *Server) parseQuery(w http.ResponseWriter, req *http.Request) (model.DateRange, render.Renderer, bool) {
	q := req.URL.Query()
	now := s.now()

	start, err := model.ParseDate(q.Get("start"), now)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start: "+err.Error())
		return model.DateRange{}, nil, false
	}
	end, err := model.ParseEndDate(q.Get("end"), start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end: "+err.Error())
		return model.DateRange{}, nil, false
	}

	format := strings.TrimSpace(q.Get("format"))
	if format == "" {
		format = s.defaultFormat
	}
	rd, err := s.renderers(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.DateRange{}, nil, false
	}

	rng := model.NewDateRange(start, end)
	if err := rng.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.DateRange{}, nil, false
	}
	return rng, rd, true
}

func (s *Server) writeReportError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, fiscal.ErrCrossesFiscalYear):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrDataAccess):
		LoggerFrom(req.Context()).Error("failed to query sales", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to query sales")
	default:
		LoggerFrom(req.Context()).Error("failed to build report", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck,errchkjson // client gone
}
