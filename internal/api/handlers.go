package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"univar/app"
	"univar/domain/core"
	"univar/domain/dataset"
	"univar/internal/errors"
	"univar/internal/session"

	"github.com/go-chi/chi/v5"
)

type datasetResponse struct {
	ID       core.ID          `json:"id"`
	Name     string           `json:"name"`
	RowCount int              `json:"row_count"`
	LoadedAt time.Time        `json:"loaded_at"`
	Columns  []app.ColumnInfo `json:"columns"`
}

func (h *Handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.sessionDataset(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, datasetResponse{
		ID:       ds.ID,
		Name:     ds.Name,
		RowCount: ds.RowCount,
		LoadedAt: ds.LoadedAt,
		Columns:  h.analysis.Columns(ds),
	})
}

func (h *Handler) handleColumnSummary(w http.ResponseWriter, r *http.Request) {
	ds, err := h.sessionDataset(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bins, err := h.parseBins(r.URL.Query().Get("bins"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	categorical, err := parseBool(r.URL.Query().Get("categorical"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	column, err := columnParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	report, err := h.analysis.Analyze(ds, app.AnalysisRequest{
		Column:             column,
		TreatAsCategorical: categorical,
		Bins:               bins,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) sessionDataset(r *http.Request) (*dataset.Dataset, error) {
	id, ok := session.IDFromRequest(r)
	if !ok {
		return nil, core.ErrNoDataset
	}
	ds, ok := h.store.Get(id)
	if !ok {
		return nil, core.ErrNoDataset
	}
	return ds, nil
}

// parseBins is stricter than the web page: a value the caller typed wrong
// is reported instead of replaced.
func (h *Handler) parseBins(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.cfg.DefaultBins, nil
	}
	bins, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput("bins must be an integer")
	}
	if bins < 1 || bins > h.cfg.MaxBins {
		return 0, errors.InvalidInput(fmt.Sprintf("bins must be between 1 and %d, got %d", h.cfg.MaxBins, bins))
	}
	return bins, nil
}

// columnParam returns the decoded column name. chi matches on the raw path
// whenever the request carries one, and then the segment is still escaped.
func columnParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", errors.InvalidInput("column name is not a valid path segment")
	}
	return decoded, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	default:
		return false, errors.InvalidInput("categorical must be true or false")
	}
}
