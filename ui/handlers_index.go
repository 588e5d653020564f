package ui

import (
	"net/http"
	"strings"

	"univar/app"
	"univar/domain/dataset"
	"univar/domain/summary"
	"univar/internal/errors"
	"univar/ui/middleware"
	"univar/ui/services"
	"univar/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// pageData is everything index.html renders
type pageData struct {
	Title       string
	Error       string
	MaxUploadMB int

	Dataset     *dataset.Dataset
	Columns     []app.ColumnInfo
	Selected    string
	IsNumeric   bool
	Categorical bool
	Bins        int
	MaxBins     int

	Report *app.Report
	Charts app.Charts

	// Prose section keys for the current report
	FrequencySection string
	BarSection       string
}

func (s *Server) newPage() *pageData {
	return &pageData{
		Title:       "Univariate Analysis App",
		MaxUploadMB: s.cfg.Upload.MaxMB,
		Bins:        s.cfg.Analysis.DefaultBins,
		MaxBins:     s.cfg.Analysis.MaxBins,
	}
}

// handleIndex serves the single page. With a dataset loaded it summarises
// the selected column.
func (s *Server) handleIndex(c *gin.Context) {
	page := s.newPage()
	ds, ok := s.store.Get(middleware.SessionID(c))
	if !ok {
		s.renderTemplate(c, http.StatusOK, fragments.IndexPage, page)
		return
	}

	page.Dataset = ds
	page.Columns = s.analysis.Columns(ds)
	page.Categorical = isChecked(c.Query("categorical"))
	page.Bins = s.cfg.Analysis.ParseBins(c.Query("bins"))

	page.Selected = c.Query("column")
	if page.Selected == "" && len(page.Columns) > 0 {
		page.Selected = page.Columns[0].Name
	}
	if page.Selected == "" {
		s.renderTemplate(c, http.StatusOK, fragments.IndexPage, page)
		return
	}

	status := s.fillReport(c, page, ds)
	s.renderTemplate(c, status, fragments.IndexPage, page)
}

// fillReport computes the report and charts for page.Selected and returns
// the status the page should be served with.
func (s *Server) fillReport(c *gin.Context, page *pageData, ds *dataset.Dataset) int {
	report, err := s.analysis.Analyze(ds, app.AnalysisRequest{
		Column:             page.Selected,
		TreatAsCategorical: page.Categorical,
		Bins:               page.Bins,
	})
	if err != nil {
		s.logger.Warn("analysis of %q failed: %v", page.Selected, err)
		page.Error = err.Error()
		return errors.HTTPStatus(err)
	}

	page.Report = report
	page.IsNumeric = report.Kind == dataset.KindNumeric
	switch report.Mode {
	case summary.ModeCategorical:
		page.FrequencySection = services.SectionFrequencyCategorical
		page.BarSection = services.SectionBarCategorical
	case summary.ModeBinned:
		page.FrequencySection = services.SectionFrequencyBinned
		page.BarSection = services.SectionBarBinned
	}

	charts, err := app.RenderCharts(s.charts, report)
	if err != nil {
		s.logger.Error("%v", err)
	}
	page.Charts = charts
	return http.StatusOK
}

func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
