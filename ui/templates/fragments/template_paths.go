// Package fragments provides template path constants for organized template management
package fragments

// Template path constants, relative to the templates directory
const (
	// Page
	IndexPage = "index.html"

	// Layout templates
	UploadForm    = "fragments/upload_form.html"
	ColumnControl = "fragments/column_controls.html"
	ErrorBanner   = "fragments/error_banner.html"

	// Result templates
	FrequencyTable   = "fragments/frequency_table.html"
	DescriptiveTable = "fragments/descriptive_table.html"
	ChartFigure      = "fragments/chart_figure.html"
)

// GetAllTemplatePaths returns every template the server needs at start-up
func GetAllTemplatePaths() []string {
	return []string{
		IndexPage,
		UploadForm,
		ColumnControl,
		ErrorBanner,
		FrequencyTable,
		DescriptiveTable,
		ChartFigure,
	}
}
