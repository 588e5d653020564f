package services

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Section keys for the explanatory text shown on the page
const (
	SectionIntro                = "intro"
	SectionFrequencyCategorical = "frequency_categorical"
	SectionFrequencyBinned      = "frequency_binned"
	SectionBarCategorical       = "bar_categorical"
	SectionBarBinned            = "bar_binned"
	SectionDescribe             = "describe"
	SectionHistogram            = "histogram"
	SectionBoxplot              = "boxplot"
	SectionDensity              = "density"
)

var sectionMarkdown = map[string]string{
	SectionIntro: "The **Univariate Analysis App** is designed to provide users with a quick and easy way " +
		"to perform exploratory data analysis on a single variable in a dataset.",
	SectionFrequencyCategorical: "The frequency distribution table shows the count of each unique value in the " +
		"selected column. The *relative frequency* and *cumulative relative frequency* columns show the " +
		"proportion of each value relative to the total number of values and the cumulative proportion of " +
		"values, respectively.",
	SectionFrequencyBinned: "The frequency distribution table shows the count of values in each bin of the " +
		"selected column. The *relative frequency* and *cumulative relative frequency* columns show the " +
		"proportion of values in each bin relative to the total number of values and the cumulative " +
		"proportion of values, respectively.",
	SectionBarCategorical: "The bar chart shows the distribution of the unique values in the selected column. " +
		"The x-axis represents the unique values, and the y-axis represents the frequency count of each value.",
	SectionBarBinned: "The bar chart shows the distribution of values in each bin of the selected column. " +
		"The x-axis represents the bins, and the y-axis represents the frequency count of values in each bin.",
	SectionDescribe: "The descriptive statistics table shows the summary statistics of the selected column, " +
		"including the count, mean, standard deviation, minimum value, 25th percentile, median, " +
		"75th percentile, and maximum value.",
	SectionHistogram: "The histogram shows the distribution of the numerical values in the selected column. " +
		"The x-axis represents the numerical range of values, and the y-axis represents the frequency count " +
		"of values in each range.",
	SectionBoxplot: "The boxplot shows the distribution of the numerical values in the selected column. " +
		"The box represents the interquartile range (IQR) between the 25th and 75th percentiles, and the " +
		"whiskers represent the range of values within 1.5 times the IQR. Outliers are shown as dots beyond " +
		"the whiskers.",
	SectionDensity: "The density plot shows the distribution of the numerical values in the selected column. " +
		"The x-axis represents the numerical range of values, and the y-axis represents the probability " +
		"density of values in each range.",
}

// RenderService turns the page's markdown prose into HTML once at start-up
type RenderService struct {
	sections map[string]template.HTML
}

func NewRenderService() *RenderService {
	sections := make(map[string]template.HTML, len(sectionMarkdown))
	for key, md := range sectionMarkdown {
		sections[key] = RenderMarkdown(md)
	}
	return &RenderService{sections: sections}
}

// Section returns the rendered prose for key, or nothing for unknown keys
func (s *RenderService) Section(key string) template.HTML {
	return s.sections[key]
}

// RenderMarkdown converts trusted markdown to HTML
func RenderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return template.HTML(markdown.ToHTML([]byte(md), p, r))
}
