package templates

import (
	"embed"
	"fmt"
	"html/template"
	"math"
)

const AverageDuration = "avg_duration.html"

//go:embed *.html
var files embed.FS

// Parses all embedded page templates.
func Parse() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{
			"seconds": FormatSeconds,
			"clock":   FormatClock,
		}).
		ParseFS(files, "*.html")
}

// Formats duration in seconds with exactly two decimals, e.g. 200.00.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.2f", seconds)
}

// Formats duration in seconds as m:ss rounded to the nearest second.
func FormatClock(seconds float64) string {
	sign := ""
	total := int64(math.Round(seconds))
	if total < 0 {
		sign = "-"
		total = -total
	}

	return fmt.Sprintf("%s%d:%02d", sign, total/60, total%60)
}
