package summarizer

import (
	"fmt"
	"strings"
)

// ReportFormatter renders the fixed-format human-readable extraction report.
type ReportFormatter struct{}

// NewReportFormatter creates a new ReportFormatter.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// Format renders extraction_report.txt.
func (f *ReportFormatter) Format(summary *Summary) ([]byte, error) {
	var b strings.Builder

	b.WriteString("VIDEO FRAME EXTRACTION REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Source URL: %s\n", summary.SourceURL)
	fmt.Fprintf(&b, "Extraction Time: %s\n", summary.ExtractionTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Video Duration: %.1f seconds\n", summary.DurationSeconds)
	fmt.Fprintf(&b, "Video Resolution: %dx%d\n", summary.Width, summary.Height)
	fmt.Fprintf(&b, "Video FPS: %.1f\n", summary.FPS)
	fmt.Fprintf(&b, "Extraction Interval: %g seconds\n", summary.IntervalSeconds)
	fmt.Fprintf(&b, "Frames Extracted: %d\n", summary.FramesExtracted)
	fmt.Fprintf(&b, "Output Folder: %s\n", summary.OutputDir)

	if summary.StartTime > 0 || summary.EndTime != nil {
		end := "end"
		if summary.EndTime != nil {
			end = fmt.Sprintf("%g", *summary.EndTime)
		}
		fmt.Fprintf(&b, "Time Range: %gs to %ss\n", summary.StartTime, end)
	}

	fmt.Fprintf(&b, "\nImage Quality: %d%%\n", summary.Quality)
	if summary.MaxWidth > 0 {
		fmt.Fprintf(&b, "Max Width: %dpx\n", summary.MaxWidth)
	}

	return []byte(b.String()), nil
}

// Ensure ReportFormatter implements Formatter
var _ Formatter = (*ReportFormatter)(nil)
