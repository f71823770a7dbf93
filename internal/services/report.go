package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

// FormatATSReport renders an ATSResult as a Markdown report. The first
// recommendation is the detailed analysis; the rest become bullets.
func FormatATSReport(candidateName string, result models.ATSResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 📊 ATS Analysis Results for %s\n\n", candidateName)
	fmt.Fprintf(&b, "## 🎯 Overall Score: %d/100\n\n", result.Score)

	b.WriteString("### 📋 **Detailed Analysis:**\n")
	if len(result.Recommendations) > 0 {
		b.WriteString(result.Recommendations[0])
	} else {
		b.WriteString("Analysis completed successfully")
	}
	b.WriteString("\n\n")

	b.WriteString("### 💡 **Key Recommendations:**\n")
	if len(result.Recommendations) > 1 {
		for _, rec := range result.Recommendations[1:] {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
	} else {
		b.WriteString("• Review the detailed analysis above\n")
	}

	b.WriteString("\n---\n")
	b.WriteString("*This analysis compares the resume against the job description for keyword matching, skills alignment, and overall relevance.*\n")

	return b.String()
}
