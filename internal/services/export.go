package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const (
	conversationSheet = "Conversation"
	atsSheet          = "ATS Analysis"
)

// ExportWorkbook writes the session's conversation and its last ATS
// analysis to an .xlsx workbook.
func ExportWorkbook(sess *models.Session) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", conversationSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(atsSheet); err != nil {
		return nil, fmt.Errorf("failed to create ATS sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeConversationSheet(f, sess, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to create conversation sheet: %w", err)
	}
	if err := writeATSSheet(f, sess, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to create ATS sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setColWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func writeConversationSheet(f *excelize.File, sess *models.Session, headerStyle int) error {
	if err := setColWidths(f, conversationSheet, map[string]float64{"A": 8, "B": 14, "C": 100}); err != nil {
		return err
	}

	headers := []string{"#", "Role", "Message"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(conversationSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(conversationSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, turn := range sess.History() {
		row := i + 2
		values := []interface{}{i + 1, string(turn.Role), turn.Content}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(conversationSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeATSSheet(f *excelize.File, sess *models.Session, headerStyle int) error {
	if err := setColWidths(f, atsSheet, map[string]float64{"A": 22, "B": 100}); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Candidate", sess.CandidateName},
		{"Mode", string(sess.Mode)},
		{"Exported", time.Now().Format("2006-01-02 15:04:05")},
	}

	if result := sess.LastATSResult; result != nil {
		rows = append(rows,
			[]interface{}{"ATS Score", result.Score},
			[]interface{}{"Keyword Matches", strings.Join(result.KeywordMatches, "; ")},
			[]interface{}{"Missing Keywords", strings.Join(result.MissingKeywords, "; ")},
			[]interface{}{"Strengths", strings.Join(result.Strengths, "; ")},
			[]interface{}{"Weaknesses", strings.Join(result.Weaknesses, "; ")},
			[]interface{}{"Recommendations", strings.Join(result.Recommendations, "\n")},
		)
	} else {
		rows = append(rows, []interface{}{"ATS Score", "No analysis run yet"})
	}

	for i, row := range rows {
		label, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		value, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(atsSheet, label, row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(atsSheet, value, row[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(atsSheet, label, label, headerStyle); err != nil {
			return err
		}
	}

	return nil
}
