package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/desbrava-tech/clubhub/internal/service/reportservice"
)

// BuildFinancialXLSX renders a financial summary workbook with a summary
// sheet and a per-category breakdown sheet.
func BuildFinancialXLSX(report *reportservice.FinancialReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	categorySheet := "categories"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(categorySheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Financial Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Club")
	_ = f.SetCellValue(summarySheet, "B3", report.ClubName)
	_ = f.SetCellValue(summarySheet, "A4", "Generated")
	_ = f.SetCellValue(summarySheet, "B4", time.Now().Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A6", "Total Income")
	_ = f.SetCellValue(summarySheet, "B6", report.TotalIncome)
	_ = f.SetCellValue(summarySheet, "A7", "Total Expense")
	_ = f.SetCellValue(summarySheet, "B7", report.TotalExpense)
	_ = f.SetCellValue(summarySheet, "A8", "Balance")
	_ = f.SetCellValue(summarySheet, "B8", report.Balance)
	_ = f.SetCellValue(summarySheet, "A9", "Pending Income")
	_ = f.SetCellValue(summarySheet, "B9", report.PendingIncome)
	_ = f.SetCellValue(summarySheet, "A10", "Pending Expense")
	_ = f.SetCellValue(summarySheet, "B10", report.PendingExpense)

	_ = f.SetCellValue(categorySheet, "A1", "Category")
	_ = f.SetCellValue(categorySheet, "B1", "Net Amount")
	row := 2
	for category, amount := range report.ByCategory {
		_ = f.SetCellValue(categorySheet, fmt.Sprintf("A%d", row), category)
		_ = f.SetCellValue(categorySheet, fmt.Sprintf("B%d", row), amount)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
