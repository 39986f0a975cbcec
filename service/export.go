package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"expensetracker/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// 导出格式
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
)

const exportSheet = "Expenses"

var exportHeaders = []string{"ID", "Date", "Amount", "Category", "Merchant", "Description"}

// ParseExportFormat 校验导出格式，默认 csv
func ParseExportFormat(format string) (string, error) {
	switch format {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatExcel:
		return FormatExcel, nil
	default:
		return "", invalid("format", "Export format must be csv or xlsx")
	}
}

// WriteCSV 以 CSV 写出消费记录
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	// BOM 让 Excel 按 UTF-8 打开
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return errors.Wrap(err, "write csv bom")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, e := range expenses {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.DateString(),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
			e.Merchant,
			e.Description,
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

// WriteExcel 以 xlsx 写出消费记录，末行为合计
func WriteExcel(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return errors.Wrap(err, "create data style")
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return errors.Wrap(err, "create summary style")
	}

	widths := map[string]float64{"A": 8, "B": 12, "C": 12, "D": 16, "E": 24, "F": 40}
	for col, width := range widths {
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return errors.Wrap(err, "set column width")
		}
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(exportSheet, cell, header)
	}
	f.SetCellStyle(exportSheet, "A1", "F1", headerStyle)

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), e.DateString())
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), e.Amount)
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), e.Category)
		f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), e.Merchant)
		f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), e.Description)
		f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	summaryRow := len(expenses) + 2
	f.SetCellValue(exportSheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(exportSheet, fmt.Sprintf("C%d", summaryRow), total.InexactFloat64())
	f.SetCellValue(exportSheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	f.MergeCell(exportSheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	return errors.Wrap(f.Write(w), "write xlsx")
}
