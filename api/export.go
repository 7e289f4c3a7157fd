package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"clubfund/models"
	"clubfund/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves CSV and Excel exports of the ledger.
type ExportHandler struct {
	ledger *service.LedgerService
}

// NewExportHandler creates an export handler.
func NewExportHandler(ledger *service.LedgerService) *ExportHandler {
	return &ExportHandler{ledger: ledger}
}

func writeCSV(c *gin.Context, filename string, rows [][]string) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			InternalError(c, "generating CSV failed")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "generating CSV failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportFunds exports fund entries as CSV
// @Summary Export funds as CSV (admin)
// @Description Header row ID,Name,Amount,Date,Method then one row per entry in list order.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/export/funds [get]
func (h *ExportHandler) ExportFunds(c *gin.Context) {
	funds, err := h.ledger.ListFunds()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading funds failed"))
		return
	}

	rows := [][]string{{"ID", "Name", "Amount", "Date", "Method"}}
	for _, f := range funds {
		rows = append(rows, []string{
			strconv.Itoa(f.ID),
			f.Name,
			models.FormatAmount(f.Amount),
			f.Date,
			f.Method,
		})
	}
	writeCSV(c, "funds.csv", rows)
}

// ExportExpenses exports expense entries as CSV
// @Summary Export expenses as CSV (admin)
// @Description Header row ID,Title,Amount,Date,Reason then one row per entry in list order.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/export/expenses [get]
func (h *ExportHandler) ExportExpenses(c *gin.Context) {
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return
	}

	rows := [][]string{{"ID", "Title", "Amount", "Date", "Reason"}}
	for _, e := range expenses {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Title,
			models.FormatAmount(e.Amount),
			e.Date,
			e.Reason,
		})
	}
	writeCSV(c, "expenses.csv", rows)
}

// ExportExcel exports the whole ledger as a styled workbook
// @Summary Export the ledger as Excel (admin)
// @Description One sheet of funds and one of expenses, each with a total row.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel file"
// @Failure 403 {object} Response "admin only"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	funds, err := h.ledger.ListFunds()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading funds failed"))
		return
	}
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	fundsSheet := "Funds"
	f.SetSheetName("Sheet1", fundsSheet)
	writeSheet(f, fundsSheet, headerStyle, totalStyle,
		[]string{"ID", "Name", "Amount", "Date", "Method"},
		len(funds), func(i int) []interface{} {
			fd := funds[i]
			amount, _ := fd.Amount.Float64()
			return []interface{}{fd.ID, fd.Name, amount, fd.Date, fd.Method}
		}, sumFunds(funds))

	expensesSheet := "Expenses"
	f.NewSheet(expensesSheet)
	writeSheet(f, expensesSheet, headerStyle, totalStyle,
		[]string{"ID", "Title", "Amount", "Date", "Reason"},
		len(expenses), func(i int) []interface{} {
			e := expenses[i]
			amount, _ := e.Amount.Float64()
			return []interface{}{e.ID, e.Title, amount, e.Date, e.Reason}
		}, sumExpenses(expenses))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ledger.xlsx")
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "generating Excel failed")
		return
	}
}

func sumFunds(funds []models.FundEntry) float64 {
	total := decimal.Zero
	for _, f := range funds {
		total = total.Add(f.Amount)
	}
	v, _ := total.Float64()
	return v
}

func sumExpenses(expenses []models.ExpenseEntry) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	v, _ := total.Float64()
	return v
}

// writeSheet fills one sheet: header row, n data rows, total row.
func writeSheet(f *excelize.File, sheet string, headerStyle, totalStyle int, headers []string, n int, row func(i int) []interface{}, total float64) {
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", string(rune('A'+len(headers)-1)), 20)

	for i := 0; i < n; i++ {
		for j, v := range row(i) {
			f.SetCellValue(sheet, fmt.Sprintf("%c%d", 'A'+j, i+2), v)
		}
	}

	totalRow := n + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.MergeCell(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow))
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), total)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%c%d", 'A'+len(headers)-1, totalRow), totalStyle)
}
