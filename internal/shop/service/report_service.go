package service

import (
	"fmt"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService 报表导出服务
type ReportService struct {
	repairRepo    *repository.RepairRepository
	inventoryRepo *repository.InventoryRepository
}

func NewReportService(repairRepo *repository.RepairRepository, inventoryRepo *repository.InventoryRepository) *ReportService {
	return &ReportService{repairRepo: repairRepo, inventoryRepo: inventoryRepo}
}

var repairExportHeaders = []string{
	"Repair No", "Date Received", "Customer", "Phone", "Device", "Model",
	"Serial No", "Issue", "Status", "Technician", "Estimated", "Advance",
	"Extra", "Due", "Deadline",
}

// ExportRepairs 导出全部维修工单为xlsx
func (s *ReportService) ExportRepairs() (*excelize.File, string, error) {
	orders, err := s.repairRepo.ListAll()
	if err != nil {
		return nil, "", fmt.Errorf("查询维修工单失败: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Repairs"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for i, h := range repairExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, o := range orders {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.RepairCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.DateReceived.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), o.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.CustomerPhone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), o.DeviceType)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), o.DeviceModel)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), o.SerialNo)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), o.Issue)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), string(o.Status))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), o.TechnicianName)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), o.EstimatedCost)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), o.AdvancePayment)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), o.ExtraExpenses)
		f.SetCellValue(sheet, fmt.Sprintf("N%d", row), o.ComputeDueAmount())
		f.SetCellValue(sheet, fmt.Sprintf("O%d", row), o.Deadline.Format("2006-01-02"))
	}

	colWidths := []float64{16, 12, 20, 14, 12, 16, 16, 30, 14, 16, 12, 12, 12, 12, 12}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("repairs_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}

var inventoryExportHeaders = []string{
	"Product", "Quantity", "Safety Stock", "Unit", "Low Stock", "Last Moved",
}

// ExportInventory 导出当前库存为xlsx
func (s *ReportService) ExportInventory() (*excelize.File, string, error) {
	items, _, err := s.inventoryRepo.List(repository.InventoryListParams{Page: 1, Size: 10000})
	if err != nil {
		return nil, "", fmt.Errorf("查询库存失败: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for i, h := range inventoryExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.SafetyStock)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Unit)
		low := "No"
		if item.SafetyStock > 0 && item.Quantity < item.SafetyStock {
			low = "Yes"
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), low)
		if item.LastMovedAt != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.LastMovedAt.Format("2006-01-02 15:04"))
		}
	}

	colWidths := []float64{30, 12, 12, 8, 10, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}
