// Package export は社員一覧と単票の印刷用ワークブックを生成します。
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
)

const (
	listSheet   = "Employees"
	detailSheet = "Employee"
	dateLayout  = "2006-01-02"
)

var listHeader = []string{"ID", "Full Name", "Gender", "Date of Birth", "State", "Status"}

// EmployeeList は表示中のプロジェクションを 1 シートのワークブックに
// 書き出します。集計値はヘッダ行の上に置きます。
func EmployeeList(employees []directory.Employee, stats directory.Stats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	summary := fmt.Sprintf("Total: %d / Active: %d / Inactive: %d", stats.Total, stats.Active, stats.Inactive)
	if err := f.SetCellValue(listSheet, "A1", summary); err != nil {
		return nil, fmt.Errorf("export: write summary: %w", err)
	}

	for col, title := range listHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(listSheet, cell, title); err != nil {
			return nil, fmt.Errorf("export: write header: %w", err)
		}
	}

	for row, emp := range employees {
		values := []any{emp.ID, emp.FullName, string(emp.Gender), emp.DateOfBirth.Format(dateLayout), emp.State, statusLabel(emp.Active)}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+3)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := f.SetCellValue(listSheet, cell, value); err != nil {
				return nil, fmt.Errorf("export: write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}

// EmployeeDetail は 1 レコードの単票をワークブックに書き出します。
func EmployeeDetail(emp directory.Employee) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	rows := [][2]any{
		{"ID", emp.ID},
		{"Full Name", emp.FullName},
		{"Gender", string(emp.Gender)},
		{"Date of Birth", emp.DateOfBirth.Format(dateLayout)},
		{"State", emp.State},
		{"Status", statusLabel(emp.Active)},
	}

	for i, row := range rows {
		if err := f.SetCellValue(detailSheet, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return nil, fmt.Errorf("export: write label: %w", err)
		}
		if err := f.SetCellValue(detailSheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return nil, fmt.Errorf("export: write value: %w", err)
		}
	}

	return f, nil
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
