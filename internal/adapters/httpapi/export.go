package httpapi

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/export"
)

// exportEmployees は現在のプロジェクションをワークブックとして返します。
// フィルタ入力は一覧表示と同じクエリパラメータです。
func (h *Handler) exportEmployees(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.All(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	projected := directory.Project(all, filterFromQuery(r))
	f, err := export.EmployeeList(projected, directory.ComputeStats(all))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeWorkbook(w, f, "employees.xlsx")
}

// exportEmployee は 1 レコードの単票を返します。
func (h *Handler) exportEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	all, err := h.store.All(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	for _, emp := range all {
		if emp.ID == id {
			f, err := export.EmployeeDetail(emp)
			if err != nil {
				h.writeError(w, err)
				return
			}
			h.writeWorkbook(w, f, fmt.Sprintf("employee-%s.xlsx", id))
			return
		}
	}

	h.writeError(w, directory.ErrEmployeeNotFound)
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := f.WriteTo(w); err != nil {
		h.log.Error("write workbook", zap.Error(err))
	}
}
