package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/core/notify"
)

const dateLayout = "2006-01-02"

type employeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage"`
	State        string `json:"state"`
	IsActive     bool   `json:"isActive"`
}

type employeeForm struct {
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage"`
	State        string `json:"state"`
	IsActive     bool   `json:"isActive"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type listEmployeesResponse struct {
	Employees []employeeResponse `json:"employees"`
	Stats     statsResponse      `json:"stats"`
}

// listEmployees は検索・性別・状態の三条件でプロジェクションを返します。
// 集計値はフィルタ適用前の全レコードから導出されます。
func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.All(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	projected := directory.Project(all, filterFromQuery(r))

	employees := make([]employeeResponse, 0, len(projected))
	for _, emp := range projected {
		employees = append(employees, toEmployeeResponse(emp))
	}

	stats := directory.ComputeStats(all)
	writeJSON(w, http.StatusOK, listEmployeesResponse{
		Employees: employees,
		Stats:     statsResponse{Total: stats.Total, Active: stats.Active, Inactive: stats.Inactive},
	})
}

// createEmployee はフォーム検証を通過した入力で新規レコードを追加します。
func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeForm(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	created, err := h.store.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Success",
		Description: "Employee added successfully",
		Variant:     notify.VariantDefault,
	})
	writeJSON(w, http.StatusCreated, toEmployeeResponse(*created))
}

// updateEmployee は ID を除く全フィールドを置き換えます。
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeForm(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.store.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Success",
		Description: "Employee updated successfully",
		Variant:     notify.VariantDefault,
	})
	writeJSON(w, http.StatusOK, toEmployeeResponse(*updated))
}

// deleteEmployee は該当レコードを取り除きます。
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, err)
		return
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Employee deleted",
		Description: "The employee has been removed successfully",
		Variant:     notify.VariantDefault,
	})
	w.WriteHeader(http.StatusNoContent)
}

// toggleEmployee は有効フラグを反転します。
func (h *Handler) toggleEmployee(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.store.ToggleActive(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.notifier.Notify(notify.Notification{
		Title:       "Status updated",
		Description: "Employee status has been changed",
		Variant:     notify.VariantDefault,
	})
	writeJSON(w, http.StatusOK, toEmployeeResponse(*toggled))
}

// decodeForm はリクエストボディを読み取り、フォーム送信境界の検証を行います。
// 検証で弾いた場合は通知も発行します。
func (h *Handler) decodeForm(r *http.Request) (directory.FormData, error) {
	var form employeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return directory.FormData{}, errInvalidBody
	}

	in := directory.FormData{
		FullName:     form.FullName,
		Gender:       directory.Gender(form.Gender),
		ProfileImage: form.ProfileImage,
		State:        form.State,
		Active:       form.IsActive,
	}

	if form.DateOfBirth != "" {
		dob, err := time.ParseInLocation(dateLayout, form.DateOfBirth, time.UTC)
		if err != nil {
			h.notifyValidationFailure(directory.ErrInvalidDateOfBirth)
			return directory.FormData{}, directory.ErrInvalidDateOfBirth
		}
		in.DateOfBirth = dob
	}

	if err := directory.ValidateFormData(in); err != nil {
		h.notifyValidationFailure(err)
		return directory.FormData{}, err
	}
	return in, nil
}

func (h *Handler) notifyValidationFailure(err error) {
	h.notifier.Notify(notify.Notification{
		Title:       "Error",
		Description: err.Error(),
		Variant:     notify.VariantDestructive,
	})
}

func filterFromQuery(r *http.Request) directory.Filter {
	q := r.URL.Query()
	return directory.Filter{
		Name:   q.Get("q"),
		Gender: directory.GenderFilter(q.Get("gender")),
		Status: directory.StatusFilter(q.Get("status")),
	}
}

func toEmployeeResponse(emp directory.Employee) employeeResponse {
	return employeeResponse{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Gender:       string(emp.Gender),
		DateOfBirth:  emp.DateOfBirth.Format(dateLayout),
		ProfileImage: emp.ProfileImage,
		State:        emp.State,
		IsActive:     emp.Active,
	}
}
