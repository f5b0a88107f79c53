// Package kvstore はブロブストア上の永続化レイアウトを実装します。
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/platform/kv"
)

const (
	employeesKey = "employees"
	dateLayout   = "2006-01-02"
)

// employeeRecord は employees キー配下のワイヤ表現です。
// 生年月日は ISO カレンダー日付の文字列で保存されます。
type employeeRecord struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage"`
	State        string `json:"state"`
	IsActive     bool   `json:"isActive"`
}

// EmployeeRepository はブロブストアを利用した社員リスト永続化の実装です。
type EmployeeRepository struct {
	store kv.Store
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(store kv.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// Load は employees キーのブロブを読み出します。キーが存在しない場合は
// ok=false を返します。
func (r *EmployeeRepository) Load(ctx context.Context) ([]directory.Employee, bool, error) {
	data, err := r.store.Get(ctx, employeesKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: get %s: %w", employeesKey, err)
	}

	var records []employeeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("kvstore: decode %s: %w", employeesKey, err)
	}

	employees := make([]directory.Employee, 0, len(records))
	for _, rec := range records {
		emp, err := toDomain(rec)
		if err != nil {
			return nil, false, err
		}
		employees = append(employees, emp)
	}
	return employees, true, nil
}

// Save はリスト全体をシリアライズして employees キーへ保存します。
func (r *EmployeeRepository) Save(ctx context.Context, employees []directory.Employee) error {
	records := make([]employeeRecord, 0, len(employees))
	for _, emp := range employees {
		records = append(records, fromDomain(emp))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("kvstore: encode %s: %w", employeesKey, err)
	}

	if err := r.store.Set(ctx, employeesKey, data); err != nil {
		return fmt.Errorf("kvstore: set %s: %w", employeesKey, err)
	}
	return nil
}

func toDomain(rec employeeRecord) (directory.Employee, error) {
	dob, err := time.ParseInLocation(dateLayout, rec.DateOfBirth, time.UTC)
	if err != nil {
		return directory.Employee{}, fmt.Errorf("kvstore: parse dateOfBirth for %s: %w", rec.ID, err)
	}

	return directory.Employee{
		ID:           rec.ID,
		FullName:     rec.FullName,
		Gender:       directory.Gender(rec.Gender),
		DateOfBirth:  dob,
		ProfileImage: rec.ProfileImage,
		State:        rec.State,
		Active:       rec.IsActive,
	}, nil
}

func fromDomain(emp directory.Employee) employeeRecord {
	return employeeRecord{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Gender:       string(emp.Gender),
		DateOfBirth:  emp.DateOfBirth.Format(dateLayout),
		ProfileImage: emp.ProfileImage,
		State:        emp.State,
		IsActive:     emp.Active,
	}
}
