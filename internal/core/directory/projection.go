package directory

import "strings"

// GenderFilter は性別フィルタの値です。
type GenderFilter string

const (
	GenderFilterAll    GenderFilter = "all"
	GenderFilterMale   GenderFilter = "male"
	GenderFilterFemale GenderFilter = "female"
	GenderFilterOther  GenderFilter = "other"
)

// StatusFilter は有効状態フィルタの値です。
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// Filter は表示用プロジェクションの三つの入力です。
// ゼロ値はフィルタなし(全件一致)として扱われます。
type Filter struct {
	Name   string
	Gender GenderFilter
	Status StatusFilter
}

// Matches は三つの述語すべて(AND)を満たすかを返します。
func (f Filter) Matches(e Employee) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(f.Name)) {
		return false
	}
	if f.Gender != "" && f.Gender != GenderFilterAll && string(f.Gender) != string(e.Gender) {
		return false
	}
	switch f.Status {
	case "", StatusFilterAll:
	case StatusFilterActive:
		if !e.Active {
			return false
		}
	case StatusFilterInactive:
		if e.Active {
			return false
		}
	default:
		return false
	}
	return true
}

// Project は employees からフィルタに一致するレコードを返します。
// 入力の順序を保ち(安定フィルタ)、入力を変更しません。
func Project(employees []Employee, f Filter) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// ComputeStats はフィルタ適用前のリストから集計値を導出します。
// Active と Inactive は独立にカウントされ、Active+Inactive == Total が成り立ちます。
func ComputeStats(employees []Employee) Stats {
	stats := Stats{Total: len(employees)}
	for _, e := range employees {
		if e.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats
}
