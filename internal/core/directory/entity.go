package directory

import "time"

// Gender は社員の性別を表します。
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Employee は社員レコードを表すエンティティです。
// ID は作成時に一度だけ採番され、以後変更されません。
type Employee struct {
	ID           string
	FullName     string
	Gender       Gender
	DateOfBirth  time.Time
	ProfileImage string
	State        string
	Active       bool
}

// FormData は社員の作成・更新フォームから渡される入力です。
// ID を除く全フィールドを含みます。
type FormData struct {
	FullName     string
	Gender       Gender
	DateOfBirth  time.Time
	ProfileImage string
	State        string
	Active       bool
}

// Stats はフィルタ適用前の全レコードから導出される集計値です。
type Stats struct {
	Total    int
	Active   int
	Inactive int
}

// AdmissibleStates は State フィールドに許可される値の固定リストです。
var AdmissibleStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Delhi", "Jammu and Kashmir",
}

// IsAdmissibleState は state が許可リストに含まれるかを返します。
func IsAdmissibleState(state string) bool {
	for _, s := range AdmissibleStates {
		if s == state {
			return true
		}
	}
	return false
}

// IsValidGender は gender が定義済みの値かを返します。
func IsValidGender(gender Gender) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
