package model

const (
	RoleAdmin     = "admin"
	RoleStaff     = "staff"
	RoleVerifier  = "verifier"
	RoleLeader    = "leader"
	RolePersonnel = "personnel"
)

// Roles berisi seluruh role yang dikenal sistem, urut sesuai tampilan di frontend.
var Roles = []string{RoleAdmin, RoleStaff, RoleVerifier, RoleLeader, RolePersonnel}

func ValidRole(role string) bool { return contains(Roles, role) }

type User struct {
	Base
	Username    string  `json:"username" gorm:"size:64;uniqueIndex;not null"`
	NamaLengkap string  `json:"nama_lengkap" gorm:"size:150"`
	Role        string  `json:"role" gorm:"size:20;index;not null"`
	NRP         *string `json:"nrp" gorm:"column:nrp;size:32;index"`
	Password    string  `json:"-" gorm:"not null"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

// OwnNRP mengembalikan NRP yang terhubung ke akun, string kosong jika tidak ada.
func (u *User) OwnNRP() string {
	if u == nil || u.NRP == nil {
		return ""
	}
	return *u.NRP
}
