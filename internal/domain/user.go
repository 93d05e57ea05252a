package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SysUser account owning tracked products and folders
type SysUser struct {
	ID        int64     `json:"id,string" form:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username" form:"username"`
	Password  string    `json:"-" form:"-"` // bcrypt hash
	Email     string    `json:"email" form:"email"`
	Level     string    `json:"level" form:"level"`   // user or admin
	Status    string    `json:"status" form:"status"` // enabled or disabled
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysUser) TableName() string {
	return "sys_user"
}

// IsAdmin reports whether the account may see rows across all owners.
func (u *SysUser) IsAdmin() bool {
	return u.Level == RoleAdmin
}
