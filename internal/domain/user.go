package domain

// UserType distinguishes the admin bootstrap account from regular users
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

// User represents an account provisioned through the OAuth provider
type User struct {
	BaseModel
	Email      string   `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Name       string   `gorm:"type:varchar(255);not null" json:"name"`
	Image      *string  `gorm:"type:text" json:"image,omitempty"`
	Provider   string   `gorm:"type:varchar(50);not null" json:"provider"`
	ProviderID string   `gorm:"type:varchar(255);not null;index:idx_users_provider_id" json:"-"`
	UserType   UserType `gorm:"type:varchar(20);not null;default:'user'" json:"userType"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
