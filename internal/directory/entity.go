// File: internal/directory/entity.go
package directory

import "time"

// IntValue wraps an integer identifier the way the directory exposes it.
type IntValue struct {
	Value int
}

// StringValue wraps a string attribute the way the directory exposes it.
type StringValue struct {
	Value string
}

// UserTypeEntity is a user type record.
type UserTypeEntity struct {
	UserTypeID IntValue
	UserType   StringValue
}

// AgentTypeEntity is an agent type record.
type AgentTypeEntity struct {
	AgentTypeID IntValue
	AgentType   StringValue
}

// UserEntity is a user record keyed by its identity provider id.
type UserEntity struct {
	Name       StringValue
	Surname    StringValue
	IDPUserID  StringValue
	UserTypeID IntValue
	Admin      bool
	CompanyID  IntValue
	Active     bool
	CreatedAt  *time.Time
}

// --- GORM models of the infrastructure schema ---

// UserTypeRow maps the user_types table.
type UserTypeRow struct {
	UserTypeID int    `gorm:"column:user_type_id;primaryKey"`
	UserType   string `gorm:"column:user_type;type:varchar(100);not null"`
}

// TableName specifies the table name for UserTypeRow.
func (UserTypeRow) TableName() string {
	return "user_types"
}

// AgentTypeRow maps the agent_types table.
type AgentTypeRow struct {
	AgentTypeID int    `gorm:"column:agent_type_id;primaryKey"`
	AgentType   string `gorm:"column:agent_type;type:varchar(100);not null"`
}

// TableName specifies the table name for AgentTypeRow.
func (AgentTypeRow) TableName() string {
	return "agent_types"
}

// UserRow maps the users table.
type UserRow struct {
	UserID     int        `gorm:"column:user_id;primaryKey"`
	IDPUserID  string     `gorm:"column:idp_user_id;type:varchar(255);uniqueIndex;not null"`
	Name       string     `gorm:"column:name;type:varchar(100)"`
	Surname    string     `gorm:"column:surname;type:varchar(100)"`
	UserTypeID int        `gorm:"column:user_type_id"`
	Admin      bool       `gorm:"column:admin;not null;default:false"`
	CompanyID  int        `gorm:"column:company_id"`
	Active     bool       `gorm:"column:active;not null;default:true"`
	CreatedAt  *time.Time `gorm:"column:created_at;autoCreateTime:false"`
}

// TableName specifies the table name for UserRow.
func (UserRow) TableName() string {
	return "users"
}

func (r UserTypeRow) toEntity() UserTypeEntity {
	return UserTypeEntity{UserTypeID: IntValue{r.UserTypeID}, UserType: StringValue{r.UserType}}
}

func (r AgentTypeRow) toEntity() AgentTypeEntity {
	return AgentTypeEntity{AgentTypeID: IntValue{r.AgentTypeID}, AgentType: StringValue{r.AgentType}}
}

func (r UserRow) toEntity() *UserEntity {
	return &UserEntity{
		Name:       StringValue{r.Name},
		Surname:    StringValue{r.Surname},
		IDPUserID:  StringValue{r.IDPUserID},
		UserTypeID: IntValue{r.UserTypeID},
		Admin:      r.Admin,
		CompanyID:  IntValue{r.CompanyID},
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
	}
}
