// File: internal/userinfo/model.go
package userinfo

import "time"

// UserInfo is the read-only public projection of a directory user.
type UserInfo struct {
	Name       string     `json:"name"`
	Surname    string     `json:"surname"`
	IDPUserID  string     `json:"idpUserId"`
	UserTypeID int        `json:"userTypeId"`
	Admin      bool       `json:"admin"`
	CompanyID  int        `json:"companyId"`
	Active     bool       `json:"active"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}
