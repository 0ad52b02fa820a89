// File: internal/account/model.go
package account

// Phone is one entry of the phones list.
type Phone struct {
	Phone string `json:"phone" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

// CreateAdminAccountRequest defines the structure for creating an admin account.
// The same value is forwarded to the provisioning service.
type CreateAdminAccountRequest struct {
	Name           string  `json:"name" binding:"required"`
	Surname        string  `json:"surname" binding:"required"`
	UserTypeID     int     `json:"userTypeId" binding:"required"`
	AgentTypeID    int     `json:"agentTypeId" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required"`
	CompanyName    string  `json:"companyName" binding:"required"`
	CNPJ           string  `json:"cnpj" binding:"required"`
	CommercialName string  `json:"commercialName" binding:"required"`
	CompanyLink    string  `json:"companyLink" binding:"required,url"`
	Phones         []Phone `json:"phones" binding:"required,min=1,dive"`
}

// CreateUserAccountRequest defines the structure for creating a user account.
// Hash never travels in a JSON body: it is read from the query string on the
// way in and sent as a query parameter on the way out.
type CreateUserAccountRequest struct {
	Name       string  `json:"name" binding:"required"`
	Surname    string  `json:"surname" binding:"required"`
	UserTypeID int     `json:"userTypeId" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	Phones     []Phone `json:"phones" binding:"required,min=1,dive"`
	Hash       string  `json:"-" form:"hash" binding:"required"`
}
