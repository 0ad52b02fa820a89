// File: internal/catalog/model.go
package catalog

// UserType is the public projection of a user type.
type UserType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AgentType is the public projection of an agent type.
type AgentType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserTypesResponse is the data of GET /get-user-types.
type UserTypesResponse struct {
	UserTypes []UserType `json:"userTypes"`
}

// AgentTypesResponse is the data of GET /get-agent-types.
type AgentTypesResponse struct {
	AgentTypes []AgentType `json:"agentTypes"`
}
