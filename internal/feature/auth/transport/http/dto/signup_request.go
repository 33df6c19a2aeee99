// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// It uses Gin's binding tags for validation (required, numeric mobile, password length).
type SignupReq struct {
	Mobile   string `json:"mobile" binding:"required,numeric,min=10,max=15"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
