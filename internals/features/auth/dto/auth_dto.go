// file: internals/features/auth/dto/auth_dto.go
package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
