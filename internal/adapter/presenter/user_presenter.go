package presenter

import (
	authDTO "github.com/johnquangdev/meeting-manager/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAuthResponse converts a usecase login result to the AuthResponse DTO
func ToAuthResponse(result *auth.LoginResult, expiresIn int) *authDTO.AuthResponse {
	if result == nil {
		return nil
	}
	return &authDTO.AuthResponse{
		AccessToken: result.Token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		User:        ToUserResponse(result.User),
	}
}
