package dto

import (
	"time"

	"github.com/playtype/typing-game-service/internal/typing/domain"
)

// UserOutput is the public account view. The credential hash never leaves the
// service layer.
type UserOutput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserOutputFrom(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
