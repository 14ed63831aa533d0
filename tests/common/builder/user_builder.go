//go:build unit

package builder

import (
	"eventure/internal/domain/user"
	reqdto "eventure/internal/handler/dto/request"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     user.Role
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "rider@example.com",
		Password: "password123",
		Role:     user.RoleCustomer,
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role.String(),
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildCredentials() (user.Credentials, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(b.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = user.RoleAdmin
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}
