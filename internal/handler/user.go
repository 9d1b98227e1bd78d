package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/model"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/utils"
)

// UserCreator is the slice of the entity store the user handler needs.
// Implemented by repository.UserRepo.
type UserCreator interface {
	Create(ctx context.Context, u model.User) (model.User, error)
}

// UserHandler serves POST /user. The plaintext password is hashed here
// at the boundary; the store only ever sees the opaque hash.
type UserHandler struct {
	Users      UserCreator
	BcryptCost int
}

// NewUserHandler constructs a UserHandler with the given bcrypt cost.
func NewUserHandler(users UserCreator, bcryptCost int) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users, BcryptCost: bcryptCost}
}

// CreateUser handles POST /user. The JSON body must carry name, rol,
// email and password.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	switch {
	case req.Name == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	case req.Rol == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rol is required"})
	case req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	case req.Password == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hash password"})
	}

	u, err := h.Users.Create(c.Request().Context(), model.User{
		Name:     req.Name,
		Rol:      req.Rol,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "user created successfully",
		"id":      u.ID,
	})
}
