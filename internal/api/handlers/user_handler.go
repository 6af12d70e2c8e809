package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
	"gorm.io/gorm"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} response.MessageResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput

	if err := c.ShouldBind(&input); err != nil {
		// Try to produce friendly validation messages for the frontend
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			msgs := make([]string, 0, len(verr))

			labels := map[string]string{
				"Username":   "username",
				"Password":   "password",
				"Email":      "email",
				"FullName":   "full name",
				"Role":       "role",
				"Department": "department",
			}

			for _, fe := range verr {
				field := fe.StructField()
				lbl, ok := labels[field]
				if !ok {
					lbl = strings.ToLower(field)
				}

				var msg string
				switch fe.Tag() {
				case "required":
					msg = fmt.Sprintf("%s is required", lbl)
				case "min":
					msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
				case "max":
					msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
				case "email":
					msg = fmt.Sprintf("%s must be a valid email address", lbl)
				case "oneof":
					msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
				default:
					msg = fmt.Sprintf("%s is invalid", lbl)
				}
				msgs = append(msgs, msg)
			}

			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}

		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.RegisterUser(input); err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginInput

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, err := h.svc.LoginUser(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		3600*24,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		Role:     usr.Role,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, []user.User{})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get one user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	usr, err := h.svc.FindUserByID(id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to update"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Reserved admin"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input user.UpdateUserInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	usr, err := h.svc.UpdateUser(id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		case errors.Is(err, application.ErrReservedAdminUser):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrIncorrectPassword), errors.Is(err, application.ErrMissingOldPassword):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse "User deleted"
// @Failure 403 {object} response.ErrorResponse "Reserved admin"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		case errors.Is(err, application.ErrReservedAdminUser):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}
