package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurohotvedt/cab230serverside/internal/api/response"
	"github.com/gurohotvedt/cab230serverside/internal/auth"
	"github.com/gurohotvedt/cab230serverside/internal/domain/user"
)

// UserHandler handles registration and login
type UserHandler struct {
	userRepo user.Repository
	tokens   *auth.TokenService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo user.Repository, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// CredentialsRequest is the JSON body for both register and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful login body
type LoginResponse struct {
	TokenType string `json:"token_type"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Register handles POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Request body incomplete - email and password needed")
		return
	}

	if !user.ValidateEmail(req.Email) {
		response.BadRequest(c, "Use a valid e-mail with @")
		return
	}

	// Check-then-insert; a concurrent duplicate registration is stopped by
	// the unique constraint on email instead.
	_, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		response.Conflict(c, "User already exists!")
		return
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		response.InternalError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	if err := h.userRepo.Create(c.Request.Context(), req.Email, hash); err != nil {
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created",
	})
}

// Login handles POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Request body incomplete - email and password needed")
		return
	}

	u, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Unauthorized(c, "User does not exist")
			return
		}
		response.InternalError(c, err)
		return
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		response.Unauthorized(c, "Incorrect password")
		return
	}

	token, err := h.tokens.Issue(u.Email)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		TokenType: "Bearer",
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
	})
}
