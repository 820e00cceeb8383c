package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := bindBody(c, &registerDTO); err != nil {
		response.ErrorWithMessage(c, err, "Registration failed")
		return
	}
	user, tokens, err := s.authSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.ErrorWithMessage(c, err, "Registration failed")
		return
	}
	response.Create(c, dto.AuthResultDTO{
		Message: "User registered successfully",
		User:    user,
		Tokens:  tokens,
	})
}

func (s *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := bindBody(c, &loginDTO); err != nil {
		response.ErrorWithMessage(c, err, "Login failed")
		return
	}
	user, tokens, err := s.authSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.ErrorWithMessage(c, err, "Login failed")
		return
	}
	response.Success(c, dto.AuthResultDTO{
		Message: "Login successful",
		User:    user,
		Tokens:  tokens,
	})
}

func (s *AuthHandler) Refresh(c *gin.Context) {
	var refreshDTO dto.RefreshDTO
	if err := bindBody(c, &refreshDTO); err != nil {
		response.Error(c, err)
		return
	}
	tokens, err := s.authSvc.Refresh(c.Request.Context(), &refreshDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tokens)
}

func (s *AuthHandler) Profile(c *gin.Context) {
	userID, ok := security.UserIDFromContext(c.Request.Context())
	if !ok {
		response.Error(c, service.ErrAuthRequired)
		return
	}
	user, err := s.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}
