package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (s *AccountHandler) List(c *gin.Context) {
	var query dto.AccountQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	users, err := s.accountSvc.ListAccounts(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "account_id")
	if !ok {
		return
	}
	user, err := s.accountSvc.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *AccountHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "account_id")
	if !ok {
		return
	}
	var in dto.AccountUpdateDTO
	if err := bindBody(c, &in); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.accountSvc.UpdateAccount(c.Request.Context(), id, &in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
