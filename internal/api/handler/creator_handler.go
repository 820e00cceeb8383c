package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	*ResourceHandler[model.Creator, dto.CreatorDTO]
	creatorSvc service.CreatorService
}

func NewCreatorHandler(creatorSvc service.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		ResourceHandler: NewResourceHandler[model.Creator, dto.CreatorDTO](creatorSvc, ResourceRoute{IDParam: "creator_id"}),
		creatorSvc:      creatorSvc,
	}
}

// List 支持 search、gender、category 过滤
func (s *CreatorHandler) List(c *gin.Context) {
	var query dto.CreatorQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.creatorSvc.Search(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 返回聚合了各类分析数据的详情
func (s *CreatorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "creator_id")
	if !ok {
		return
	}
	detail, err := s.creatorSvc.Detail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

type TrendHandler struct {
	*ResourceHandler[model.TrendData, dto.TrendDataDTO]
	trendSvc service.TrendService
}

func NewTrendHandler(trendSvc service.TrendService) *TrendHandler {
	return &TrendHandler{
		ResourceHandler: NewResourceHandler[model.TrendData, dto.TrendDataDTO](trendSvc, ResourceRoute{IDParam: "record_id", ParentParam: "creator_id"}),
		trendSvc:        trendSvc,
	}
}

// List ?start_date=&end_date= 为 YYYY-MM-DD，非法值忽略
func (s *TrendHandler) List(c *gin.Context) {
	creatorID, ok := pathID(c, "creator_id")
	if !ok {
		return
	}
	var query dto.TrendQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.trendSvc.Trends(c.Request.Context(), creatorID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
