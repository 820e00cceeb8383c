package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceRoute 资源在路由中的参数名
type ResourceRoute struct {
	IDParam     string
	ParentParam string
	// Attachable 是否接受 multipart 视频附件
	Attachable bool
}

// ResourceHandler 通用 CRUD 处理器
type ResourceHandler[M any, D any] struct {
	svc   service.ResourceService[M, D]
	route ResourceRoute
}

func NewResourceHandler[M any, D any](svc service.ResourceService[M, D], route ResourceRoute) *ResourceHandler[M, D] {
	return &ResourceHandler[M, D]{
		svc:   svc,
		route: route,
	}
}

func (s *ResourceHandler[M, D]) List(c *gin.Context) {
	parentID, ok := pathID(c, s.route.ParentParam)
	if !ok {
		return
	}
	list, err := s.svc.List(c.Request.Context(), parentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ResourceHandler[M, D]) Get(c *gin.Context) {
	parentID, ok := pathID(c, s.route.ParentParam)
	if !ok {
		return
	}
	id, ok := pathID(c, s.route.IDParam)
	if !ok {
		return
	}
	out, err := s.svc.Get(c.Request.Context(), id, parentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, out)
}

func (s *ResourceHandler[M, D]) Create(c *gin.Context) {
	parentID, ok := pathID(c, s.route.ParentParam)
	if !ok {
		return
	}

	in := new(D)
	if err := bindBody(c, in); err != nil {
		response.Error(c, err)
		return
	}
	file, err := s.attachment(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := s.svc.Create(c.Request.Context(), parentID, in, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Create(c, out)
}

// Update PUT，只更新提供的字段，合并后再整体校验
func (s *ResourceHandler[M, D]) Update(c *gin.Context) {
	s.update(c)
}

// Patch 同 Update
func (s *ResourceHandler[M, D]) Patch(c *gin.Context) {
	s.update(c)
}

func (s *ResourceHandler[M, D]) update(c *gin.Context) {
	parentID, ok := pathID(c, s.route.ParentParam)
	if !ok {
		return
	}
	id, ok := pathID(c, s.route.IDParam)
	if !ok {
		return
	}

	in := new(D)
	if err := bindBody(c, in); err != nil {
		response.Error(c, err)
		return
	}
	file, err := s.attachment(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := s.svc.Update(c.Request.Context(), id, parentID, in, true, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, out)
}

func (s *ResourceHandler[M, D]) Delete(c *gin.Context) {
	parentID, ok := pathID(c, s.route.ParentParam)
	if !ok {
		return
	}
	id, ok := pathID(c, s.route.IDParam)
	if !ok {
		return
	}
	if err := s.svc.Delete(c.Request.Context(), id, parentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *ResourceHandler[M, D]) attachment(c *gin.Context) (*dto.Attachment, error) {
	if !s.route.Attachable {
		return nil, nil
	}
	return readAttachment(c)
}
