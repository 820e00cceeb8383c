package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/storage"
	"NovaAff/internal/pkg/util"
	"NovaAff/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// ResourceService 通用 CRUD，parentID 在无父级资源上被忽略
type ResourceService[M any, D any] interface {
	List(ctx context.Context, parentID uint64, opts ...repository.QueryOption) ([]*D, error)
	Get(ctx context.Context, id, parentID uint64) (*D, error)
	Create(ctx context.Context, parentID uint64, in *D, file *dto.Attachment) (*D, error)
	Update(ctx context.Context, id, parentID uint64, in *D, partial bool, file *dto.Attachment) (*D, error)
	Delete(ctx context.Context, id, parentID uint64) error
	// Render 将 model 转为对外展示的 DTO
	Render(m *M) (*D, error)
}

// ParentRef 父级资源，所有查询都按 Column 约束
type ParentRef struct {
	Column   string
	NotFound error
	Exists   func(ctx context.Context, id uint64) (bool, error)
}

// UniqueCheck 写入前的唯一性预检，Field 为空时报告为非字段错误
type UniqueCheck struct {
	Field   string
	Cond    repository.Scope
	Message string
}

// ResourceSpec 资源的差异化行为
type ResourceSpec[M any, D any] struct {
	Name   string
	Parent *ParentRef
	// Bind 创建前注入父级、归属等服务端字段
	Bind         func(ctx context.Context, m *M, parentID uint64) error
	Unique       func(m *M) []UniqueCheck
	AttachPrefix string
	Decorate     func(m *M, d *D)
}

type ResourceServiceImpl[M any, D any] struct {
	repo  repository.ResourceRepo[M]
	store storage.Store
	spec  ResourceSpec[M, D]
}

func NewResourceService[M any, D any](repo repository.ResourceRepo[M], store storage.Store, spec ResourceSpec[M, D]) *ResourceServiceImpl[M, D] {
	return &ResourceServiceImpl[M, D]{
		repo:  repo,
		store: store,
		spec:  spec,
	}
}

func (s *ResourceServiceImpl[M, D]) notFound() error {
	return &NotFoundError{Resource: s.spec.Name}
}

// scope 校验父级存在并返回查询约束
func (s *ResourceServiceImpl[M, D]) scope(ctx context.Context, parentID uint64) (repository.Scope, error) {
	if s.spec.Parent == nil {
		return nil, nil
	}
	ok, err := s.spec.Parent.Exists(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.spec.Parent.NotFound
	}
	return repository.Scope{s.spec.Parent.Column: parentID}, nil
}

func (s *ResourceServiceImpl[M, D]) List(ctx context.Context, parentID uint64, opts ...repository.QueryOption) ([]*D, error) {
	scope, err := s.scope(ctx, parentID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, scope, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]*D, 0, len(list))
	for _, m := range list {
		d, err := s.Render(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *ResourceServiceImpl[M, D]) Get(ctx context.Context, id, parentID uint64) (*D, error) {
	scope, err := s.scope(ctx, parentID)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Get(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, s.notFound()
	}
	return s.Render(m)
}

func (s *ResourceServiceImpl[M, D]) Create(ctx context.Context, parentID uint64, in *D, file *dto.Attachment) (*D, error) {
	if _, err := s.scope(ctx, parentID); err != nil {
		return nil, err
	}

	stripReadOnly(in)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	m := new(M)
	if err := copier.CopyWithOption(m, in, writeOption); err != nil {
		return nil, err
	}
	if s.spec.Bind != nil {
		if err := s.spec.Bind(ctx, m, parentID); err != nil {
			return nil, err
		}
	}
	if err := s.checkUnique(ctx, m, 0); err != nil {
		return nil, err
	}

	uploaded, err := s.attach(ctx, m, file)
	if err != nil {
		return nil, err
	}
	if err = s.repo.Create(ctx, m); err != nil {
		s.discard(ctx, uploaded)
		return nil, translateIntegrity(err)
	}

	if err = s.repo.Reload(ctx, m); err != nil {
		return nil, err
	}
	return s.Render(m)
}

// Update partial 为 true 时未提供的字段保留原值，否则按完整记录校验
func (s *ResourceServiceImpl[M, D]) Update(ctx context.Context, id, parentID uint64, in *D, partial bool, file *dto.Attachment) (*D, error) {
	scope, err := s.scope(ctx, parentID)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.Get(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, s.notFound()
	}

	stripReadOnly(in)
	merged := in
	if partial {
		if merged, err = s.Render(m); err != nil {
			return nil, err
		}
		stripReadOnly(merged)
		clearBlank(merged)
		if err = copier.CopyWithOption(merged, in, mergeOption); err != nil {
			return nil, err
		}
	}
	if err = validateInput(merged); err != nil {
		return nil, err
	}

	if err = copier.CopyWithOption(m, merged, writeOption); err != nil {
		return nil, err
	}
	if err = s.checkUnique(ctx, m, id); err != nil {
		return nil, err
	}

	var previous *string
	if a, ok := any(m).(model.Attachable); ok && a.Attachment() != nil {
		key := *a.Attachment()
		previous = &key
	}
	uploaded, err := s.attach(ctx, m, file)
	if err != nil {
		return nil, err
	}
	if err = s.repo.Save(ctx, m); err != nil {
		s.discard(ctx, uploaded)
		return nil, translateIntegrity(err)
	}
	if uploaded != "" && previous != nil && *previous != uploaded {
		s.discard(ctx, *previous)
	}

	if err = s.repo.Reload(ctx, m); err != nil {
		return nil, err
	}
	return s.Render(m)
}

func (s *ResourceServiceImpl[M, D]) Delete(ctx context.Context, id, parentID uint64) error {
	scope, err := s.scope(ctx, parentID)
	if err != nil {
		return err
	}

	m, err := s.repo.Delete(ctx, id, scope)
	if err != nil {
		return translateIntegrity(err)
	}
	if m == nil {
		return s.notFound()
	}

	if a, ok := any(m).(model.Attachable); ok && a.Attachment() != nil {
		s.discard(ctx, *a.Attachment())
	}
	return nil
}

func (s *ResourceServiceImpl[M, D]) Render(m *M) (*D, error) {
	d := new(D)
	if err := copier.Copy(d, m); err != nil {
		return nil, err
	}

	if a, ok := any(m).(model.Attachable); ok {
		if h, ok := any(d).(dto.AttachmentHolder); ok {
			h.SetAttachmentURL(s.attachmentURL(a.Attachment()))
		}
	}
	if o, ok := any(m).(model.CreatorOwned); ok {
		if c := o.CreatorRef(); c != nil && c.ID != 0 {
			if cd, ok := any(d).(dto.CreatorDescriber); ok {
				cd.DescribeCreator(c)
			}
		}
	}
	if s.spec.Decorate != nil {
		s.spec.Decorate(m, d)
	}
	return d, nil
}

func (s *ResourceServiceImpl[M, D]) attachmentURL(key *string) *string {
	if key == nil || *key == "" || s.store == nil {
		return nil
	}
	url := s.store.URL(*key)
	return &url
}

func (s *ResourceServiceImpl[M, D]) checkUnique(ctx context.Context, m *M, excludeID uint64) error {
	if s.spec.Unique == nil {
		return nil
	}

	fields := util.FieldErrors{}
	for _, check := range s.spec.Unique(m) {
		exists, err := s.repo.Exists(ctx, check.Cond, excludeID)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		field := check.Field
		if field == "" {
			field = util.NonFieldErrors
		}
		fields.Add(field, check.Message)
	}
	if len(fields) > 0 {
		return &ValidationError{Errors: fields}
	}
	return nil
}

// attach 上传附件并写入对象 key，返回新对象的 key
func (s *ResourceServiceImpl[M, D]) attach(ctx context.Context, m *M, file *dto.Attachment) (string, error) {
	if file == nil {
		return "", nil
	}
	a, ok := any(m).(model.Attachable)
	if !ok || s.spec.AttachPrefix == "" {
		return "", nil
	}
	if s.store == nil {
		return "", fmt.Errorf("%s: attachment store is not configured", s.spec.Name)
	}

	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = reader.Close()
	}()

	key := util.BuildObjectName(s.spec.AttachPrefix, file.Extension)
	if err = s.store.Put(ctx, key, reader, file.Size, file.ContentType); err != nil {
		return "", err
	}
	a.SetAttachment(&key)
	return key, nil
}

// discard 删除不再引用的对象，失败只记录日志
func (s *ResourceServiceImpl[M, D]) discard(ctx context.Context, key string) {
	if key == "" || s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.WarnContext(ctx, "failed to delete attachment", "resource", s.spec.Name, "key", key, "err", err)
	}
}

func stripReadOnly(in any) {
	if w, ok := in.(dto.Writable); ok {
		w.StripReadOnly()
	}
}

func validateInput(in any) error {
	fields, err := util.ValidateDTO(in)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &ValidationError{Errors: fields}
	}
	return nil
}
