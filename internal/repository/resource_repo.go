package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope 父级约束，列名 -> 值，所有查询都会带上
type Scope map[string]any

// ResourceOptions 通用仓储的行为配置
type ResourceOptions struct {
	Order    string
	Preloads []string
	// Cascade 删除记录时一并删除的关联
	Cascade []string
}

type ResourceRepo[M any] interface {
	List(ctx context.Context, scope Scope, opts ...QueryOption) ([]*M, error)
	First(ctx context.Context, scope Scope, opts ...QueryOption) (*M, error)
	Get(ctx context.Context, id uint64, scope Scope) (*M, error)
	Exists(ctx context.Context, cond Scope, excludeID uint64) (bool, error)
	Create(ctx context.Context, m *M) error
	Reload(ctx context.Context, m *M) error
	Save(ctx context.Context, m *M) error
	Delete(ctx context.Context, id uint64, scope Scope) (*M, error)
}

type resourceRepoImpl[M any] struct {
	db   *gorm.DB
	opts ResourceOptions
}

func NewResourceRepo[M any](db *gorm.DB, opts ResourceOptions) ResourceRepo[M] {
	return &resourceRepoImpl[M]{db: db, opts: opts}
}

func (r *resourceRepoImpl[M]) query(ctx context.Context, scope Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(M))
	for _, p := range r.opts.Preloads {
		q = q.Preload(p)
	}
	if len(scope) > 0 {
		q = q.Where(map[string]any(scope))
	}
	return q
}

func (r *resourceRepoImpl[M]) List(ctx context.Context, scope Scope, opts ...QueryOption) ([]*M, error) {
	list := make([]*M, 0)
	q := r.query(ctx, scope).Scopes(opts...)
	if r.opts.Order != "" {
		q = q.Order(r.opts.Order)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// First 按默认排序取第一条，不存在时返回 nil
func (r *resourceRepoImpl[M]) First(ctx context.Context, scope Scope, opts ...QueryOption) (*M, error) {
	list, err := r.List(ctx, scope, append(opts, Limit(1))...)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *resourceRepoImpl[M]) Get(ctx context.Context, id uint64, scope Scope) (*M, error) {
	m := new(M)
	err := r.query(ctx, scope).Where("id = ?", id).Take(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Exists 唯一性预检，excludeID 非 0 时排除自身
func (r *resourceRepoImpl[M]) Exists(ctx context.Context, cond Scope, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(new(M)).Where(map[string]any(cond))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *resourceRepoImpl[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

// Reload 按主键重新读取记录及预加载关联
func (r *resourceRepoImpl[M]) Reload(ctx context.Context, m *M) error {
	q := r.db.WithContext(ctx)
	for _, p := range r.opts.Preloads {
		q = q.Preload(p)
	}
	return q.Take(m).Error
}

func (r *resourceRepoImpl[M]) Save(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "created_at").Save(m).Error
}

// Delete 在同一事务内删除记录及 Cascade 关联，返回被删除的记录；不存在时返回 nil
func (r *resourceRepoImpl[M]) Delete(ctx context.Context, id uint64, scope Scope) (*M, error) {
	var deleted *M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := new(M)
		q := tx.Model(new(M))
		if len(scope) > 0 {
			q = q.Where(map[string]any(scope))
		}
		if err := q.Where("id = ?", id).Take(m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		del := tx
		if len(r.opts.Cascade) > 0 {
			del = tx.Select(r.opts.Cascade)
		}
		if err := del.Delete(m).Error; err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
