package dto

import "time"

type ProjectDTO struct {
	ID          *uint64    `json:"id" form:"-"`
	Name        *string    `json:"name" form:"name" validate:"required,min=1,max=255"`
	ProjectID   *string    `json:"project_id" form:"project_id" validate:"required,min=1,max=100"`
	CreatedDate *Date      `json:"created_date" form:"created_date" validate:"required,date_fmt"`
	CreatedBy   *uint64    `json:"created_by" form:"-"`
	CreatedAt   *time.Time `json:"created_at" form:"-"`
	UpdatedAt   *time.Time `json:"updated_at" form:"-"`
}

func (d *ProjectDTO) StripReadOnly() {
	d.ID, d.CreatedBy, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil
}
