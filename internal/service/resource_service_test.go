package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/pkg/util"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_CreateAndDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-001"), nil)
	require.NoError(t, err)
	require.NotNil(t, p.ID)
	assert.Equal(t, "01/06/2025", p.CreatedDate.String())
	adminID, _ := security.UserIDFromContext(ctx)
	assert.Equal(t, adminID, *p.CreatedBy)

	_, err = f.projects.Create(ctx, 0, projectInput(t, "PRJ-001"), nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"project with this project id already exists."}, ve.Errors["project_id"])

	_, err = f.projects.Create(context.Background(), 0, projectInput(t, "PRJ-002"), nil)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestProject_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	var bad dto.Date
	require.NoError(t, bad.UnmarshalParam("June 1st"))
	_, err := f.projects.Create(ctx, 0, &dto.ProjectDTO{Name: util.Ptr(""), CreatedDate: &bad}, nil)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"This field may not be blank."}, ve.Errors["name"])
	assert.Equal(t, []string{"This field is required."}, ve.Errors["project_id"])
	assert.Equal(t, []string{dto.DateFormatMessage}, ve.Errors["created_date"])
}

func TestProject_UpdateKeepsUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	first, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-001"), nil)
	require.NoError(t, err)
	second, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-002"), nil)
	require.NoError(t, err)

	// 保存自身不视为重复
	renamed, err := f.projects.Update(ctx, *first.ID, 0, &dto.ProjectDTO{Name: util.Ptr("Renamed")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", *renamed.Name)
	assert.Equal(t, "PRJ-001", *renamed.ProjectID)

	_, err = f.projects.Update(ctx, *second.ID, 0, &dto.ProjectDTO{ProjectID: util.Ptr("PRJ-001")}, true, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "project_id")
}

func TestKOL_ScopedToProject(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	a, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)
	b, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-B"), nil)
	require.NoError(t, err)

	kol, err := f.kols.Create(ctx, *a.ID, kolInput(t, "Nguyen Van A"), nil)
	require.NoError(t, err)
	assert.Equal(t, *a.ID, *kol.ProjectID)
	assert.Equal(t, "02/06/2025", kol.SubmittedOn.String())
	assert.Nil(t, kol.VideoFile)

	got, err := f.kols.Get(ctx, *kol.ID, *a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", *got.FullName)

	_, err = f.kols.Get(ctx, *kol.ID, *b.ID)
	assert.ErrorIs(t, err, &NotFoundError{Resource: "KOL"})

	_, err = f.kols.Get(ctx, *kol.ID, 9999)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, f.kols.Delete(ctx, *kol.ID, *b.ID), &NotFoundError{Resource: "KOL"})

	listA, err := f.kols.List(ctx, *a.ID)
	require.NoError(t, err)
	assert.Len(t, listA, 1)
	listB, err := f.kols.List(ctx, *b.ID)
	require.NoError(t, err)
	assert.Empty(t, listB)
}

func TestKOL_PartialAndFullUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)
	kol, err := f.kols.Create(ctx, *p.ID, kolInput(t, "Nguyen Van A"), nil)
	require.NoError(t, err)

	patched, err := f.kols.Update(ctx, *kol.ID, *p.ID, &dto.KOLDTO{Note: util.Ptr("second batch"), SubmittedOn: mustDate(t, "2025-07-01")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "second batch", *patched.Note)
	assert.Equal(t, "01/07/2025", patched.SubmittedOn.String())
	assert.Equal(t, "Nguyen Van A", *patched.FullName)
	assert.Equal(t, "03/06/2025", patched.KolKocApprovalTime.String())

	// 完整更新缺字段时报错
	_, err = f.kols.Update(ctx, *kol.ID, *p.ID, &dto.KOLDTO{Note: util.Ptr("only note")}, false, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "full_name")

	full := kolInput(t, "Tran Thi B")
	full.Email = util.Ptr("b@example.com")
	replaced, err := f.kols.Update(ctx, *kol.ID, *p.ID, full, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tran Thi B", *replaced.FullName)
	assert.Equal(t, "b@example.com", *replaced.Email)
	assert.Equal(t, *p.ID, *replaced.ProjectID)

	_, err = f.kols.Update(ctx, *kol.ID+100, *p.ID, &dto.KOLDTO{}, true, nil)
	assert.ErrorIs(t, err, &NotFoundError{Resource: "KOL"})
}

func TestKOL_Attachment(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)
	kol, err := f.kols.Create(ctx, *p.ID, kolInput(t, "Nguyen Van A"), videoAttachment("first-video"))
	require.NoError(t, err)
	require.NotNil(t, kol.VideoFile)
	assert.True(t, strings.HasPrefix(*kol.VideoFile, "/media/videos/kols/"))
	first := f.storedKey(t, *kol.ID)
	assert.FileExists(t, filepath.Join(f.dir, first))

	// 替换附件后删除旧对象
	_, err = f.kols.Update(ctx, *kol.ID, *p.ID, &dto.KOLDTO{}, true, videoAttachment("second-video"))
	require.NoError(t, err)
	second := f.storedKey(t, *kol.ID)
	assert.NotEqual(t, first, second)
	assert.NoFileExists(t, filepath.Join(f.dir, first))
	assert.FileExists(t, filepath.Join(f.dir, second))

	// 未上传新文件时保留原附件
	_, err = f.kols.Update(ctx, *kol.ID, *p.ID, &dto.KOLDTO{Note: util.Ptr("edited")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, second, f.storedKey(t, *kol.ID))

	require.NoError(t, f.kols.Delete(ctx, *kol.ID, *p.ID))
	assert.NoFileExists(t, filepath.Join(f.dir, second))
}

func TestProject_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)
	kept, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-B"), nil)
	require.NoError(t, err)

	kol, err := f.kols.Create(ctx, *p.ID, kolInput(t, "Nguyen Van A"), videoAttachment("video"))
	require.NoError(t, err)
	key := f.storedKey(t, *kol.ID)
	_, err = f.tracking.Create(ctx, *p.ID, dataTrackingInput(), nil)
	require.NoError(t, err)
	_, err = f.numbers.Create(ctx, *p.ID, trackingNumberInput(t, "TN-001"), nil)
	require.NoError(t, err)
	_, err = f.numbers.Create(ctx, *kept.ID, trackingNumberInput(t, "TN-002"), nil)
	require.NoError(t, err)

	require.NoError(t, f.projects.Delete(ctx, *p.ID, 0))

	for _, m := range []any{&model.KOL{}, &model.DataTracking{}, &model.TrackingNumber{}} {
		var count int64
		require.NoError(t, f.db.Model(m).Where("project_id = ?", *p.ID).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}
	assert.NoFileExists(t, filepath.Join(f.dir, key))

	// 其它项目的数据不受影响
	left, err := f.numbers.List(ctx, *kept.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	_, err = f.projects.Get(ctx, *p.ID, 0)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, f.projects.Delete(ctx, *p.ID, 0), ErrProjectNotFound)
}

func TestDataTracking_ScopedAndPartial(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)
	other, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-B"), nil)
	require.NoError(t, err)

	dt, err := f.tracking.Create(ctx, *p.ID, dataTrackingInput(), videoAttachment("tracking-video"))
	require.NoError(t, err)
	assert.Equal(t, *p.ID, *dt.ProjectID)
	require.NotNil(t, dt.VideoFile)
	assert.True(t, strings.HasPrefix(*dt.VideoFile, "/media/videos/data_tracking/"))

	_, err = f.tracking.Get(ctx, *dt.ID, *other.ID)
	assert.ErrorIs(t, err, &NotFoundError{Resource: "Data tracking"})
	_, err = f.tracking.Create(ctx, *p.ID+100, dataTrackingInput(), nil)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	// 零值也是有效的更新
	patched, err := f.tracking.Update(ctx, *dt.ID, *p.ID, &dto.DataTrackingDTO{View: util.Ptr(int64(0))}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *patched.View)
	assert.Equal(t, int64(8000), *patched.Like)
	assert.Equal(t, *dt.VideoFile, *patched.VideoFile)

	bad := dataTrackingInput()
	bad.ProductLinked = util.Ptr("not a url")
	_, err = f.tracking.Create(ctx, *p.ID, bad, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Enter a valid URL."}, ve.Errors["product_linked"])

	require.NoError(t, f.tracking.Delete(ctx, *dt.ID, *p.ID))
	list, err := f.tracking.List(ctx, *p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTrackingNumber_PhoneCheckAndDate(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	p, err := f.projects.Create(ctx, 0, projectInput(t, "PRJ-A"), nil)
	require.NoError(t, err)

	tn, err := f.numbers.Create(ctx, *p.ID, trackingNumberInput(t, "TN-001"), nil)
	require.NoError(t, err)
	assert.True(t, *tn.PhoneCheck)
	assert.Equal(t, "10/06/2025", tn.TrackingDate.String())
	assert.Nil(t, tn.VideoFile)

	patched, err := f.numbers.Update(ctx, *tn.ID, *p.ID, &dto.TrackingNumberDTO{
		PhoneCheck:   util.Ptr(false),
		TrackingDate: mustDate(t, "2025-07-01"),
	}, true, nil)
	require.NoError(t, err)
	assert.False(t, *patched.PhoneCheck)
	assert.Equal(t, "01/07/2025", patched.TrackingDate.String())
	assert.Equal(t, "TN-001", *patched.TrackingNumber)

	// phone_check 缺省为 false
	in := trackingNumberInput(t, "TN-002")
	in.PhoneCheck = nil
	second, err := f.numbers.Create(ctx, *p.ID, in, nil)
	require.NoError(t, err)
	assert.False(t, *second.PhoneCheck)

	in = trackingNumberInput(t, "TN-003")
	in.TrackingDate = nil
	_, err = f.numbers.Create(ctx, *p.ID, in, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"This field is required."}, ve.Errors["tracking_date"])

	list, err := f.numbers.List(ctx, *p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// storedKey 读取数据库中保存的对象 key
func (f *fixture) storedKey(t *testing.T, kolID uint64) string {
	t.Helper()
	var kol model.KOL
	require.NoError(t, f.db.Take(&kol, kolID).Error)
	require.NotNil(t, kol.VideoFile)
	return filepath.FromSlash(*kol.VideoFile)
}
