package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFolderRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewFolderRepository(d)

	folder, err := repo.Create(ctx, &domain.Folder{Name: "inbox"})
	require.NoError(t, err)
	require.Greater(t, folder.ID, int64(0))

	got, err := repo.GetByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "inbox", got.Name)

	require.NoError(t, repo.Update(ctx, &domain.Folder{ID: folder.ID, Name: "archive"}))
	got, err = repo.GetByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "archive", got.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFolderRepositoryGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	repo := NewFolderRepository(d)

	_, err := repo.GetByID(ctx, 99)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// 删除文件夹后，所属笔记的 folder_id 必须被置空
func TestFolderRepositoryDeleteDetachesNotes(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewFolderRepository(d)

	require.NoError(t, repo.Delete(ctx, 1))

	var notes []*model.Note
	require.NoError(t, d.DB().Find(&notes).Error)
	for _, n := range notes {
		assert.Nil(t, n.FolderID)
	}

	var count int64
	require.NoError(t, d.DB().Model(&model.Folder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTagRepositoryDeleteRemovesAssociations(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewTagRepository(d)

	// work 标签挂在 note 1 和 note 2 上
	require.NoError(t, repo.Delete(ctx, 1))

	var assocCount int64
	require.NoError(t, d.DB().Model(&model.NoteTag{}).Where("tag_id = ?", 1).Count(&assocCount).Error)
	assert.Zero(t, assocCount)

	var remaining int64
	require.NoError(t, d.DB().Model(&model.NoteTag{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining) // note 1 的 home 关联保留
}
