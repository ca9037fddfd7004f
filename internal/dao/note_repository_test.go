package dao

import (
	"context"
	"testing"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/model"
	"github.com/haierkeys/note-organizer-service/pkg/timex"

	"github.com/glebarez/sqlite"
	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, key := range []string{"Note", "Folder", "Tag", "NoteTag"} {
		require.NoError(t, model.AutoMigrate(db, key))
	}

	return New(db)
}

// seedNotes 建立固定的测试数据
// folder inbox(1): note 1, 2; note 3 无文件夹
// tag work(1): note 1, 2; tag home(2): note 1
func seedNotes(t *testing.T, d *Dao) {
	t.Helper()
	db := d.DB()

	require.NoError(t, db.Create(&model.Folder{ID: 1, Name: "inbox"}).Error)
	require.NoError(t, db.Create(&model.Tag{ID: 1, Name: "work"}).Error)
	require.NoError(t, db.Create(&model.Tag{ID: 2, Name: "home"}).Error)

	folderID := int64(1)
	notes := []*model.Note{
		{ID: 1, Title: "groceries list", Content: "milk", FolderID: &folderID, Created: timex.Now()},
		{ID: 2, Title: "meeting notes", Content: "groceries are off topic", FolderID: &folderID, Created: timex.Now()},
		{ID: 3, Title: "scratch", Content: "", Created: timex.Now()},
	}
	for _, n := range notes {
		require.NoError(t, db.Create(n).Error)
	}

	assocs := []*model.NoteTag{
		{NoteID: 1, TagID: 1},
		{NoteID: 1, TagID: 2},
		{NoteID: 2, TagID: 1},
	}
	for _, a := range assocs {
		require.NoError(t, db.Create(a).Error)
	}
}

func TestNoteRepositoryListRowsNoFilter(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	rows, err := repo.ListRows(ctx, domain.NoteFilter{})
	require.NoError(t, err)

	// note 1 有两个标签产生两行，note 2 一行，note 3 一行
	assert.Len(t, rows, 4)
}

// 按标签过滤后，命中的笔记必须带回全部标签，而不只是命中的那个
func TestNoteRepositoryListRowsTagFilterExpandsTags(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	tagID := int64(2) // home，只有 note 1
	rows, err := repo.ListRows(ctx, domain.NoteFilter{TagID: &tagID})
	require.NoError(t, err)

	dump.P(rows)

	tagIDs := make(map[int64]struct{})
	for _, row := range rows {
		require.Equal(t, int64(1), row.ID)
		if row.TagID != nil {
			tagIDs[*row.TagID] = struct{}{}
		}
	}
	// 第二趟查询不带标签过滤，work 和 home 都要出现
	assert.Len(t, tagIDs, 2)
}

func TestNoteRepositoryListRowsSearchMatchesTitleOnly(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	rows, err := repo.ListRows(ctx, domain.NoteFilter{SearchTerm: "groceries"})
	require.NoError(t, err)

	// note 2 的正文里有 groceries，但搜索只匹配标题
	for _, row := range rows {
		assert.Equal(t, int64(1), row.ID)
	}
	assert.NotEmpty(t, rows)
}

func TestNoteRepositoryListRowsCombinedFilters(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	folderID := int64(1)
	tagID := int64(1)
	rows, err := repo.ListRows(ctx, domain.NoteFilter{SearchTerm: "meeting", FolderID: &folderID, TagID: &tagID})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, "meeting notes", rows[0].Title)
}

// sqlite 的 LIKE 对 ASCII 默认不区分大小写
func TestNoteRepositoryListRowsSearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	rows, err := repo.ListRows(ctx, domain.NoteFilter{SearchTerm: "GROCERIES"})
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, int64(1), rows[0].ID)
}

func TestNoteRepositoryListRowsNoMatch(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	rows, err := repo.ListRows(ctx, domain.NoteFilter{SearchTerm: "nothing matches this"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNoteRepositoryInsertAndGetRows(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	id, err := repo.Insert(ctx, &domain.NoteSet{Title: "new", Content: "c", TagIDs: []int64{1}})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	rows, err := repo.GetRows(ctx, id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].Title)
	assert.Nil(t, rows[0].FolderID)
	require.NotNil(t, rows[0].TagID)
	assert.Equal(t, int64(1), *rows[0].TagID)
}

func TestNoteRepositoryReplaceTags(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	require.NoError(t, d.DB().Create(&model.Tag{ID: 3, Name: "later"}).Error)

	// note 1 的标签 {work, home} 替换为 {later}
	require.NoError(t, repo.ReplaceTags(ctx, 1, []int64{3}))

	var assocs []*model.NoteTag
	require.NoError(t, d.DB().Where("note_id = ?", 1).Find(&assocs).Error)
	require.Len(t, assocs, 1)
	assert.Equal(t, int64(3), assocs[0].TagID)
}

func TestNoteRepositoryReplaceTagsToEmpty(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	require.NoError(t, repo.ReplaceTags(ctx, 1, nil))

	var count int64
	require.NoError(t, d.DB().Model(&model.NoteTag{}).Where("note_id = ?", 1).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNoteRepositoryDeleteRemovesAssociations(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	require.NoError(t, repo.Delete(ctx, 1))

	var noteCount, assocCount int64
	require.NoError(t, d.DB().Model(&model.Note{}).Where("id = ?", 1).Count(&noteCount).Error)
	require.NoError(t, d.DB().Model(&model.NoteTag{}).Where("note_id = ?", 1).Count(&assocCount).Error)
	assert.Zero(t, noteCount)
	assert.Zero(t, assocCount)
}

func TestNoteRepositoryDeleteOrphanAssociations(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	seedNotes(t, d)
	repo := NewNoteRepository(d)

	// 直接删掉笔记行，留下悬空关联
	require.NoError(t, d.DB().Where("id = ?", 1).Delete(&model.Note{}).Error)

	swept, err := repo.DeleteOrphanAssociations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), swept)

	var remaining int64
	require.NoError(t, d.DB().Model(&model.NoteTag{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}
