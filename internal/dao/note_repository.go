// Package dao 实现数据访问层
package dao

import (
	"context"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/model"
	"github.com/haierkeys/note-organizer-service/pkg/timex"

	"gorm.io/gorm"
)

// noteRowSelect is the projection shared by every denormalized note query.
// Folder and tag columns come back NULL when the joins miss.
const noteRowSelect = "notes.id, notes.title, notes.content, notes.created, " +
	"folders.id AS folder_id, folders.name AS folder_name, " +
	"tags.id AS tag_id, tags.name AS tag_name"

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// rowQuery 构建笔记、文件夹、标签的三表左连接查询
func (r *noteRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.dao.db.WithContext(ctx).
		Table(model.TableNameNote).
		Select(noteRowSelect).
		Joins("LEFT JOIN folders ON notes.folder_id = folders.id").
		Joins("LEFT JOIN notes_tags ON notes.id = notes_tags.note_id").
		Joins("LEFT JOIN tags ON notes_tags.tag_id = tags.id")
}

// ListRows runs the filtered query in two passes. The first pass applies
// every filter and only collects matching note ids. The second pass
// re-reads all rows for those ids with no tag filter, so a note matched
// through one tag still comes back with its complete tag set.
// ListRows 两趟查询：先按过滤条件取笔记ID，再按ID集合取全部行
func (r *noteRepository) ListRows(ctx context.Context, filter domain.NoteFilter) ([]*domain.NoteRow, error) {

	idQuery := r.rowQuery(ctx).Distinct("notes.id")
	if filter.SearchTerm != "" {
		idQuery = idQuery.Where("notes.title LIKE ?", "%"+filter.SearchTerm+"%")
	}
	if filter.FolderID != nil {
		idQuery = idQuery.Where("notes.folder_id = ?", *filter.FolderID)
	}
	if filter.TagID != nil {
		idQuery = idQuery.Where("tags.id = ?", *filter.TagID)
	}

	var ids []int64
	if err := idQuery.Pluck("notes.id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.NoteRow{}, nil
	}

	var rows []*domain.NoteRow
	err := r.rowQuery(ctx).
		Where("notes.id IN ?", ids).
		Order("notes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRows 获取单条笔记的全部反规格化行
func (r *noteRepository) GetRows(ctx context.Context, id int64) ([]*domain.NoteRow, error) {
	var rows []*domain.NoteRow
	err := r.rowQuery(ctx).
		Where("notes.id = ?", id).
		Order("notes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Exists 判断笔记是否存在
func (r *noteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert 创建笔记与其标签关联，返回自增ID
func (r *noteRepository) Insert(ctx context.Context, set *domain.NoteSet) (int64, error) {
	m := &model.Note{
		Title:    set.Title,
		Content:  set.Content,
		FolderID: set.FolderID,
		Created:  timex.Now(),
	}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return 0, err
	}
	if len(set.TagIDs) > 0 {
		if err := r.insertTags(ctx, m.ID, set.TagIDs); err != nil {
			return 0, err
		}
	}
	return m.ID, nil
}

// Update 更新笔记标量字段，folder_id 为 nil 时置空
func (r *noteRepository) Update(ctx context.Context, id int64, set *domain.NoteSet) error {
	return r.dao.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     set.Title,
			"content":   set.Content,
			"folder_id": set.FolderID,
		}).Error
}

// ReplaceTags 重建标签关联：先删除旧关联再批量插入
func (r *noteRepository) ReplaceTags(ctx context.Context, id int64, tagIDs []int64) error {
	err := r.dao.db.WithContext(ctx).
		Where("note_id = ?", id).
		Delete(&model.NoteTag{}).Error
	if err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	return r.insertTags(ctx, id, tagIDs)
}

func (r *noteRepository) insertTags(ctx context.Context, noteID int64, tagIDs []int64) error {
	assocs := make([]*model.NoteTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		assocs = append(assocs, &model.NoteTag{NoteID: noteID, TagID: tagID})
	}
	return r.dao.db.WithContext(ctx).Create(assocs).Error
}

// Delete 删除笔记及其标签关联
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	err := r.dao.db.WithContext(ctx).
		Where("note_id = ?", id).
		Delete(&model.NoteTag{}).Error
	if err != nil {
		return err
	}
	return r.dao.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Note{}).Error
}

// DeleteOrphanAssociations 清理指向已删除笔记或标签的关联记录
func (r *noteRepository) DeleteOrphanAssociations(ctx context.Context) (int64, error) {
	result := r.dao.db.WithContext(ctx).
		Where("note_id NOT IN (SELECT id FROM notes) OR tag_id NOT IN (SELECT id FROM tags)").
		Delete(&model.NoteTag{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
