package model

const TableNameNoteTag = "notes_tags"

// NoteTag mapped from table <notes_tags>
// 笔记与标签的多对多关联
type NoteTag struct {
	NoteID int64 `gorm:"column:note_id;primaryKey;index:idx_notes_tags_note" json:"noteId" form:"noteId"`
	TagID  int64 `gorm:"column:tag_id;primaryKey;index:idx_notes_tags_tag" json:"tagId" form:"tagId"`
}

// TableName NoteTag's table name
func (*NoteTag) TableName() string {
	return TableNameNoteTag
}
