package model

import "github.com/haierkeys/note-organizer-service/pkg/timex"

const TableNameNote = "notes"

// Note mapped from table <notes>
type Note struct {
	ID       int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Title    string     `gorm:"column:title;not null" json:"title" form:"title"`
	Content  string     `gorm:"column:content" json:"content" form:"content"`
	FolderID *int64     `gorm:"column:folder_id;index:idx_notes_folder" json:"folderId" form:"folderId"`
	Created  timex.Time `gorm:"column:created;type:datetime;default:NULL;autoCreateTime:false" json:"created" form:"created"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
