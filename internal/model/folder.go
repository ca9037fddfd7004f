package model

const TableNameFolder = "folders"

// Folder mapped from table <folders>
type Folder struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Name string `gorm:"column:name;not null" json:"name" form:"name"`
}

// TableName Folder's table name
func (*Folder) TableName() string {
	return TableNameFolder
}
