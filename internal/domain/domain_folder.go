package domain

// Folder 文件夹领域模型
type Folder struct {
	ID   int64
	Name string
}
