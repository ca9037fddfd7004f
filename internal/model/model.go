package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Note":
		return db.AutoMigrate(Note{})

	case "Folder":
		return db.AutoMigrate(Folder{})

	case "Tag":
		return db.AutoMigrate(Tag{})

	case "NoteTag":
		return db.AutoMigrate(NoteTag{})
	}
	return nil
}
