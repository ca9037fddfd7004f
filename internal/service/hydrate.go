package service

import "github.com/haierkeys/note-organizer-service/internal/domain"

// hydrateNotes folds denormalized join rows into one DTO per note.
// Join fan-out means a note with k tags arrives as k rows, and a note
// with no tags as a single row with nil tag columns. Notes keep the
// order their first row appeared in, tags are deduplicated by id, and
// Tags is always a non-nil slice.
// hydrateNotes 将反规格化的连接行折叠为每条笔记一个 DTO
func hydrateNotes(rows []*domain.NoteRow) []*NoteDTO {
	notes := make([]*NoteDTO, 0)
	byID := make(map[int64]*NoteDTO)
	seenTags := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		note, ok := byID[row.ID]
		if !ok {
			note = &NoteDTO{
				ID:         row.ID,
				Title:      row.Title,
				Content:    row.Content,
				Created:    row.Created,
				FolderID:   row.FolderID,
				FolderName: row.FolderName,
				Tags:       []*TagDTO{},
			}
			byID[row.ID] = note
			seenTags[row.ID] = make(map[int64]struct{})
			notes = append(notes, note)
		}

		if row.TagID == nil {
			continue
		}
		if _, dup := seenTags[row.ID][*row.TagID]; dup {
			continue
		}
		seenTags[row.ID][*row.TagID] = struct{}{}

		tag := &TagDTO{ID: *row.TagID}
		if row.TagName != nil {
			tag.Name = *row.TagName
		}
		note.Tags = append(note.Tags, tag)
	}

	return notes
}
