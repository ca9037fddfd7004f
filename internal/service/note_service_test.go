package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	"github.com/haierkeys/note-organizer-service/pkg/code"

	"github.com/stretchr/testify/assert"
)

type mockNoteRepo struct {
	domain.NoteRepository
	rows       []*domain.NoteRow
	gotFilter  domain.NoteFilter
	nextID     int64
	exists     bool
	updated    *domain.NoteSet
	tagsSet    []int64
	deletedIDs []int64
}

func (m *mockNoteRepo) ListRows(ctx context.Context, filter domain.NoteFilter) ([]*domain.NoteRow, error) {
	m.gotFilter = filter
	return m.rows, nil
}

func (m *mockNoteRepo) GetRows(ctx context.Context, id int64) ([]*domain.NoteRow, error) {
	var rows []*domain.NoteRow
	for _, row := range m.rows {
		if row.ID == id {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *mockNoteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.exists, nil
}

func (m *mockNoteRepo) Insert(ctx context.Context, set *domain.NoteSet) (int64, error) {
	m.rows = append(m.rows, &domain.NoteRow{ID: m.nextID, Title: set.Title, Content: set.Content})
	return m.nextID, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, id int64, set *domain.NoteSet) error {
	m.updated = set
	for _, row := range m.rows {
		if row.ID == id {
			row.Title = set.Title
			row.Content = set.Content
		}
	}
	return nil
}

func (m *mockNoteRepo) ReplaceTags(ctx context.Context, id int64, tagIDs []int64) error {
	m.tagsSet = tagIDs
	return nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func TestNoteServiceListPassesFilter(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{rows: []*domain.NoteRow{{ID: 1, Title: "a"}}}
	svc := NewNoteService(repo)

	folderID := int64(3)
	notes, err := svc.List(ctx, &dto.NoteListRequest{Search: "foo", FolderID: &folderID})
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, "foo", repo.gotFilter.SearchTerm)
	assert.Equal(t, folderID, *repo.gotFilter.FolderID)
	assert.Nil(t, repo.gotFilter.TagID)
}

func TestNoteServiceGetNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&mockNoteRepo{})

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteServiceCreateReturnsHydrated(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{nextID: 9}
	svc := NewNoteService(repo)

	note, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "t", Content: "c"})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), note.ID)
	assert.Equal(t, "t", note.Title)
	assert.NotNil(t, note.Tags)
}

func TestNoteServiceUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(&mockNoteRepo{exists: false})

	_, err := svc.Update(ctx, 42, &dto.NoteUpdateRequest{Title: "t"})
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteServiceUpdateReplacesTags(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{
		exists: true,
		rows:   []*domain.NoteRow{{ID: 1, Title: "old"}},
	}
	svc := NewNoteService(repo)

	note, err := svc.Update(ctx, 1, &dto.NoteUpdateRequest{Title: "new", Tags: []int64{5, 6}})
	assert.NoError(t, err)
	assert.Equal(t, "new", note.Title)
	assert.Equal(t, []int64{5, 6}, repo.tagsSet)
	assert.Equal(t, "new", repo.updated.Title)
}

// 删除不存在的笔记同样成功
func TestNoteServiceDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	svc := NewNoteService(repo)

	assert.NoError(t, svc.Delete(ctx, 404))
	assert.Equal(t, []int64{404}, repo.deletedIDs)
}
