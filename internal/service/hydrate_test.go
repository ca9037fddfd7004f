package service

import (
	"testing"

	"github.com/haierkeys/note-organizer-service/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func TestHydrateNotes(t *testing.T) {

	tests := []struct {
		name string
		rows []*domain.NoteRow
		want []*NoteDTO
	}{
		{
			name: "empty result",
			rows: []*domain.NoteRow{},
			want: []*NoteDTO{},
		},
		{
			name: "note without folder and tags",
			rows: []*domain.NoteRow{
				{ID: 1, Title: "a", Content: "body"},
			},
			want: []*NoteDTO{
				{ID: 1, Title: "a", Content: "body", Tags: []*TagDTO{}},
			},
		},
		{
			name: "fanout folds into one note",
			rows: []*domain.NoteRow{
				{ID: 1, Title: "a", FolderID: i64(7), FolderName: str("inbox"), TagID: i64(10), TagName: str("work")},
				{ID: 1, Title: "a", FolderID: i64(7), FolderName: str("inbox"), TagID: i64(11), TagName: str("urgent")},
				{ID: 1, Title: "a", FolderID: i64(7), FolderName: str("inbox"), TagID: i64(12), TagName: str("todo")},
			},
			want: []*NoteDTO{
				{ID: 1, Title: "a", FolderID: i64(7), FolderName: str("inbox"), Tags: []*TagDTO{
					{ID: 10, Name: "work"},
					{ID: 11, Name: "urgent"},
					{ID: 12, Name: "todo"},
				}},
			},
		},
		{
			name: "duplicate tag rows are deduplicated",
			rows: []*domain.NoteRow{
				{ID: 1, Title: "a", TagID: i64(10), TagName: str("work")},
				{ID: 1, Title: "a", TagID: i64(10), TagName: str("work")},
			},
			want: []*NoteDTO{
				{ID: 1, Title: "a", Tags: []*TagDTO{{ID: 10, Name: "work"}}},
			},
		},
		{
			name: "notes keep first-seen order",
			rows: []*domain.NoteRow{
				{ID: 3, Title: "c", TagID: i64(1), TagName: str("x")},
				{ID: 1, Title: "a"},
				{ID: 3, Title: "c", TagID: i64(2), TagName: str("y")},
				{ID: 2, Title: "b"},
			},
			want: []*NoteDTO{
				{ID: 3, Title: "c", Tags: []*TagDTO{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}}},
				{ID: 1, Title: "a", Tags: []*TagDTO{}},
				{ID: 2, Title: "b", Tags: []*TagDTO{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hydrateNotes(tt.rows)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 标签为空时必须是空切片而不是 nil，否则 JSON 序列化为 null
func TestHydrateNotesTagsNeverNil(t *testing.T) {
	got := hydrateNotes([]*domain.NoteRow{{ID: 5, Title: "lonely"}})
	assert.Len(t, got, 1)
	assert.NotNil(t, got[0].Tags)
	assert.Empty(t, got[0].Tags)
}

func TestHydrateNotesProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// 每个去重后的笔记ID恰好产出一个对象
	properties.Property("one object per distinct note id", prop.ForAll(
		func(ids []int64) bool {
			rows := make([]*domain.NoteRow, 0, len(ids))
			for _, id := range ids {
				rows = append(rows, &domain.NoteRow{ID: id, Title: "t"})
			}
			distinct := make(map[int64]struct{})
			for _, id := range ids {
				distinct[id] = struct{}{}
			}
			return len(hydrateNotes(rows)) == len(distinct)
		},
		gen.SliceOf(gen.Int64Range(1, 20)),
	))

	// k 个不同标签的笔记恰好有 k 个标签，重复行不影响结果
	properties.Property("tags deduplicated per note", prop.ForAll(
		func(tagIDs []int64, repeat uint8) bool {
			rows := make([]*domain.NoteRow, 0)
			n := int(repeat%3) + 1
			for i := 0; i < n; i++ {
				for _, tagID := range tagIDs {
					rows = append(rows, &domain.NoteRow{ID: 1, Title: "t", TagID: i64(tagID), TagName: str("tag")})
				}
			}
			if len(rows) == 0 {
				rows = append(rows, &domain.NoteRow{ID: 1, Title: "t"})
			}
			distinct := make(map[int64]struct{})
			for _, tagID := range tagIDs {
				distinct[tagID] = struct{}{}
			}
			notes := hydrateNotes(rows)
			return len(notes) == 1 && len(notes[0].Tags) == len(distinct)
		},
		gen.SliceOf(gen.Int64Range(1, 10)),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
