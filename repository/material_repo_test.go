package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/study-buddy-be/types"
)

func TestSaveAndGet(t *testing.T) {
	repo := NewInMemoryMaterialRepo()

	_, ok := repo.Get("missing")
	assert.False(t, ok)

	repo.Save("lecture", types.Material{Filename: "lecture.pdf", Content: "Hello world\n"})

	material, ok := repo.Get("lecture")
	require.True(t, ok)
	assert.Equal(t, "lecture.pdf", material.Filename)
	assert.Equal(t, "Hello world\n", material.Content)
	assert.Nil(t, material.Notes)
	assert.Nil(t, material.Quiz)
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	repo := NewInMemoryMaterialRepo()

	notes := "old notes"
	repo.Save("lecture", types.Material{
		Filename: "lecture.pdf",
		Content:  "old content",
		Notes:    &notes,
		Quiz:     map[string]any{"raw_text": "old quiz"},
	})

	// re-upload: fresh record, generated artifacts gone
	repo.Save("lecture", types.Material{Filename: "lecture.pdf", Content: "new content"})

	material, ok := repo.Get("lecture")
	require.True(t, ok)
	assert.Equal(t, "new content", material.Content)
	assert.Nil(t, material.Notes)
	assert.Nil(t, material.Quiz)
}

func TestListSummaries(t *testing.T) {
	repo := NewInMemoryMaterialRepo()
	assert.Empty(t, repo.List())

	notes := "some notes"
	repo.Save("b_lecture", types.Material{Filename: "b lecture.pdf", Content: "b", Notes: &notes})
	repo.Save("a_lecture", types.Material{Filename: "a lecture.pdf", Content: "a"})

	summaries := repo.List()
	require.Len(t, summaries, 2)
	assert.Equal(t, "a_lecture", summaries[0].MaterialID)
	assert.Equal(t, "a lecture.pdf", summaries[0].Filename)
	assert.False(t, summaries[0].HasNotes)
	assert.False(t, summaries[0].HasQuiz)
	assert.Equal(t, "b_lecture", summaries[1].MaterialID)
	assert.True(t, summaries[1].HasNotes)
	assert.False(t, summaries[1].HasQuiz)
}

func TestConcurrentAccess(t *testing.T) {
	repo := NewInMemoryMaterialRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("material-%d", i%5)
			repo.Save(id, types.Material{Filename: id + ".pdf", Content: "content"})
		}(i)
		go func(i int) {
			defer wg.Done()
			repo.Get(fmt.Sprintf("material-%d", i%5))
			repo.List()
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.List(), 5)
}
