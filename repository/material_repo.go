package repository

import (
	"sort"
	"sync"

	"github.com/tieubaoca/study-buddy-be/types"
)

// MaterialRepo stores uploaded materials keyed by their derived id. Save
// always replaces the whole record, so concurrent writers race at record
// granularity only (last writer wins, never a torn record).
type MaterialRepo interface {
	Save(id string, material types.Material)
	Get(id string) (types.Material, bool)
	List() []types.MaterialSummary
}

type inMemoryMaterialRepo struct {
	mu        sync.RWMutex
	materials map[string]types.Material
}

// NewInMemoryMaterialRepo creates a process-local material store. Records
// live until the process exits; there is no delete operation.
func NewInMemoryMaterialRepo() MaterialRepo {
	return &inMemoryMaterialRepo{
		materials: make(map[string]types.Material),
	}
}

func (r *inMemoryMaterialRepo) Save(id string, material types.Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials[id] = material
}

func (r *inMemoryMaterialRepo) Get(id string) (types.Material, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	material, ok := r.materials[id]
	return material, ok
}

func (r *inMemoryMaterialRepo) List() []types.MaterialSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summaries := make([]types.MaterialSummary, 0, len(r.materials))
	for id, material := range r.materials {
		summaries = append(summaries, types.MaterialSummary{
			MaterialID: id,
			Filename:   material.Filename,
			HasNotes:   material.Notes != nil,
			HasQuiz:    material.Quiz != nil,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].MaterialID < summaries[j].MaterialID
	})
	return summaries
}
