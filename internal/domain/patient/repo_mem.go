package patient

import (
	"context"
	"fmt"
	"sync"
)

// MemRepo keeps patient records in process memory; records reset on restart.
// Echo dispatches handlers on separate goroutines, so every operation takes
// the lock. Iteration order is insertion order.
type MemRepo struct {
	mu      sync.Mutex
	records map[string]*Patient
	order   []string // insertion order
	lastID  int      // monotonic; deletions never free an id
}

func NewMemRepo() *MemRepo {
	return &MemRepo{records: make(map[string]*Patient)}
}

// seedLocked populates the two demo records whenever the store is empty.
// Idempotent. Callers hold the lock.
func (r *MemRepo) seedLocked() {
	if len(r.records) != 0 {
		return
	}

	adaAge, alanAge := 36, 41
	seeds := []*Patient{
		{ID: "p-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: &adaAge, Conditions: []string{"diabetes"}},
		{ID: "p-2", FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Age: &alanAge, Conditions: []string{"hypertension"}},
	}
	r.order = r.order[:0]
	for _, p := range seeds {
		r.records[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	if r.lastID < len(seeds) {
		r.lastID = len(seeds)
	}
}

func (r *MemRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()

	result := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.records[id]
		result = append(result, &cp)
	}
	return result, nil
}

func (r *MemRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()

	r.lastID++
	p.ID = fmt.Sprintf("p-%d", r.lastID)

	stored := *p
	r.records[p.ID] = &stored
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()

	p, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()

	if _, ok := r.records[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	r.records[p.ID] = &stored
	return nil
}

func (r *MemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
