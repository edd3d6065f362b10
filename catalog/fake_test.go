package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
	"github.com/upparakash/AspireBrandApi/storage/storagetest"
)

type memRepo[T any, P interface {
	*T
	models.Cataloged
}] struct {
	mu      sync.Mutex
	rows    map[uint]T
	nextID  uint
	setID   func(*T, uint)
	inserts int
	updates int

	insertErr error
	updateErr error
}

func newMemRepo[T any, P interface {
	*T
	models.Cataloged
}](setID func(*T, uint)) *memRepo[T, P] {
	return &memRepo[T, P]{rows: map[uint]T{}, setID: setID}
}

func (r *memRepo[T, P]) Find(_ context.Context, id uint) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("not found")
	}
	return &row, nil
}

func (r *memRepo[T, P]) List(_ context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, int(id))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[uint(id)])
	}
	return out, nil
}

func (r *memRepo[T, P]) Taken(_ context.Context, key models.UniqueKey, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, row := range r.rows {
		if id == excludeID {
			continue
		}
		for _, k := range P(&row).UniqueKeys() {
			if k.Column != key.Column {
				continue
			}
			if (key.Exact && k.Value == key.Value) || (!key.Exact && strings.EqualFold(k.Value, key.Value)) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *memRepo[T, P]) Insert(_ context.Context, row *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	r.setID(row, r.nextID)
	r.rows[r.nextID] = *row
	return nil
}

func (r *memRepo[T, P]) Update(_ context.Context, row *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.rows[P(row).GetID()] = *row
	return nil
}

func (r *memRepo[T, P]) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return apperror.NotFound("not found")
	}
	delete(r.rows, id)
	return nil
}

// put inserts a row directly, bypassing the lifecycle.
func (r *memRepo[T, P]) put(row T) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.setID(&row, r.nextID)
	r.rows[r.nextID] = row
	return r.nextID
}

type memCustomers struct {
	*memRepo[models.Customer, *models.Customer]
}

func (r memCustomers) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if strings.EqualFold(c.Email, email) {
			return &c, nil
		}
	}
	return nil, apperror.NotFound("Customer not found")
}

type memAdmins struct {
	*memRepo[models.Admin, *models.Admin]
}

func (r memAdmins) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, apperror.NotFound("Admin not found")
}

// uploaded seeds one object per field, as the upload middleware would.
func uploaded(store *storagetest.MemStore, folder string, fields ...string) storage.Uploads {
	uploads := storage.Uploads{}
	for _, field := range fields {
		key := folder + "/new-" + field + ".jpg"
		uploads[field] = storage.Object{Field: field, Key: key, URL: store.Seed(key)}
	}
	return uploads
}
