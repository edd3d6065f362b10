package storage

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Janitor deletes objects that are no longer referenced by any row.
// Deletes are best-effort: failures are logged and returned, never fatal.
type Janitor struct {
	store    Store
	resolver KeyResolver
}

func NewJanitor(store Store, resolver KeyResolver) *Janitor {
	return &Janitor{store: store, resolver: resolver}
}

// Discard deletes the objects behind refs concurrently. Refs that resolve to
// no key are skipped. Deletes run to completion even if ctx is cancelled.
func (j *Janitor) Discard(ctx context.Context, refs ...string) []error {
	ctx = context.WithoutCancel(ctx)

	seen := make(map[string]bool, len(refs))
	var keys []string
	for _, ref := range refs {
		key, ok := j.resolver.Resolve(ref)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if err := j.store.Delete(ctx, key); err != nil {
				log.Printf("⚠️ Failed to delete object %s: %v", key, err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				mu.Unlock()
				return
			}
			log.Printf("🗑️ Deleted object %s", key)
		}(key)
	}
	wg.Wait()
	return errs
}
