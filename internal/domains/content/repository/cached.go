package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/pkg/cache"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

// cachedRepository is a read-through cache in front of another repository.
// Single records are cached under "<kind>:id:<id>" and "<kind>:slug:<slug>",
// the full list under "<kind>:list". Cache errors never fail a request.
//
// Every write bumps epoch; a read that started under an older epoch does not
// refill the cache. Keys whose invalidation failed are marked dirty and
// bypassed until a later delete succeeds.
type cachedRepository[E any] struct {
	next   content.Repository[E]
	cache  cache.Cache
	schema content.Schema[E]
	ttl    time.Duration

	mu    sync.Mutex
	epoch uint64
	dirty map[string]struct{}
}

// NewCachedRepository wraps next with cache. A nil cache returns next unchanged.
func NewCachedRepository[E any](next content.Repository[E], c cache.Cache, schema content.Schema[E], ttl time.Duration) content.Repository[E] {
	if c == nil {
		return next
	}
	return &cachedRepository[E]{next: next, cache: c, schema: schema, ttl: ttl, dirty: map[string]struct{}{}}
}

// Primary exposes the uncached repository.
func (r *cachedRepository[E]) Primary() content.Repository[E] {
	return r.next
}

func (r *cachedRepository[E]) idKey(id int64) string {
	return r.schema.Kind + ":id:" + strconv.FormatInt(id, 10)
}

func (r *cachedRepository[E]) slugKey(slug string) string {
	return r.schema.Kind + ":slug:" + slug
}

func (r *cachedRepository[E]) listKey() string {
	return r.schema.Kind + ":list"
}

func (r *cachedRepository[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	key := r.idKey(id)
	e := new(E)
	if r.load(ctx, key, e) {
		return e, nil
	}

	epoch := r.currentEpoch()
	found, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, epoch, key, found)
	return found, nil
}

func (r *cachedRepository[E]) FindBySlug(ctx context.Context, slug string) (*E, error) {
	key := r.slugKey(slug)
	e := new(E)
	if r.load(ctx, key, e) {
		return e, nil
	}

	epoch := r.currentEpoch()
	found, err := r.next.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	r.store(ctx, epoch, key, found)
	return found, nil
}

// FindByNameContains is not cached; fragments are unbounded.
func (r *cachedRepository[E]) FindByNameContains(ctx context.Context, fragment string) ([]*E, error) {
	return r.next.FindByNameContains(ctx, fragment)
}

func (r *cachedRepository[E]) FindAll(ctx context.Context) ([]*E, error) {
	var list []*E
	if r.load(ctx, r.listKey(), &list) {
		return list, nil
	}

	epoch := r.currentEpoch()
	list, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, epoch, r.listKey(), list)
	return list, nil
}

func (r *cachedRepository[E]) Insert(ctx context.Context, e *E) error {
	if err := r.next.Insert(ctx, e); err != nil {
		return err
	}
	// A slug lookup may have cached nothing, but the list is stale.
	r.invalidate(ctx, r.listKey(), r.slugKey(r.schema.Base(e).Slug))
	return nil
}

func (r *cachedRepository[E]) Update(ctx context.Context, e *E) error {
	b := r.schema.Base(e)
	keys := []string{r.listKey(), r.idKey(b.ID), r.slugKey(b.Slug)}
	if previous, err := r.next.FindByID(ctx, b.ID); err == nil {
		keys = append(keys, r.slugKey(r.schema.Base(previous).Slug))
	}

	if err := r.next.Update(ctx, e); err != nil {
		return err
	}
	r.invalidate(ctx, keys...)
	return nil
}

func (r *cachedRepository[E]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	keys := []string{r.listKey(), r.idKey(id)}
	if previous, err := r.next.FindByID(ctx, id); err == nil {
		keys = append(keys, r.slugKey(r.schema.Base(previous).Slug))
	}

	n, err := r.next.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.invalidate(ctx, keys...)
	}
	return n, nil
}

func (r *cachedRepository[E]) currentEpoch() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.epoch
}

func (r *cachedRepository[E]) load(ctx context.Context, key string, dest any) bool {
	if r.bypass(ctx, key) {
		return false
	}
	found, err := r.cache.Get(ctx, key, dest)
	if err != nil {
		logger.Debug("cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return found
}

// bypass reports whether key may hold a stale entry. It retries the failed
// delete first, so a healed key is served from cache again afterwards.
func (r *cachedRepository[E]) bypass(ctx context.Context, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dirty[key]; !ok {
		return false
	}
	if err := r.cache.Delete(ctx, key); err == nil {
		delete(r.dirty, key)
	}
	return true
}

// store runs under mu so it cannot interleave with invalidate: either the
// write bumped epoch first and the stale value is dropped, or the value lands
// first and the write deletes it.
func (r *cachedRepository[E]) store(ctx context.Context, epoch uint64, key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		return
	}
	if _, ok := r.dirty[key]; ok {
		return
	}
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		logger.Debug("cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (r *cachedRepository[E]) invalidate(ctx context.Context, keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	if err := r.cache.Delete(ctx, keys...); err != nil {
		for _, k := range keys {
			r.dirty[k] = struct{}{}
		}
		logger.Warn(fmt.Sprintf("cache invalidation failed for %s", r.schema.Kind), map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}
