package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

type widget struct {
	content.Base
	Name string
	Note string
}

var widgetSchema = content.Schema[widget]{
	Kind:       "widget",
	Label:      "Campanha",
	Plural:     "Campanhas",
	Gender:     content.Feminine,
	Table:      "widgets",
	NameColumn: "name",
	Columns:    []string{"name", "note"},
	Fields:     func(w *widget) []any { return []any{&w.Name, &w.Note} },
	Base:       func(w *widget) *content.Base { return &w.Base },
	Name:       func(w *widget) string { return w.Name },
}

type widgetPatch struct {
	name *string
	note *string
}

func (p widgetPatch) Name() (string, bool) {
	if p.name == nil {
		return "", false
	}
	return *p.name, true
}

func (p widgetPatch) Apply(w *widget) {
	if p.name != nil {
		w.Name = *p.name
	}
	if p.note != nil {
		w.Note = *p.note
	}
}

func strPtr(s string) *string { return &s }

// memoryRepo enforces slug uniqueness the way the database constraint does.
type memoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]widget
	nextID int64

	beforeInsert func()
	findErr      error
	insertErr    error
	updateErr    error
	deleteErr    error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[int64]widget{}, nextID: 1}
}

func (r *memoryRepo) FindByID(_ context.Context, id int64) (*widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	w, ok := r.rows[id]
	if !ok {
		return nil, content.ErrRecordNotFound
	}
	return &w, nil
}

func (r *memoryRepo) FindBySlug(_ context.Context, slug string) (*widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, w := range r.rows {
		if w.Slug == slug {
			found := w
			return &found, nil
		}
	}
	return nil, content.ErrRecordNotFound
}

func (r *memoryRepo) FindByNameContains(_ context.Context, fragment string) ([]*widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*widget{}
	for id := int64(1); id < r.nextID; id++ {
		if w, ok := r.rows[id]; ok && strings.Contains(strings.ToLower(w.Name), strings.ToLower(fragment)) {
			found := w
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *memoryRepo) FindAll(_ context.Context) ([]*widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*widget{}
	for id := int64(1); id < r.nextID; id++ {
		if w, ok := r.rows[id]; ok {
			found := w
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *memoryRepo) Insert(ctx context.Context, w *widget) error {
	if r.beforeInsert != nil {
		hook := r.beforeInsert
		r.beforeInsert = nil
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, existing := range r.rows {
		if existing.Slug == w.Slug {
			return content.ErrDuplicateSlug
		}
	}
	w.ID = r.nextID
	r.nextID++
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	r.rows[w.ID] = *w
	return nil
}

func (r *memoryRepo) Update(_ context.Context, w *widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.rows[w.ID]; !ok {
		return content.ErrRecordNotFound
	}
	for id, existing := range r.rows {
		if id != w.ID && existing.Slug == w.Slug {
			return content.ErrDuplicateSlug
		}
	}
	w.UpdatedAt = time.Now()
	r.rows[w.ID] = *w
	return nil
}

func (r *memoryRepo) DeleteByID(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func newTestLifecycle() (*Lifecycle[widget], *memoryRepo) {
	repo := newMemoryRepo()
	return NewLifecycle(widgetSchema, repo, utils.GenerateSlug), repo
}

func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind, appErr.Message)
	return appErr
}

func TestCreate_AssignsSlugAndConfirms(t *testing.T) {
	svc, repo := newTestLifecycle()

	conf, err := svc.Create(context.Background(), &widget{Name: "Tech For All"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), conf.ID)
	assert.Equal(t, "tech-for-all", conf.Slug)
	assert.Equal(t, "Campanha ID 1, SLUG 'tech-for-all' criada com sucesso.", conf.Message)
	assert.Len(t, repo.rows, 1)
}

func TestCreate_EquivalentNameConflicts(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()

	_, err := svc.Create(ctx, &widget{Name: "Tech For All"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &widget{Name: "Tech, For All!"})
	appErr := requireKind(t, err, apperr.KindConflict)
	assert.Equal(t, int64(1), appErr.ID)
	assert.Equal(t, "tech-for-all", appErr.Slug)
	assert.Contains(t, appErr.Message, "Tech For All")
	assert.Len(t, repo.rows, 1, "a conflicting create writes nothing")
}

func TestCreate_LostRaceIsConflict(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()

	// Another writer inserts the same slug between the check and the insert.
	repo.beforeInsert = func() {
		require.NoError(t, repo.Insert(ctx, &widget{Base: content.Base{Slug: "tech-for-all"}, Name: "Tech for all"}))
	}

	_, err := svc.Create(ctx, &widget{Name: "Tech For All"})
	appErr := requireKind(t, err, apperr.KindConflict)
	assert.Equal(t, int64(1), appErr.ID)
	assert.Len(t, repo.rows, 1)
}

func TestCreate_StorageFailureIsInternal(t *testing.T) {
	svc, repo := newTestLifecycle()
	repo.insertErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), &widget{Name: "Projeto Alfa"})
	appErr := requireKind(t, err, apperr.KindInternal)
	assert.ErrorIs(t, appErr, repo.insertErr)
	assert.Empty(t, repo.rows)
}

func TestCreate_LookupFailureIsInternal(t *testing.T) {
	svc, repo := newTestLifecycle()
	repo.findErr = errors.New("timeout")

	_, err := svc.Create(context.Background(), &widget{Name: "Projeto Alfa"})
	requireKind(t, err, apperr.KindInternal)
	assert.Empty(t, repo.rows)
}

func TestUpdate_RenameMovesSlug(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()

	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	conf, err := svc.Update(ctx, 1, widgetPatch{name: strPtr("Projeto Beta")})
	require.NoError(t, err)
	assert.Equal(t, "Campanha ID 1 atualizada com sucesso.", conf.Message)

	got, err := svc.GetBySlug(ctx, "projeto-beta")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Projeto Beta", got.Name)

	_, err = svc.GetBySlug(ctx, "projeto-alfa")
	requireKind(t, err, apperr.KindNotFound)
}

func TestUpdate_SelfRenameDoesNotConflict(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()

	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, widgetPatch{name: strPtr("PROJETO ALFA!")})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "projeto-alfa", got.Slug)
	assert.Equal(t, "PROJETO ALFA!", got.Name)
}

func TestUpdate_RenameOntoOtherSlugConflicts(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()

	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &widget{Name: "Projeto Beta", Note: "keep"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 2, widgetPatch{name: strPtr("projeto alfa"), note: strPtr("changed")})
	appErr := requireKind(t, err, apperr.KindConflict)
	assert.Equal(t, int64(1), appErr.ID)
	assert.Equal(t, "projeto-alfa", appErr.Slug)

	assert.Equal(t, "keep", repo.rows[2].Note, "nothing is written on conflict")
	assert.Equal(t, "projeto-beta", repo.rows[2].Slug)
}

func TestUpdate_WithoutNameKeepsSlug(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()

	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, widgetPatch{note: strPtr("nova nota")})
	require.NoError(t, err)
	assert.Equal(t, "projeto-alfa", repo.rows[1].Slug)
	assert.Equal(t, "nova nota", repo.rows[1].Note)
}

func TestUpdate_MissingIsNotFound(t *testing.T) {
	svc, _ := newTestLifecycle()

	_, err := svc.Update(context.Background(), 99, widgetPatch{note: strPtr("x")})
	appErr := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, int64(99), appErr.ID)
}

func TestUpdate_StorageFailureIsInternal(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	repo.updateErr = errors.New("disk full")
	_, err = svc.Update(ctx, 1, widgetPatch{note: strPtr("x")})
	requireKind(t, err, apperr.KindInternal)
}

func TestUpdate_DuplicateFromStorageIsConflict(t *testing.T) {
	svc, repo := newTestLifecycle()
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	repo.updateErr = content.ErrDuplicateSlug
	_, err = svc.Update(ctx, 1, widgetPatch{name: strPtr("Projeto Gama")})
	appErr := requireKind(t, err, apperr.KindConflict)
	assert.Equal(t, "projeto-gama", appErr.Slug)
}

func TestRoundTrip_CreateThenReadBack(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()

	conf, err := svc.Create(ctx, &widget{Name: "Doações de Natal", Note: "dezembro"})
	require.NoError(t, err)

	byID, err := svc.GetByID(ctx, conf.ID)
	require.NoError(t, err)
	bySlug, err := svc.GetBySlug(ctx, conf.Slug)
	require.NoError(t, err)

	assert.Equal(t, "doacoes-de-natal", byID.Slug)
	assert.Equal(t, byID.ID, bySlug.ID)
	assert.Equal(t, "dezembro", bySlug.Note)
}

func TestGetByID_MissingIsNotFound(t *testing.T) {
	svc, _ := newTestLifecycle()

	_, err := svc.GetByID(context.Background(), 5)
	appErr := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Campanha com ID 5 não encontrada.", appErr.Message)
}

func TestSearch(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()
	for _, name := range []string{"Tech For All", "Projeto Alfa", "Tech Kids"} {
		_, err := svc.Create(ctx, &widget{Name: name})
		require.NoError(t, err)
	}

	matches, err := svc.Search(ctx, "tech")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Tech For All", matches[0].Name)
	assert.Equal(t, "Tech Kids", matches[1].Name)

	_, err = svc.Search(ctx, "xyz123nomatch")
	requireKind(t, err, apperr.KindNotFound)
}

func TestList_EmptyIsSuccess(t *testing.T) {
	svc, _ := newTestLifecycle()

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)

	conf, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Campanha ID 1 removida com sucesso.", conf.Message)

	_, err = svc.Delete(ctx, 1)
	requireKind(t, err, apperr.KindNotFound)

	_, err = svc.GetByID(ctx, 1)
	requireKind(t, err, apperr.KindNotFound)
}

func TestDelete_StorageFailureIsInternal(t *testing.T) {
	svc, repo := newTestLifecycle()
	repo.deleteErr = errors.New("lock timeout")

	_, err := svc.Delete(context.Background(), 1)
	requireKind(t, err, apperr.KindInternal)
}

func TestIDsAreNotReused(t *testing.T) {
	svc, _ := newTestLifecycle()
	ctx := context.Background()

	first, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, first.ID)
	require.NoError(t, err)

	second, err := svc.Create(ctx, &widget{Name: "Projeto Alfa"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestMasculineMessages(t *testing.T) {
	schema := widgetSchema
	schema.Label, schema.Plural, schema.Gender = "Parceiro", "Parceiros", content.Masculine
	svc := NewLifecycle(schema, newMemoryRepo(), utils.GenerateSlug)
	ctx := context.Background()

	conf, err := svc.Create(ctx, &widget{Name: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "Parceiro ID 1, SLUG 'acme' criado com sucesso.", conf.Message)

	_, err = svc.Search(ctx, "xyz123nomatch")
	appErr := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Nenhum parceiro encontrado com nome semelhante a 'xyz123nomatch'.", appErr.Message)
}
