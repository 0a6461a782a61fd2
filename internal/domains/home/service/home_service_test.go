package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
)

type memoryRepo struct {
	rows   map[int64]home.HomeText
	nextID int64
	err    error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[int64]home.HomeText{}, nextID: 1}
}

func (r *memoryRepo) Create(_ context.Context, h *home.HomeText) error {
	if r.err != nil {
		return r.err
	}
	h.ID = r.nextID
	r.nextID++
	r.rows[h.ID] = *h
	return nil
}

func (r *memoryRepo) GetAll(context.Context) ([]home.HomeText, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []home.HomeText{}
	for id := int64(1); id < r.nextID; id++ {
		if h, ok := r.rows[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*home.HomeText, error) {
	if r.err != nil {
		return nil, r.err
	}
	h, ok := r.rows[id]
	if !ok {
		return nil, home.ErrHomeTextNotFound
	}
	return &h, nil
}

func (r *memoryRepo) UpdateParagraphs(_ context.Context, id int64, paragraphs []string) error {
	if r.err != nil {
		return r.err
	}
	h, ok := r.rows[id]
	if !ok {
		return home.ErrHomeTextNotFound
	}
	h.Paragrafos = paragraphs
	r.rows[id] = h
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func TestHomeService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewHomeService(newMemoryRepo())

	conf, err := svc.Create(ctx, []string{"Bem-vindo", "Somos o IFD"})
	require.NoError(t, err)
	assert.Equal(t, "Texto Home ID 1 criado com sucesso.", conf.Message)

	paragraphs, err := svc.GetParagraphs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bem-vindo", "Somos o IFD"}, paragraphs)

	_, err = svc.Update(ctx, 1, []string{"Atualizado"})
	require.NoError(t, err)
	paragraphs, err = svc.GetParagraphs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Atualizado"}, paragraphs)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Delete(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Delete(ctx, 1)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHomeService_MissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewHomeService(newMemoryRepo())

	_, err := svc.GetParagraphs(ctx, 7)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Update(ctx, 7, []string{"x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHomeService_StorageFailureIsInternal(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("db down")
	svc := NewHomeService(repo)

	_, err := svc.Create(context.Background(), []string{"x"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.ErrorIs(t, err, repo.err)
}
