package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

// Patch is a partial update. Name reports the new display name when the
// patch renames the entity; Apply copies the present fields onto e.
type Patch[E any] interface {
	Name() (string, bool)
	Apply(e *E)
}

// Service is the lifecycle of one slug-keyed entity type.
type Service[E any] interface {
	Create(ctx context.Context, candidate *E) (*content.Confirmation, error)
	Update(ctx context.Context, id int64, patch Patch[E]) (*content.Confirmation, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	GetBySlug(ctx context.Context, slug string) (*E, error)
	Search(ctx context.Context, fragment string) ([]*E, error)
	List(ctx context.Context) ([]*E, error)
	Delete(ctx context.Context, id int64) (*content.Confirmation, error)
}

// Lifecycle keeps each entity's slug unique within its type and in step
// with its latest saved name. Every error it returns is an *apperr.Error.
//
// Reads that decide a write (slug pre-checks, the update merge base) go to
// primary storage; only the Get/List paths may be served from a cache.
type Lifecycle[E any] struct {
	schema  content.Schema[E]
	repo    content.Repository[E]
	primary content.Repository[E]
	slug    utils.SlugFunc
}

var _ Service[struct{}] = (*Lifecycle[struct{}])(nil)

func NewLifecycle[E any](schema content.Schema[E], repo content.Repository[E], slug utils.SlugFunc) *Lifecycle[E] {
	return &Lifecycle[E]{schema: schema, repo: repo, primary: content.Primary(repo), slug: slug}
}

func (s *Lifecycle[E]) Create(ctx context.Context, candidate *E) (*content.Confirmation, error) {
	base := s.schema.Base(candidate)
	base.Slug = s.slug(s.schema.Name(candidate))

	existing, err := s.primary.FindBySlug(ctx, base.Slug)
	switch {
	case err == nil:
		return nil, s.createConflict(existing, base.Slug)
	case !errors.Is(err, content.ErrRecordNotFound):
		return nil, s.internal("criar", err)
	}

	if err := s.repo.Insert(ctx, candidate); err != nil {
		if errors.Is(err, content.ErrDuplicateSlug) {
			// Lost a race with a concurrent create; report whoever won.
			owner, _ := s.primary.FindBySlug(ctx, base.Slug)
			return nil, s.createConflict(owner, base.Slug)
		}
		return nil, s.internal("criar", err)
	}

	return &content.Confirmation{
		ID:      base.ID,
		Slug:    base.Slug,
		Message: fmt.Sprintf("%s ID %d, SLUG '%s' %s com sucesso.", s.schema.Label, base.ID, base.Slug, s.schema.Gender.Pick("criado", "criada")),
	}, nil
}

func (s *Lifecycle[E]) Update(ctx context.Context, id int64, patch Patch[E]) (*content.Confirmation, error) {
	current, err := s.primary.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrRecordNotFound) {
			return nil, apperr.NotFound(id, fmt.Sprintf("%s ID %d não %s para atualizar!", s.schema.Label, id, s.found()))
		}
		return nil, s.internal("atualizar", err)
	}

	slug := s.schema.Base(current).Slug
	if name, ok := patch.Name(); ok {
		slug = s.slug(name)
		owner, err := s.primary.FindBySlug(ctx, slug)
		switch {
		case err == nil:
			if ownerID := s.schema.Base(owner).ID; ownerID != id {
				return nil, s.updateConflict(ownerID, slug)
			}
		case !errors.Is(err, content.ErrRecordNotFound):
			return nil, s.internal("atualizar", err)
		}
	}

	patch.Apply(current)
	base := s.schema.Base(current)
	base.ID = id
	base.Slug = slug

	if err := s.repo.Update(ctx, current); err != nil {
		switch {
		case errors.Is(err, content.ErrRecordNotFound):
			return nil, apperr.NotFound(id, fmt.Sprintf("%s ID %d não %s para atualizar!", s.schema.Label, id, s.found()))
		case errors.Is(err, content.ErrDuplicateSlug):
			var ownerID int64
			if owner, lookupErr := s.primary.FindBySlug(ctx, slug); lookupErr == nil {
				ownerID = s.schema.Base(owner).ID
			}
			return nil, s.updateConflict(ownerID, slug)
		default:
			return nil, s.internal("atualizar", err)
		}
	}

	return &content.Confirmation{
		ID:      id,
		Message: fmt.Sprintf("%s ID %d %s com sucesso.", s.schema.Label, id, s.schema.Gender.Pick("atualizado", "atualizada")),
	}, nil
}

func (s *Lifecycle[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrRecordNotFound) {
			return nil, apperr.NotFound(id, fmt.Sprintf("%s com ID %d não %s.", s.schema.Label, id, s.found()))
		}
		return nil, apperr.Internal(fmt.Sprintf("Erro ao buscar %s com ID %d no Banco de Dados.", s.schema.Label, id), err)
	}
	return e, nil
}

func (s *Lifecycle[E]) GetBySlug(ctx context.Context, slug string) (*E, error) {
	slug = strings.TrimSpace(slug)
	e, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrRecordNotFound) {
			nf := apperr.NotFound(0, fmt.Sprintf("%s com slug '%s' não %s.", s.schema.Label, slug, s.found()))
			nf.Slug = slug
			return nil, nf
		}
		return nil, apperr.Internal(fmt.Sprintf("Erro ao buscar %s com slug '%s' no Banco de Dados.", s.schema.Label, slug), err)
	}
	return e, nil
}

// Search returns NotFound when nothing matches, unlike List.
func (s *Lifecycle[E]) Search(ctx context.Context, fragment string) ([]*E, error) {
	fragment = strings.TrimSpace(fragment)
	matches, err := s.repo.FindByNameContains(ctx, fragment)
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("Erro ao buscar %s com nome semelhante a '%s'.", s.schema.Plural, fragment), err)
	}
	if len(matches) == 0 {
		return nil, apperr.NotFound(0, fmt.Sprintf("%s %s %s com nome semelhante a '%s'.",
			s.schema.Gender.Pick("Nenhum", "Nenhuma"), strings.ToLower(s.schema.Label), s.found(), fragment))
	}
	return matches, nil
}

func (s *Lifecycle[E]) List(ctx context.Context) ([]*E, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("Erro ao tentar acessar %s %s no Banco de Dados.",
			s.schema.Gender.Pick("todos os", "todas as"), s.schema.Plural), err)
	}
	return all, nil
}

func (s *Lifecycle[E]) Delete(ctx context.Context, id int64) (*content.Confirmation, error) {
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, s.internal("remover", err)
	}
	if n == 0 {
		return nil, apperr.NotFound(id, fmt.Sprintf("%s ID %d não %s ou já %s!",
			s.schema.Label, id, s.found(), s.schema.Gender.Pick("removido", "removida")))
	}
	return &content.Confirmation{
		ID:      id,
		Message: fmt.Sprintf("%s ID %d %s com sucesso.", s.schema.Label, id, s.schema.Gender.Pick("removido", "removida")),
	}, nil
}

func (s *Lifecycle[E]) found() string {
	return s.schema.Gender.Pick("encontrado", "encontrada")
}

func (s *Lifecycle[E]) article() string {
	return s.schema.Gender.Pick("o", "a")
}

// createConflict names the owner when it is known; owner may be nil.
func (s *Lifecycle[E]) createConflict(owner *E, slug string) *apperr.Error {
	if owner == nil {
		return apperr.Conflict(0, slug, fmt.Sprintf("%s de slug '%s' já existe no Banco de Dados.", s.schema.Label, slug))
	}
	return apperr.Conflict(s.schema.Base(owner).ID, slug, fmt.Sprintf("%s de slug '%s', nome '%s', já existe no Banco de Dados.",
		s.schema.Label, slug, s.schema.Name(owner)))
}

func (s *Lifecycle[E]) updateConflict(ownerID int64, slug string) *apperr.Error {
	return apperr.Conflict(ownerID, slug, fmt.Sprintf("Já existe %s %s com o SLUG '%s' gerado a partir do novo nome.",
		s.schema.Gender.Pick("outro", "outra"), s.schema.Label, slug))
}

func (s *Lifecycle[E]) internal(verb string, err error) *apperr.Error {
	return apperr.Internal(fmt.Sprintf("Erro ao tentar %s %s %s no Banco de Dados.", verb, s.article(), s.schema.Label), err)
}
