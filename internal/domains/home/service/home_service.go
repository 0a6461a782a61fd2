package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
)

type ServiceInterface interface {
	Create(ctx context.Context, paragraphs []string) (*content.Confirmation, error)
	GetAll(ctx context.Context) ([]home.HomeText, error)
	GetParagraphs(ctx context.Context, id int64) ([]string, error)
	Update(ctx context.Context, id int64, paragraphs []string) (*content.Confirmation, error)
	Delete(ctx context.Context, id int64) (*content.Confirmation, error)
}

type homeService struct {
	repo home.Repository
}

func NewHomeService(repo home.Repository) ServiceInterface {
	return &homeService{repo: repo}
}

func (s *homeService) Create(ctx context.Context, paragraphs []string) (*content.Confirmation, error) {
	h := &home.HomeText{Paragrafos: paragraphs}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, apperr.Internal("Erro ao tentar criar o Texto Home no Banco de Dados.", err)
	}
	return &content.Confirmation{ID: h.ID, Message: fmt.Sprintf("Texto Home ID %d criado com sucesso.", h.ID)}, nil
}

func (s *homeService) GetAll(ctx context.Context) ([]home.HomeText, error) {
	texts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Erro ao tentar acessar os Textos Home no Banco de Dados.", err)
	}
	return texts, nil
}

// GetParagraphs returns only the paragraph list of the text.
func (s *homeService) GetParagraphs(ctx context.Context, id int64) ([]string, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, home.ErrHomeTextNotFound) {
			return nil, apperr.NotFound(id, fmt.Sprintf("Texto Home ID %d não encontrado!", id))
		}
		return nil, apperr.Internal(fmt.Sprintf("Erro ao buscar o Texto Home ID %d no Banco de Dados.", id), err)
	}
	return h.Paragrafos, nil
}

func (s *homeService) Update(ctx context.Context, id int64, paragraphs []string) (*content.Confirmation, error) {
	if err := s.repo.UpdateParagraphs(ctx, id, paragraphs); err != nil {
		if errors.Is(err, home.ErrHomeTextNotFound) {
			return nil, apperr.NotFound(id, fmt.Sprintf("Texto Home ID %d não encontrado para atualizar!", id))
		}
		return nil, apperr.Internal(fmt.Sprintf("Erro ao tentar atualizar o Texto Home ID %d no Banco de Dados.", id), err)
	}
	return &content.Confirmation{ID: id, Message: fmt.Sprintf("Texto Home ID %d atualizado com sucesso.", id)}, nil
}

func (s *homeService) Delete(ctx context.Context, id int64) (*content.Confirmation, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("Erro ao tentar remover o Texto Home ID %d no Banco de Dados.", id), err)
	}
	if n == 0 {
		return nil, apperr.NotFound(id, fmt.Sprintf("Texto Home ID %d não encontrado ou já removido!", id))
	}
	return &content.Confirmation{ID: id, Message: fmt.Sprintf("Texto Home ID %d removido com sucesso.", id)}, nil
}
