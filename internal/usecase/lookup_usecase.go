package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/dictcli/internal/entity"
	"github.com/eslsoft/dictcli/internal/repository"
)

// LookupUsecase defines business logic for dictionary lookups.
type LookupUsecase interface {
	Lookup(ctx context.Context, word string) ([]entity.Entry, error)
}

type lookupUsecase struct {
	repo repository.DictionaryRepository
}

func NewLookupUsecase(repo repository.DictionaryRepository) LookupUsecase {
	return &lookupUsecase{repo: repo}
}

func (u *lookupUsecase) Lookup(ctx context.Context, word string) ([]entity.Entry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, entity.ErrEmptyWord
	}
	return u.repo.Lookup(ctx, word)
}
