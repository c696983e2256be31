package repository

import (
	"context"

	"github.com/eslsoft/dictcli/internal/entity"
)

// DictionaryRepository defines read access to an upstream dictionary.
// Lookup returns every entry known for the word (one per homograph), or
// entity.ErrWordNotFound when the dictionary has none.
type DictionaryRepository interface {
	Lookup(ctx context.Context, word string) ([]entity.Entry, error)
}
