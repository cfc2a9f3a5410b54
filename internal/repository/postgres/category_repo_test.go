package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

func TestCategoryRepo_List(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	repo := NewCategoryRepo(db)

	categories, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art", "Geography"}, entity.CategoryTypes(categories))
}

func TestCategoryRepo_GetByID(t *testing.T) {
	db := newTestDB(t)
	seedTrivia(t, db)
	repo := NewCategoryRepo(db)

	category, err := repo.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", category.Type)

	missing, err := repo.GetByID(1000)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
