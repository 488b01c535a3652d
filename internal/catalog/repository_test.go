package catalog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGetProduct_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category"}).
			AddRow(int64(1), "Kayak", "A boat for one person", "275.00", "Watersports"))

	p, err := repo.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Kayak", p.Name)
	require.Equal(t, "275", p.Price.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE category").
		WithArgs("Chess").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category"}).
			AddRow(int64(6), "Thinking Cap", "Improve brain efficiency by 75%", "16.00", "Chess").
			AddRow(int64(8), "Human Chess Board", "A fun game for the family", "75.00", "Chess"))

	products, err := repo.ListByCategory(context.Background(), "Chess")
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "Thinking Cap", products[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
