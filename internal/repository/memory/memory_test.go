package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

func TestPatientCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	p := &model.Patient{FirstName: "Amine", LastName: "Berrada", CIN: "AB123456"}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, int64(1), p.ID)

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amine", got.FirstName)
	assert.Equal(t, "AB123456", got.CIN)

	got.Phone = "0600000000"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "0600000000", updated.Phone)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	a := &model.Patient{FirstName: "A", LastName: "A", CIN: "A1"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	b := &model.Patient{FirstName: "B", LastName: "B", CIN: "B1"}
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, a.ID+1, b.ID)
}

func TestNotFoundOnMissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(ctx, &model.Patient{ID: 42})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListIsOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &model.Patient{FirstName: name, LastName: "x", CIN: name}))
	}

	patients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "first", patients[0].FirstName)
	assert.Equal(t, "second", patients[1].FirstName)
	assert.Equal(t, "third", patients[2].FirstName)
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &model.Patient{FirstName: "p", LastName: "p", CIN: "c"}
			if err := repo.Create(ctx, p); err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestStoredRowsAreNotAliased(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	p := &model.Patient{FirstName: "Nadia", LastName: "El Fassi", CIN: "NE1"}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	got.FirstName = "mutated"

	again, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nadia", again.FirstName)
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(model.Settings{Currency: "EUR", CurrencySymbol: "€"})

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", s.Currency)

	s.Currency = "MAD"
	s.CurrencySymbol = "DH"
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "MAD", got.Currency)
	assert.Equal(t, "DH", got.CurrencySymbol)
}
