package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/database"
)

// fakeAuthorRepo keeps authors in a map and records mutations, so service
// behavior can be tested without a database.
type fakeAuthorRepo struct {
	authors map[int64]author.Author
	nextID  int64

	insertErr error
	updateErr error
	queryErr  error
}

func newFakeAuthorRepo(authors ...author.Author) *fakeAuthorRepo {
	repo := &fakeAuthorRepo{authors: make(map[int64]author.Author), nextID: 1}
	for _, a := range authors {
		repo.authors[a.ID] = a
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
	}
	return repo
}

func (f *fakeAuthorRepo) Insert(_ context.Context, _ database.Querier, a *author.Author) (*author.Author, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	created := *a
	created.ID = f.nextID
	f.nextID++
	f.authors[created.ID] = created
	return &created, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, _ database.Querier, id int64) (*author.Author, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) GetByIDs(_ context.Context, _ database.Querier, ids []int64) ([]author.Author, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var found []author.Author
	for _, id := range ids {
		if a, ok := f.authors[id]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (f *fakeAuthorRepo) GetAll(_ context.Context, _ database.Querier) ([]author.Author, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var all []author.Author
	for _, a := range f.authors {
		all = append(all, a)
	}
	return all, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, _ database.Querier, a *author.Author) (*author.Author, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	return a, nil
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(author.DateLayout, value)
	require.NoError(t, err)
	return d
}

func TestAuthorService_Create(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, nil)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:      "Haruki Murakami",
		BirthDate: "1949-01-12",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Haruki Murakami", created.Name)
	assert.Equal(t, mustDate(t, "1949-01-12"), created.BirthDate)
}

func TestAuthorService_Create_RepositoryError(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.insertErr = errors.New("connection refused")
	svc := NewAuthorService(repo, nil)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:      "Haruki Murakami",
		BirthDate: "1949-01-12",
	})

	assert.Error(t, err)
}

func TestAuthorService_GetByID_NotFound(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo(), nil)

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_Update(t *testing.T) {
	repo := newFakeAuthorRepo(author.Author{
		ID:        7,
		Name:      "Old Name",
		BirthDate: mustDate(t, "1970-01-01"),
	})
	svc := NewAuthorService(repo, nil)

	updated, err := svc.Update(context.Background(), 7, &author.UpdateAuthorRequest{
		Name:      "New Name",
		BirthDate: "1971-02-03",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, mustDate(t, "1971-02-03"), updated.BirthDate)
	assert.Equal(t, "New Name", repo.authors[7].Name)
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo(), nil)

	_, err := svc.Update(context.Background(), 99, &author.UpdateAuthorRequest{
		Name:      "Nobody",
		BirthDate: "1980-01-01",
	})

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_ResolveAll(t *testing.T) {
	repo := newFakeAuthorRepo(
		author.Author{ID: 1, Name: "First"},
		author.Author{ID: 2, Name: "Second"},
		author.Author{ID: 3, Name: "Third"},
	)
	svc := NewAuthorService(repo, nil)

	resolved, err := svc.ResolveAll(context.Background(), []int64{2, 1, 3})

	require.NoError(t, err)
	assert.Len(t, resolved, 3)
}

func TestAuthorService_ResolveAll_DuplicatesCollapse(t *testing.T) {
	repo := newFakeAuthorRepo(author.Author{ID: 1, Name: "Only"})
	svc := NewAuthorService(repo, nil)

	resolved, err := svc.ResolveAll(context.Background(), []int64{1, 1, 1})

	require.NoError(t, err)
	assert.Len(t, resolved, 1)
}

func TestAuthorService_ResolveAll_ReportsAllMissingIDs(t *testing.T) {
	repo := newFakeAuthorRepo(author.Author{ID: 2, Name: "Known"})
	svc := NewAuthorService(repo, nil)

	_, err := svc.ResolveAll(context.Background(), []int64{9, 2, 5, 9})

	var unknown *author.UnknownAuthorsError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []int64{5, 9}, unknown.IDs)
}
