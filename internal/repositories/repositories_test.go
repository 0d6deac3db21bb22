package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"weathermap/internal/models"
	"weathermap/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Comment{}, &models.Favorite{}, &models.Rating{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	repo := repositories.NewGORMUserRepository(db)
	user := &models.User{Email: email, Name: "Test User", Password: "hashed"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestUserRepository_EmailLookupIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	createUser(t, db, "someone@example.com")

	found, err := repo.GetByEmail("SomeOne@Example.COM")
	assert.NoError(t, err)
	assert.Equal(t, "someone@example.com", found.Email)

	_, err = repo.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFavoriteRepository_UniquePerOwnerAndCoordinates(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMFavoriteRepository(db)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	first := &models.Favorite{LocationName: "Paris", Coordinates: "48.85,2.35", UserID: owner.ID}
	assert.NoError(t, repo.Create(first))

	// The unique index rejects the exact same coordinates string
	dup := &models.Favorite{LocationName: "Paris again", Coordinates: "48.85,2.35", UserID: owner.ID}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrDuplicate)

	// Exactly one record survived
	favorites, err := repo.ListByUser(owner.ID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)

	// A different user may hold the same coordinates
	assert.NoError(t, repo.Create(&models.Favorite{
		LocationName: "Paris", Coordinates: "48.85,2.35", UserID: other.ID,
	}))

	// Deleting with the wrong owner fails and leaves the record intact
	assert.ErrorIs(t, repo.Delete(first.ID, other.ID), repositories.ErrNotFound)
	favorites, err = repo.ListByUser(owner.ID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)

	assert.NoError(t, repo.Delete(first.ID, owner.ID))
	favorites, err = repo.ListByUser(owner.ID)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestRatingRepository_UpsertKeepsOneRowPerOwner(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMRatingRepository(db)
	owner := createUser(t, db, "rater@example.com")

	first, err := repo.Upsert(&models.Rating{Value: 3, UserID: owner.ID})
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Value)

	// Second submission updates the same row in place
	second, err := repo.Upsert(&models.Rating{Value: 5, UserID: owner.ID})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Value)

	ratings, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Value)
}

func TestCommentRepository_ListNewestFirstWithAuthor(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMCommentRepository(db)
	author := createUser(t, db, "author@example.com")

	older := &models.Comment{CommentText: "older", MapLocation: "General", UserID: author.ID}
	assert.NoError(t, repo.Create(older))
	newer := &models.Comment{CommentText: "newer", MapLocation: "General", UserID: author.ID}
	assert.NoError(t, repo.Create(newer))

	// Create reloads the row with the author relation
	assert.Equal(t, "author@example.com", newer.User.Email)

	comments, err := repo.List(50)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].CommentText)
	assert.Equal(t, "Test User", comments[0].User.Name)

	// The limit bounds the page
	comments, err = repo.List(1)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}
