package services

import (
	"testing"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	seller := createTestUser(t, db, "seller")
	user := createTestUser(t, db, "reviewer")
	sneaker := createTestSneaker(t, db, seller, 1, 100)

	review, err := service.CreateReview(user.Username, ReviewInput{
		SneakerID: sneaker.ID,
		Rating:    5,
		Comment:   "Great condition",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "reviewer", review.User.Username)

	// Second review for the same pair is rejected and leaves exactly one row
	_, err = service.CreateReview(user.Username, ReviewInput{SneakerID: sneaker.ID, Rating: 1})
	require.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).
		Where("sneaker_id = ? AND user_id = ?", sneaker.ID, user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = service.CreateReview("ghost", ReviewInput{SneakerID: sneaker.ID})
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = service.CreateReview(user.Username, ReviewInput{SneakerID: 9999})
	require.ErrorIs(t, err, apperrors.ErrSneakerNotFound)
}

func TestReviewService_GetReviewsBySneaker(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	seller := createTestUser(t, db, "seller")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	sneaker := createTestSneaker(t, db, seller, 1, 100)

	_, err := service.CreateReview(alice.Username, ReviewInput{SneakerID: sneaker.ID, Rating: 5, Comment: "Love it"})
	require.NoError(t, err)
	_, err = service.CreateReview(bob.Username, ReviewInput{SneakerID: sneaker.ID, Rating: 3, Comment: "Runs small"})
	require.NoError(t, err)

	views, err := service.GetReviewsBySneaker(sneaker.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	authors := []string{views[0].Username, views[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, authors)

	_, err = service.GetReviewsBySneaker(9999)
	require.ErrorIs(t, err, apperrors.ErrSneakerNotFound)
}

func TestReviewService_GetMyReviews(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	seller := createTestUser(t, db, "seller")
	user := createTestUser(t, db, "reviewer")
	first := createTestSneaker(t, db, seller, 1, 100)
	second := createTestSneaker(t, db, seller, 1, 150)

	_, err := service.CreateReview(user.Username, ReviewInput{SneakerID: first.ID, Rating: 4})
	require.NoError(t, err)
	_, err = service.CreateReview(user.Username, ReviewInput{SneakerID: second.ID, Rating: 5})
	require.NoError(t, err)

	reviews, err := service.GetMyReviews(user.Username)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.Equal(t, user.ID, r.UserID)
		assert.NotEmpty(t, r.Sneaker.Name)
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	seller := createTestUser(t, db, "seller")
	author := createTestUser(t, db, "author")
	intruder := createTestUser(t, db, "intruder")
	sneaker := createTestSneaker(t, db, seller, 1, 100)

	review, err := service.CreateReview(author.Username, ReviewInput{SneakerID: sneaker.ID, Rating: 5})
	require.NoError(t, err)

	// Only the author may delete
	err = service.DeleteReview(review.ID, intruder.Username)
	require.ErrorIs(t, err, apperrors.ErrNotOwner)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, service.DeleteReview(review.ID, author.Username))

	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	err = service.DeleteReview(review.ID, author.Username)
	require.ErrorIs(t, err, apperrors.ErrReviewNotFound)
}
