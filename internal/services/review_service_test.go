// internal/services/review_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricera/pricera-backend/internal/utils"
)

func TestCreateReviewRequiresPhone(t *testing.T) {
	svc := NewReviewService(newTestDB(t))

	_, err := svc.CreateReview(&CreateReviewRequest{
		PhoneID:  999,
		UserName: "kasun",
		Rating:   5,
		Comment:  "great phone",
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewReviewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{
		PhoneID:  phone.ID,
		UserName: "kasun",
		Rating:   6,
		Comment:  "too good",
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateReviewOwnershipRule(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewReviewService(db)

	review, err := svc.CreateReview(&CreateReviewRequest{
		PhoneID:  phone.ID,
		UserName: "kasun",
		Rating:   4,
		Comment:  "solid",
	})
	require.NoError(t, err)

	_, err = svc.UpdateReview(review.ID, &UpdateReviewRequest{UserName: "someone_else"})
	assert.True(t, errors.Is(err, ErrForbidden))

	newRating := 5
	updated, err := svc.UpdateReview(review.ID, &UpdateReviewRequest{
		UserName: "kasun",
		Rating:   &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "solid", updated.Comment, "omitted fields stay untouched")
}

func TestIncrementHelpful(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Google", "Pixel 10")
	svc := NewReviewService(db)

	review, err := svc.CreateReview(&CreateReviewRequest{
		PhoneID:  phone.ID,
		UserName: "amaya",
		Rating:   5,
		Comment:  "camera is unreal",
	})
	require.NoError(t, err)
	assert.Zero(t, review.Helpful)

	bumped, err := svc.IncrementHelpful(review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bumped.Helpful)

	bumped, err = svc.IncrementHelpful(review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), bumped.Helpful)
}

func TestIncrementHelpfulUnknownReview(t *testing.T) {
	svc := NewReviewService(newTestDB(t))
	_, err := svc.IncrementHelpful(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListReviewsJoinsPhoneName(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewReviewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{
		PhoneID:  phone.ID,
		UserName: "kasun",
		Rating:   4,
		Comment:  "solid",
	})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(ReviewFilter{}, utils.PageParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Samsung Galaxy S25", reviews[0].PhoneName)
}

func TestListReviewsFiltersByRating(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewReviewService(db)

	for _, rating := range []int{5, 3, 5} {
		_, err := svc.CreateReview(&CreateReviewRequest{
			PhoneID:  phone.ID,
			UserName: "kasun",
			Rating:   rating,
			Comment:  "x",
		})
		require.NoError(t, err)
	}

	five := 5
	reviews, err := svc.ListReviews(ReviewFilter{Rating: &five}, utils.PageParams{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestGetStatsEmpty(t *testing.T) {
	svc := NewReviewService(newTestDB(t))

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
	assert.Equal(t, map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.RatingDistribution)
}

func TestGetStatsDistribution(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewReviewService(db)

	for _, rating := range []int{5, 5, 4} {
		_, err := svc.CreateReview(&CreateReviewRequest{
			PhoneID:  phone.ID,
			UserName: "kasun",
			Rating:   rating,
			Comment:  "x",
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalReviews)
	assert.InDelta(t, 4.67, stats.AverageRating, 0.001)
	assert.Equal(t, map[int]int64{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, stats.RatingDistribution)
}
