// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	PhoneID  uint   `json:"phone_id" validate:"required"`
	UserName string `json:"user_name" validate:"required,max=255"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required"`
}

// UpdateReviewRequest is partial: only provided fields change, and only the
// original author (exact user_name match) may apply it.
type UpdateReviewRequest struct {
	UserName string  `json:"-" validate:"required"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Comment  *string `json:"comment,omitempty"`
}

type ReviewFilter struct {
	PhoneID *uint
	Rating  *int
}

// ReviewWithPhone is a review row joined with the phone's display name.
type ReviewWithPhone struct {
	models.Review
	PhoneName string `json:"phone_name"`
}

type ReviewStats struct {
	TotalReviews       int64         `json:"total_reviews"`
	AverageRating      float64       `json:"average_rating"`
	RatingDistribution map[int]int64 `json:"rating_distribution"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.db.First(&models.Phone{}, req.PhoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("phone %d: %w", req.PhoneID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load phone: %w", err)
	}

	review := &models.Review{
		PhoneID:  req.PhoneID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListReviews returns reviews joined with phone names, most recent first.
func (s *ReviewService) ListReviews(filter ReviewFilter, params utils.PageParams) ([]ReviewWithPhone, error) {
	query := s.db.Model(&models.Review{}).
		Select("reviews.*, phones.brand || ' ' || phones.model AS phone_name").
		Joins("JOIN phones ON phones.id = reviews.phone_id").
		Order("reviews.created_at DESC")

	if filter.PhoneID != nil {
		query = query.Where("reviews.phone_id = ?", *filter.PhoneID)
	}
	if filter.Rating != nil {
		query = query.Where("reviews.rating = ?", *filter.Rating)
	}

	var reviews []ReviewWithPhone
	if err := utils.ApplyPage(query, params).Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return &review, nil
}

// UpdateReview edits rating/comment when the caller's user_name matches the
// stored author exactly. A mismatch is Forbidden, never NotFound.
func (s *ReviewService) UpdateReview(id uint, req *UpdateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	review, err := s.GetReview(id)
	if err != nil {
		return nil, err
	}

	if review.UserName != req.UserName {
		return nil, fmt.Errorf("you can only edit your own reviews: %w", ErrForbidden)
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.db.Save(review).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

// IncrementHelpful bumps the helpful counter by one, atomically and
// regardless of who asks.
func (s *ReviewService) IncrementHelpful(id uint) (*models.Review, error) {
	review, err := s.GetReview(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Model(review).
		Update("helpful", gorm.Expr("helpful + 1")).Error
	if err != nil {
		return nil, fmt.Errorf("failed to increment helpful count: %w", err)
	}

	return s.GetReview(id)
}

func (s *ReviewService) DeleteReview(id uint) error {
	review, err := s.GetReview(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// GetStats reports the total count, the mean rating rounded to two decimals
// (0 when empty), and the full 1..5 distribution with zero buckets included.
func (s *ReviewService) GetStats() (*ReviewStats, error) {
	var total int64
	if err := s.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	stats := &ReviewStats{
		TotalReviews:       total,
		RatingDistribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	if total > 0 {
		var avg float64
		err := s.db.Model(&models.Review{}).
			Select("AVG(rating)").
			Scan(&avg).Error
		if err != nil {
			return nil, fmt.Errorf("failed to average ratings: %w", err)
		}
		stats.AverageRating = math.Round(avg*100) / 100
	}

	var buckets []struct {
		Rating int
		Count  int64
	}
	err := s.db.Model(&models.Review{}).
		Select("rating, COUNT(id) AS count").
		Group("rating").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating distribution: %w", err)
	}
	for _, bucket := range buckets {
		stats.RatingDistribution[bucket.Rating] = bucket.Count
	}

	return stats, nil
}
