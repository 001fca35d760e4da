package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review описывает отзыв пользователя о товаре.
// На пару (товар, пользователь) допускается не более одного отзыва.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int32 // от 1 до 5
	Comment   string
	CreatedAt time.Time
}

func NewReview(productID, userID int64, rating int32, comment string) *Review {
	return &Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
}
