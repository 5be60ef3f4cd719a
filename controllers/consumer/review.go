package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// CreateReviewInput carries a rating for a service or facility
type CreateReviewInput struct {
	ResourceKind models.ResourceKind `json:"resource_kind"`
	ResourceID   uint                `json:"resource_id"`
	Rating       float64             `json:"rating"`
	Comment      string              `json:"comment"`
	IsAnonymous  bool                `json:"is_anonymous"`
}

// CreateReview saves a review and refreshes the listing's average rating.
// One review per user per listing.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in to leave a review",
		})
	}

	input := new(CreateReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.ResourceKind != models.KindService && input.ResourceKind != models.KindFacility {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown resource kind",
		})
	}

	review := models.Review{
		Rating:       input.Rating,
		Comment:      input.Comment,
		ResourceKind: input.ResourceKind,
		ResourceID:   input.ResourceID,
		UserID:       userID,
		IsAnonymous:  input.IsAnonymous,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "You have already reviewed this listing",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save review",
			Error:   err.Error(),
		})
	}

	refreshListingRating(input.ResourceKind, input.ResourceID)

	return c.Status(fiber.StatusCreated).JSON(review)
}

// refreshListingRating recomputes the listing's stored average from its
// reviews. Best effort; a failed refresh leaves the previous average.
func refreshListingRating(kind models.ResourceKind, resourceID uint) {
	var avg float64
	err := db.DB.Model(&models.Review{}).
		Where("resource_kind = ? AND resource_id = ?", kind, resourceID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return
	}

	if kind == models.KindFacility {
		db.DB.Model(&models.Facility{}).Where("id = ?", resourceID).Update("rating", avg)
	} else {
		db.DB.Model(&models.Service{}).Where("id = ?", resourceID).Update("rating", avg)
	}
}

// GetReviews lists reviews for one listing, newest first. Public;
// anonymous reviews are returned without the reviewer.
func GetReviews(c *fiber.Ctx) error {
	kind := models.ResourceKind(c.Params("kind"))
	if kind != models.KindService && kind != models.KindFacility {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown resource kind",
		})
	}

	var reviews []models.Review
	if err := db.DB.Preload("User").
		Where("resource_kind = ? AND resource_id = ?", kind, c.Params("id")).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}

	for i := range reviews {
		reviews[i].User.Password = ""
		if reviews[i].IsAnonymous {
			reviews[i].User = models.User{}
			reviews[i].UserID = 0
		}
	}
	return c.JSON(reviews)
}
