package handlers

import (
	"github.com/abdulh21/TourVista/internal/models"
	"github.com/abdulh21/TourVista/internal/services"
	"github.com/abdulh21/TourVista/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
}

// CreateTourHandler creates a tour owned by the authenticated caller.
func CreateTourHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User is not authenticated"})
	}

	var tour models.Tour
	if err := c.BodyParser(&tour); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	created, err := services.CreateTour(tour, userID)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetToursHandler returns one page of tours with paging metadata.
// A missing or non-numeric page parameter means page 1.
func GetToursHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	result, err := services.GetTours(page)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(result)
}

// GetTourHandler returns a single tour. A malformed id is treated the
// same as a missing document.
func GetTourHandler(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tour not found"})
	}

	tour, err := services.GetTour(id)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tour not found"})
	}
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tour)
}

// GetToursByUserHandler lists every tour created by one user.
func GetToursByUserHandler(c *fiber.Ctx) error {
	userID := c.Params("id")
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User doesn't exist"})
	}

	tours, err := services.GetToursByUser(userID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tours)
}

// DeleteTourHandler deletes by id. A well-formed id that matches no
// document still reports success.
func DeleteTourHandler(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No tour exists with that ID"})
	}

	if err := services.DeleteTour(id); err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Tour deleted successfully"})
}

// UpdateTourHandler replaces the tour's updatable fields wholesale.
// Responds 200 with a null body when the id matches nothing.
func UpdateTourHandler(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No tour exists with that ID"})
	}

	var upd models.TourUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	tour, err := services.UpdateTour(id, upd)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tour)
}

// SearchToursHandler matches searchQuery as a case-insensitive
// substring of the title.
func SearchToursHandler(c *fiber.Ctx) error {
	tours, err := services.SearchTours(c.Query("searchQuery"))
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tours)
}

// GetToursByTagHandler lists tours carrying the given tag.
func GetToursByTagHandler(c *fiber.Ctx) error {
	tours, err := services.GetToursByTag(c.Params("tag"))
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tours)
}

// GetRelatedToursHandler lists tours whose tags intersect the set in
// the request body.
func GetRelatedToursHandler(c *fiber.Ctx) error {
	var tags []string
	if err := c.BodyParser(&tags); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	tours, err := services.GetRelatedTours(tags)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tours)
}

// LikeTourHandler toggles the caller's like on a tour.
func LikeTourHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User is not authenticated"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No tour exists with that ID"})
	}

	tour, err := services.LikeTour(id, userID)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Tour not found"})
	}
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tour)
}

// GetToursByCategoryHandler lists tours with an exact category match.
func GetToursByCategoryHandler(c *fiber.Ctx) error {
	tours, err := services.GetToursByCategory(c.Params("category"))
	if err != nil {
		return internalError(c)
	}

	return c.JSON(tours)
}

// UploadTourImageHandler stores a tour image and returns the URL to use
// as the tour's imageFile reference.
func UploadTourImageHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User is not authenticated"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to retrieve image"})
	}

	url, err := storage.UploadTourImage(fileHeader)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"imageFile": url})
}
