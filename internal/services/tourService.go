package services

import (
	"context"
	"math"
	"regexp"
	"time"

	"github.com/abdulh21/TourVista/internal/db"
	"github.com/abdulh21/TourVista/internal/models"
	"github.com/abdulh21/TourVista/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const toursPerPage = 6

func tourCollection() *mongo.Collection {
	return db.GetCollection("tourvista", "tours")
}

// TourPage is the response shape of the paginated listing.
type TourPage struct {
	Data          []models.Tour `json:"data"`
	CurrentPage   int           `json:"currentPage"`
	TotalTours    int64         `json:"totalTours"`
	NumberOfPages int           `json:"numberOfPages"`
}

// normalizePage maps absent or garbage page values to the first page.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageStartIndex(page int) int64 {
	return int64((normalizePage(page) - 1) * toursPerPage)
}

func pageCount(total int64) int {
	return int(math.Ceil(float64(total) / float64(toursPerPage)))
}

// titleFilter builds a case-insensitive substring match on the title.
// The query is quoted so user input never runs as a pattern.
func titleFilter(query string) bson.M {
	return bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
}

// newTourDoc applies the server-side stamps to an incoming tour body.
// Creator always comes from the authenticated caller, even when the
// body carries a conflicting value.
func newTourDoc(tour models.Tour, userID string) models.Tour {
	tour.ID = primitive.NewObjectID()
	tour.Creator = userID
	tour.CreatedAt = time.Now().UTC()
	if tour.Tags == nil {
		tour.Tags = []string{}
	}
	if tour.Likes == nil {
		tour.Likes = []string{}
	}
	if tour.Category == "" {
		tour.Category = "General"
	}
	return tour
}

// replacementDoc builds the full replacement document for an update.
// Only the six updatable fields survive; everything else on the stored
// document is cleared.
func replacementDoc(upd models.TourUpdate) bson.M {
	tags := upd.Tags
	if tags == nil {
		tags = []string{}
	}
	return bson.M{
		"title":       upd.Title,
		"description": upd.Description,
		"creator":     upd.Creator,
		"imageFile":   upd.ImageFile,
		"tags":        tags,
		"category":    upd.Category,
	}
}

// likeUpdate picks the atomic set operation for a like toggle: add the
// user when absent, pull them when already present.
func likeUpdate(likes []string, userID string) bson.M {
	for _, id := range likes {
		if id == userID {
			return bson.M{"$pull": bson.M{"likes": userID}}
		}
	}
	return bson.M{"$addToSet": bson.M{"likes": userID}}
}

// CreateTour persists a new tour owned by userID.
func CreateTour(tour models.Tour, userID string) (models.Tour, error) {
	doc := newTourDoc(tour, userID)
	_, err := tourCollection().InsertOne(context.TODO(), doc)
	return doc, err
}

// GetTours returns one fixed-size page of tours plus paging metadata.
// The count and the page fetch run against the store concurrently.
func GetTours(page int) (TourPage, error) {
	page = normalizePage(page)
	skip := pageStartIndex(page)

	tasks := []utils.ParallelTask{
		func() (interface{}, error) {
			return tourCollection().CountDocuments(context.TODO(), bson.M{})
		},
		func() (interface{}, error) {
			findOpts := options.Find().SetLimit(toursPerPage).SetSkip(skip)
			cursor, err := tourCollection().Find(context.TODO(), bson.M{}, findOpts)
			if err != nil {
				return nil, err
			}
			defer cursor.Close(context.TODO())

			var tours []models.Tour
			if err := cursor.All(context.TODO(), &tours); err != nil {
				return nil, err
			}
			return tours, nil
		},
	}

	results, errs := utils.RunParallelTasks(tasks)
	for _, err := range errs {
		if err != nil {
			return TourPage{}, err
		}
	}

	total := results[0].(int64)
	tours := results[1].([]models.Tour)
	if tours == nil {
		tours = []models.Tour{}
	}

	return TourPage{
		Data:          tours,
		CurrentPage:   page,
		TotalTours:    total,
		NumberOfPages: pageCount(total),
	}, nil
}

// GetTour fetches a single tour by id. Returns mongo.ErrNoDocuments
// when no document matches.
func GetTour(id primitive.ObjectID) (models.Tour, error) {
	var tour models.Tour
	err := tourCollection().FindOne(context.TODO(), bson.M{"_id": id}).Decode(&tour)
	return tour, err
}

func findTours(filter bson.M) ([]models.Tour, error) {
	cursor, err := tourCollection().Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var tours []models.Tour
	if err := cursor.All(context.TODO(), &tours); err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

// GetToursByUser returns every tour created by the given user id.
func GetToursByUser(userID string) ([]models.Tour, error) {
	return findTours(bson.M{"creator": userID})
}

// SearchTours matches the query as a literal, case-insensitive
// substring of the title.
func SearchTours(query string) ([]models.Tour, error) {
	return findTours(titleFilter(query))
}

// GetToursByTag returns tours whose tags contain the given tag.
func GetToursByTag(tag string) ([]models.Tour, error) {
	return findTours(bson.M{"tags": bson.M{"$in": []string{tag}}})
}

// GetRelatedTours returns tours whose tags intersect the given set.
func GetRelatedTours(tags []string) ([]models.Tour, error) {
	if tags == nil {
		tags = []string{}
	}
	return findTours(bson.M{"tags": bson.M{"$in": tags}})
}

// GetToursByCategory returns tours with an exact category match.
func GetToursByCategory(category string) ([]models.Tour, error) {
	return findTours(bson.M{"category": category})
}

// DeleteTour removes a tour by id. Deleting an id that matches nothing
// is not an error; the caller reports success either way.
func DeleteTour(id primitive.ObjectID) error {
	_, err := tourCollection().DeleteOne(context.TODO(), bson.M{"_id": id})
	return err
}

// UpdateTour replaces the tour's updatable fields wholesale and returns
// the updated document, or nil when no document matches the id.
func UpdateTour(id primitive.ObjectID, upd models.TourUpdate) (*models.Tour, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var tour models.Tour
	err := tourCollection().
		FindOneAndReplace(context.TODO(), bson.M{"_id": id}, replacementDoc(upd), opts).
		Decode(&tour)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

// LikeTour toggles the caller's membership in the tour's likes set and
// returns the updated tour. The membership check is one read and the
// flip is a single atomic set operation, so two concurrent likers
// cannot overwrite each other's entry.
func LikeTour(id primitive.ObjectID, userID string) (models.Tour, error) {
	tour, err := GetTour(id)
	if err != nil {
		return models.Tour{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Tour
	err = tourCollection().
		FindOneAndUpdate(context.TODO(), bson.M{"_id": id}, likeUpdate(tour.Likes, userID), opts).
		Decode(&updated)
	if err != nil {
		return models.Tour{}, err
	}
	return updated, nil
}
