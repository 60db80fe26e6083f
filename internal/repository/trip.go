package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/odyssey-travel/backend/internal/models"
)

const myTripsLimit = 100

type TripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository создает репозиторий сохраненных поездок.
func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{collection: db.Collection("trips")}
}

// Save сохраняет поездку за пользователем. Повторное сохранение того же
// id перезаписывает документ целиком.
func (r *TripRepository) Save(ctx context.Context, trip models.GeneratedTrip) error {
	filter := bson.M{"id": trip.ID, "user_id": trip.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, trip, opts)
	return err
}

// ListByUser возвращает поездки пользователя, новые первыми.
func (r *TripRepository) ListByUser(ctx context.Context, userID string) ([]models.GeneratedTrip, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(myTripsLimit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := make([]models.GeneratedTrip, 0)
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}

	return trips, nil
}

// Get возвращает поездку по паре (id, user_id) — чужие поездки невидимы.
func (r *TripRepository) Get(ctx context.Context, id, userID string) (models.GeneratedTrip, error) {
	var trip models.GeneratedTrip

	err := r.collection.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return trip, ErrNotFound
		}
		return trip, err
	}

	return trip, nil
}

// Delete удаляет поездку по паре (id, user_id).
func (r *TripRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateStatus меняет статус поездки по паре (id, user_id).
func (r *TripRepository) UpdateStatus(ctx context.Context, id, userID string, status models.TripStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
