package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"example.com/odyssey-travel/backend/internal/models"
)

type ContactRepository struct {
	messages   *mongo.Collection
	newsletter *mongo.Collection
}

// NewContactRepository создает репозиторий обратной связи и рассылки.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		messages:   db.Collection("contact_messages"),
		newsletter: db.Collection("newsletter"),
	}
}

// SaveMessage сохраняет сообщение из формы обратной связи.
func (r *ContactRepository) SaveMessage(ctx context.Context, name, email, subject, message string) (models.ContactMessage, error) {
	doc := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.messages.InsertOne(ctx, doc); err != nil {
		return models.ContactMessage{}, err
	}

	return doc, nil
}

// Subscribe добавляет подписчика рассылки. Повторная подписка того же
// email дает ErrConflict.
func (r *ContactRepository) Subscribe(ctx context.Context, email string) (models.NewsletterSubscription, error) {
	doc := models.NewsletterSubscription{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.newsletter.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewsletterSubscription{}, ErrConflict
		}
		return models.NewsletterSubscription{}, err
	}

	return doc, nil
}
