package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayfront/internal/app/policies"
	"stayfront/internal/domain/locale"
)

const preferencesCollection = "visitor_preferences"

// PreferenceStore keeps one document per visitor, keyed by the visitor id.
// Documents untouched for Retention are expired by MongoDB.
type PreferenceStore struct {
	col *mongo.Collection
}

const Retention = 180 * 24 * time.Hour

func NewPreferenceStore(ctx context.Context, db *mongo.Database) (*PreferenceStore, error) {
	col := db.Collection(preferencesCollection)
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(Retention.Seconds())),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, err
	}
	return &PreferenceStore{col: col}, nil
}

func (s *PreferenceStore) Load(ctx context.Context, visitorID string) (locale.Settings, bool, error) {
	var doc preferenceDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": visitorID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return locale.Settings{}, false, nil
		}
		return locale.Settings{}, false, err
	}
	return doc.toSettings(), true, nil
}

func (s *PreferenceStore) Save(ctx context.Context, settings locale.Settings) error {
	doc := preferenceDocument{
		Language:  string(settings.Language),
		Currency:  string(settings.Currency),
		UpdatedAt: settings.UpdatedAt,
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}
	_, err := s.col.UpdateByID(ctx, settings.VisitorID, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	return err
}

type preferenceDocument struct {
	ID        string    `bson:"_id,omitempty"`
	Language  string    `bson:"language"`
	Currency  string    `bson:"currency"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d preferenceDocument) toSettings() locale.Settings {
	return locale.Settings{
		VisitorID: d.ID,
		Language:  locale.Language(d.Language),
		Currency:  locale.Currency(d.Currency),
		UpdatedAt: d.UpdatedAt,
	}
}

var _ policies.PreferenceStore = (*PreferenceStore)(nil)
