package logstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// logDocument is the stored shape; ids are kept as canonical uuid strings.
type logDocument struct {
	ID          string    `bson:"_id"`
	Level       int       `bson:"level"`
	Message     string    `bson:"message"`
	ServiceName string    `bson:"service_name"`
	Timestamp   time.Time `bson:"timestamp"`
}

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// ConnectMongo opens a client and ensures the (service_name, timestamp) and
// (level, timestamp) indexes exist.
func ConnectMongo(ctx context.Context, cfg config.LogStoreConfig) (*MongoStore, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.Wrap(err, "failed to ping MongoDB")
	}

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	_, err = collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "service_name", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "level", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.Wrap(err, "failed to create log indexes")
	}

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("failed to disconnect MongoDB", slog.String("error", err.Error()))
			return
		}
		slog.Info("MongoDB client closed")
	}
	return NewMongoStore(collection), cleanup, nil
}

func (s *MongoStore) Save(ctx context.Context, event *logevent.Event) error {
	_, err := s.collection.InsertOne(ctx, toDocument(event))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return errs.Wrap(err, "failed to insert log event")
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, filter queries.LogFilter) ([]*queries.LogView, error) {
	cursor, err := s.collection.Find(ctx, buildFilter(filter), findOptions(filter))
	if err != nil {
		return nil, errs.Wrap(err, "failed to query log events")
	}
	defer cursor.Close(ctx)

	var docs []logDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errs.Wrap(err, "failed to decode log events")
	}

	views := make([]*queries.LogView, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			slog.Warn("skipping log document with invalid id", slog.String("id", d.ID))
			continue
		}
		views = append(views, &queries.LogView{
			ID:          id,
			Level:       d.Level,
			Message:     d.Message,
			ServiceName: d.ServiceName,
			Timestamp:   d.Timestamp.UTC(),
		})
	}
	return views, nil
}

func (s *MongoStore) Count(ctx context.Context, filter queries.LogFilter) (int, error) {
	n, err := s.collection.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		return 0, errs.Wrap(err, "failed to count log events")
	}
	return int(n), nil
}

func toDocument(event *logevent.Event) logDocument {
	return logDocument{
		ID:          event.ID.String(),
		Level:       int(event.Level),
		Message:     event.Message,
		ServiceName: event.ServiceName,
		Timestamp:   event.Timestamp.UTC(),
	}
}

func buildFilter(filter queries.LogFilter) bson.M {
	f := bson.M{}
	if filter.Level != nil {
		f["level"] = *filter.Level
	}
	if filter.ServiceName != nil {
		f["service_name"] = *filter.ServiceName
	}
	return f
}

func findOptions(filter queries.LogFilter) *options.FindOptions {
	return options.Find().
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}})
}
