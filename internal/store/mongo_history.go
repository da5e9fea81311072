package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

const chatsCollection = "chats"

// mongoHistoryRepository keeps one document per turn in the "chats"
// collection.
type mongoHistoryRepository struct {
	col    *mongo.Collection
	logger *logger.Logger
	now    func() time.Time
}

// NewConnectMongo connects to cfg.URI, pings the primary and ensures the
// history index.
func NewConnectMongo(ctx context.Context, cfg config.History, log *logger.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo")
		return nil, nil, fmt.Errorf("error connecting mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	if _, err = db.Collection(chatsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName("idx_user_id_id_desc"),
	}); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error creating history index: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongo successfully")

	return client, db, nil
}

// NewMongoHistoryRepository constructs a [HistoryRepository] on db.
func NewMongoHistoryRepository(db *mongo.Database, logger *logger.Logger) HistoryRepository {
	return newMongoHistoryRepository(db.Collection(chatsCollection), logger)
}

func newMongoHistoryRepository(col *mongo.Collection, logger *logger.Logger) *mongoHistoryRepository {
	return &mongoHistoryRepository{col: col, logger: logger, now: time.Now}
}

func (r *mongoHistoryRepository) AppendTurns(ctx context.Context, userID int64, turns ...models.ConversationTurn) error {
	now := r.now().UTC()

	docs := make([]any, 0, len(turns))
	for _, t := range turns {
		if !t.IsRenderable() {
			continue
		}
		docs = append(docs, models.HistoryRecord{UserID: userID, Turn: t, CreatedAt: now})
	}
	if len(docs) == 0 {
		return nil
	}

	// ordered insert keeps ObjectIDs increasing in turn order
	if _, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mongoHistoryRepository.AppendTurns").
			Int64("user_id", userID).
			Msg("failed to insert history")
		return fmt.Errorf("%w: append history: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *mongoHistoryRepository) RecentTurns(ctx context.Context, userID int64, limit int) ([]models.ConversationTurn, error) {
	if limit <= 0 {
		return []models.ConversationTurn{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mongoHistoryRepository.RecentTurns").
			Int64("user_id", userID).
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: recent history: %w", ErrExecutingQuery, err)
	}
	defer cur.Close(ctx)

	var records []models.HistoryRecord
	if err = cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	turns := make([]models.ConversationTurn, 0, len(records))
	for _, rec := range records {
		turns = append(turns, rec.Turn)
	}
	slices.Reverse(turns)

	return turns, nil
}
