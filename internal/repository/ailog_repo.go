package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"deepmirror/internal/model"
)

// AILogCompletion is the finalizing update for a pending log row.
type AILogCompletion struct {
	Status          model.AILogStatus
	Response        string
	ErrorMessage    string
	InputTokens     *int
	OutputTokens    *int
	Cost            *float64
	DurationSeconds float64
}

// AILogRepo handles MongoDB operations for the invocation audit log.
// Rows are created pending, completed exactly once, and never deleted here.
type AILogRepo interface {
	Create(ctx context.Context, entry *model.AILog) error
	Complete(ctx context.Context, id string, completion AILogCompletion) error
	ListBySession(ctx context.Context, sessionID string) ([]*model.AILog, error)
}

type aiLogRepo struct {
	collection *mongo.Collection
}

// NewAILogRepo creates a new AI log repository.
func NewAILogRepo(db *mongo.Database) AILogRepo {
	return &aiLogRepo{
		collection: db.Collection("ai_logs"),
	}
}

func (r *aiLogRepo) Create(ctx context.Context, entry *model.AILog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Status == "" {
		entry.Status = model.AILogPending
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *aiLogRepo) Complete(ctx context.Context, id string, completion AILogCompletion) error {
	set := bson.M{
		"status":          completion.Status,
		"durationSeconds": completion.DurationSeconds,
	}
	if completion.Response != "" {
		set["response"] = completion.Response
	}
	if completion.ErrorMessage != "" {
		set["errorMessage"] = completion.ErrorMessage
	}
	if completion.InputTokens != nil {
		set["inputTokens"] = *completion.InputTokens
	}
	if completion.OutputTokens != nil {
		set["outputTokens"] = *completion.OutputTokens
	}
	if completion.Cost != nil {
		set["cost"] = *completion.Cost
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *aiLogRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.AILog, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.AILog
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
