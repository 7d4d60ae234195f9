package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"deepmirror/internal/model"
)

// SessionRepo handles MongoDB operations for assessment sessions.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	SaveAnswers(ctx context.Context, id string, answers map[string]model.Answer) error
	SaveProfile(ctx context.Context, id string, profile model.Profile) error
	SaveAnalysis(ctx context.Context, id, action string, result model.AnalysisResult) error
	ClearAnalysis(ctx context.Context, id, action string) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	now := time.Now()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.Answers == nil {
		session.Answers = map[string]model.Answer{}
	}

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveAnswers merges new answers into the session's answer map. Answers
// already present for a question are left untouched: submissions are
// immutable per question.
func (r *sessionRepo) SaveAnswers(ctx context.Context, id string, answers map[string]model.Answer) error {
	for key, answer := range answers {
		_, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": id, "answers." + key: bson.M{"$exists": false}},
			bson.M{
				"$set": bson.M{
					"answers." + key: answer,
					"updatedAt":      time.Now(),
				},
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *sessionRepo) SaveProfile(ctx context.Context, id string, profile model.Profile) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profile": profile, "updatedAt": time.Now()}},
	)
	return err
}

// SaveAnalysis persists the parsed analysis under its action key. Only
// the analysis service writes here.
func (r *sessionRepo) SaveAnalysis(ctx context.Context, id, action string, result model.AnalysisResult) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"analyses." + action: result, "updatedAt": time.Now()}},
	)
	return err
}

// ClearAnalysis removes a cached analysis so the next request recomputes.
func (r *sessionRepo) ClearAnalysis(ctx context.Context, id, action string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$unset": bson.M{"analyses." + action: ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}
