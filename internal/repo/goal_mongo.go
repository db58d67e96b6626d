package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkordes/goal-tracker/internal/domain"
)

// GoalsCollection is the MongoDB collection holding goal documents.
const GoalsCollection = "goals"

// goalDocument is the persisted shape of a goal: {_id, text}.
type goalDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Text string             `bson:"text"`
}

// mongoGoalRepo is the MongoDB implementation of GoalRepo.
type mongoGoalRepo struct {
	coll *mongo.Collection
}

// NewMongoGoalRepo constructs a GoalRepo over the goals collection of database.
func NewMongoGoalRepo(database *mongo.Database) GoalRepo {
	return &mongoGoalRepo{coll: database.Collection(GoalsCollection)}
}

// List returns all goals in natural order. No sort is applied, so the order is
// whatever the server returns for an unfiltered scan (insertion order for a
// plain collection).
func (r *mongoGoalRepo) List(ctx context.Context) ([]domain.Goal, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("repo.GoalRepo.List: %w", err)
	}

	var docs []goalDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("repo.GoalRepo.List: decode: %w", err)
	}

	goals := make([]domain.Goal, 0, len(docs))
	for _, d := range docs {
		goals = append(goals, d.toDomain())
	}
	return goals, nil
}

// Create inserts a goal document and returns it with the generated ObjectID.
func (r *mongoGoalRepo) Create(ctx context.Context, text string) (domain.Goal, error) {
	doc := goalDocument{ID: primitive.NewObjectID(), Text: text}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Goal{}, fmt.Errorf("repo.GoalRepo.Create: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes the document whose _id matches the hex ObjectID.
func (r *mongoGoalRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("repo.GoalRepo.DeleteByID: %w: %q", domain.ErrInvalidID, id)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("repo.GoalRepo.DeleteByID: %w", err)
	}
	return nil
}

func (d goalDocument) toDomain() domain.Goal {
	return domain.Goal{ID: d.ID.Hex(), Text: d.Text}
}
