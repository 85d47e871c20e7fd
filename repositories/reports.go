package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"startup-validator/db"
	"startup-validator/errs"
	"startup-validator/models"
)

const defaultListLimit = 10

// ReportRepository persists validation reports. Reports are insert-only;
// there is no update path.
type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(database *mongo.Database) *ReportRepository {
	return &ReportRepository{col: database.Collection(db.ReportsCollection)}
}

// Save inserts the report, assigning its id and created_at, and returns
// the new id as a hex string.
func (r *ReportRepository) Save(ctx context.Context, report *models.ValidationReport) (string, error) {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, report)
	if err != nil {
		return "", errs.NewStorageError("save", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errs.NewStorageError("save", mongo.ErrNilDocument)
	}
	report.ID = id
	return id.Hex(), nil
}

// Get returns the report with the given hex id. Malformed and unknown ids
// both yield ErrNotFound.
func (r *ReportRepository) Get(ctx context.Context, hexID string) (*models.ValidationReport, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	var report models.ValidationReport
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, errs.NewStorageError("get", err)
	}
	return &report, nil
}

// List returns reports sorted by created_at descending plus the total
// count. Non-positive limit falls back to the default; negative skip is
// treated as zero.
func (r *ReportRepository) List(ctx context.Context, limit, skip int64) ([]models.ValidationReport, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errs.NewStorageError("list", err)
	}
	defer cursor.Close(ctx)

	reports := make([]models.ValidationReport, 0, limit)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, errs.NewStorageError("list", err)
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errs.NewStorageError("list", err)
	}
	return reports, total, nil
}

// Delete removes the report with the given hex id. Deleting a missing or
// malformed id yields ErrNotFound; deletion is permanent.
func (r *ReportRepository) Delete(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return errs.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.NewStorageError("delete", err)
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
