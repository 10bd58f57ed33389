package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

const reportsCollection = "garden_reports"

// Repository defines the interface for the daily report archive.
type Repository interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
	LatestReports(ctx context.Context, limit int64) ([]models.DailyReport, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri).SetConnectTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: reportsCollection,
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SaveDailyReport stores a report, replacing any earlier report for the
// same day.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	day := reportDay(report.Date)
	report.Date = day

	_, err := r.collection().ReplaceOne(ctx,
		dayFilter(day),
		report,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert daily report: %w", err)
	}
	return nil
}

// LatestReports returns up to limit reports, newest first.
func (r *MongoDBRepository) LatestReports(ctx context.Context, limit int64) ([]models.DailyReport, error) {
	cur, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(newestFirst()).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily reports: %w", err)
	}
	defer cur.Close(ctx)

	reports := []models.DailyReport{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode daily reports: %w", err)
	}
	return reports, nil
}

// reportDay keys a report by the calendar day it was produced on, in the
// report's own location.
func reportDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayFilter selects the report stored for one calendar day.
func dayFilter(day time.Time) bson.M {
	return bson.M{"date": day}
}

func newestFirst() bson.D {
	return bson.D{{Key: "date", Value: -1}}
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
