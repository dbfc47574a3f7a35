package bookings

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type bookingMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewBookingMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.BookingRepository {
	return &bookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
		Log:        logger,
	}
}

// EnsureIndexes creates the unique (treatment, date, patient) index that closes
// the race between the existence check and the insert.
func (r *bookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexBookingUniqueKey),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		r.Log.Error("bookingMongoRepository.EnsureIndexes error creating index",
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *bookingMongoRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}

	var booking models.Booking
	err := r.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *bookingMongoRepository) FindByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patient": patientEmail})
}

func (r *bookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *bookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		return objectID.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}
