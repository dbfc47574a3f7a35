package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type userMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.UserRepository {
	return &userMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
		Log:        logger,
	}
}

func (r *userMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexUserEmailUniqueKey),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		r.Log.Error("userMongoRepository.EnsureIndexes error creating index",
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *userMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

// UpsertByEmail never writes the role, so an existing admin keeps it across logins.
// Profile keys are merged into the stored profile rather than replacing it.
func (r *userMongoRepository) UpsertByEmail(ctx context.Context, userModel *models.User) (*models.UserUpsertResult, error) {
	now := time.Now()
	set := bson.M{
		"email":     userModel.Email,
		"updatedAt": now,
	}
	if userModel.Name != "" {
		set["name"] = userModel.Name
	}
	for key, value := range userModel.Profile {
		set["profile."+key] = value
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"email": userModel.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}

	upsertResult := &models.UserUpsertResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if result.UpsertedID != nil {
		upsertResult.UpsertedID = objectIDToString(result.UpsertedID)
	}
	return upsertResult, nil
}

func (r *userMongoRepository) SetRole(ctx context.Context, email, role string) (int64, int64, error) {
	update := bson.M{"$set": bson.M{
		"role":      role,
		"updatedAt": time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(false))
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

func objectIDToString(id interface{}) string {
	if objectID, ok := id.(primitive.ObjectID); ok {
		return objectID.Hex()
	}
	return fmt.Sprint(id)
}
