package repository

import (
	"context"

	"github.com/marketbase/product-catalog-service/internal/domain"
	"github.com/marketbase/product-catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductByID").Str("id", id).Msg("")
		return product, errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductByID").Str("id", id).Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	// The store owns id assignment; whatever the caller set is discarded.
	data.ID = primitive.NilObjectID

	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) ReplaceProduct(ctx context.Context, id string, data domain.Product) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Err(err).Str("component", "ReplaceProduct").Str("id", id).Msg("")
		return product, errs.ErrInvalidID
	}

	data.ID = productID
	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection(productCollection).ReplaceOne(ctx, filter, data)
	if err != nil {
		log.Error().Err(err).Str("component", "ReplaceProduct").Str("id", id).Msg("")
		return product, err
	}

	// A matched but unmodified document means the new representation was
	// identical, which still counts as a successful replacement.
	if result.MatchedCount == 0 && result.ModifiedCount == 0 {
		log.Error().Str("component", "ReplaceProduct").Str("id", id).Msg("no document matched")
		return product, errs.ErrNotFound
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Str("id", id).Msg("")
		return product, errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productCollection).FindOneAndDelete(ctx, filter).Decode(&product)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Str("id", id).Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}
