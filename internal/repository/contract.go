package repository

import (
	"context"

	"github.com/marketbase/product-catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	ReplaceProduct(ctx context.Context, id string, data domain.Product) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (product domain.Product, err error)
}
