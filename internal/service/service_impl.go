package service

import (
	"context"
	"encoding/json"

	"github.com/marketbase/product-catalog-service/config"
	"github.com/marketbase/product-catalog-service/internal/domain"
	"github.com/marketbase/product-catalog-service/internal/dto"
	"github.com/marketbase/product-catalog-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type ProductServiceImpl struct {
	mongoDBRepo   repository.ProductRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(mongoDBRepo repository.ProductRepository, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductResponse, err error) {
	products, err := s.mongoDBRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	data = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, toProductResponse(product))
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error) {
	found, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(found), nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error) {
	productID, err := s.mongoDBRepo.AddProduct(ctx, toProduct(data))
	if err != nil {
		return
	}

	product = toProductResponse(toProduct(data))
	product.ID = productID.Hex()

	s.publishEvent("product_created", product)

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (product dto.ProductResponse, err error) {
	replaced, err := s.mongoDBRepo.ReplaceProduct(ctx, id, toProduct(data))
	if err != nil {
		return
	}

	product = toProductResponse(replaced)

	s.publishEvent("product_updated", product)

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (product dto.ProductResponse, err error) {
	deleted, err := s.mongoDBRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	product = toProductResponse(deleted)

	s.publishEvent("product_deleted", product)

	return product, nil
}

// publishEvent writes a product change event to the broker. Publishing is a
// side channel: failures are logged and never surfaced to the HTTP caller.
func (s *ProductServiceImpl) publishEvent(eventType string, data dto.ProductResponse) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}

func toProduct(data dto.ProductRequest) domain.Product {
	return domain.Product{
		Name:        *data.Name,
		Description: *data.Description,
		Price:       *data.Price,
		Stock:       *data.Stock,
		ImageURL:    *data.ImageURL,
	}
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
	}
}
