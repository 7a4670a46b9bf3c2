package dto

// ProductRequest is the write payload for POST /products and PUT /products/:id.
// Fields are pointers so that a missing key can be told apart from a zero
// value: price 0 and stock 0 are valid, an absent price is not.
type ProductRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int64   `json:"stock" validate:"required,gte=0"`
	ImageURL    *string  `json:"image_url" validate:"required,url_shaped"`
}
