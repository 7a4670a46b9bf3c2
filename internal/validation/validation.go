package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marketbase/product-catalog-service/internal/dto"
)

// urlShapedRe is deliberately permissive: scheme, TLD and host checks are all
// optional. Anything with URL-like structure and no whitespace passes.
var urlShapedRe = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9+.-]*://)?[^\s/?#]+(?:[/?#]\S*)?$`)

var productFields = map[string]bool{
	"name":        true,
	"description": true,
	"price":       true,
	"stock":       true,
	"image_url":   true,
}

type Validation struct {
	validate *validator.Validate
}

// NewValidation builds the product payload validator. When checkImageURL is
// false the url_shaped rule is registered as a pass-through, so image_url only
// has to be a present string.
func NewValidation(checkImageURL bool) *Validation {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("url_shaped", func(fl validator.FieldLevel) bool {
		if !checkImageURL {
			return true
		}
		return urlShapedRe.MatchString(fl.Field().String())
	})

	return &Validation{validate: validate}
}

// ValidateProductPayload decodes a write payload and collects every failure
// instead of stopping at the first one. The body is decoded into a raw field
// map first so that unrecognized keys and per-field type mismatches can each
// be reported under their own field label.
func (v *Validation) ValidateProductPayload(body []byte) (dto.ProductRequest, []dto.ValidationError) {
	var req dto.ProductRequest

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, []dto.ValidationError{{Field: "body", Message: "request body must be a JSON object"}}
	}

	var validationErrs []dto.ValidationError

	var unknown []string
	for key := range raw {
		if !productFields[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		validationErrs = append(validationErrs, dto.ValidationError{Field: key, Message: "no additional fields allowed"})
	}

	// Fields that already failed the type check are skipped by the rule
	// pass, otherwise they would be reported twice.
	failed := map[string]bool{}
	decodeField := func(field string, dst interface{}, typeMsg string) {
		rawValue, ok := raw[field]
		if !ok {
			return
		}
		if err := json.Unmarshal(rawValue, dst); err != nil {
			validationErrs = append(validationErrs, dto.ValidationError{Field: field, Message: typeMsg})
			failed[field] = true
		}
	}

	decodeField("name", &req.Name, "name must be a string")
	decodeField("description", &req.Description, "description must be a string")
	decodeField("price", &req.Price, "price must be a number")
	decodeField("stock", &req.Stock, "stock must be an integer")
	decodeField("image_url", &req.ImageURL, "image_url must be a string")

	if err := v.validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				field := fieldError.Field()
				if failed[field] {
					continue
				}
				validationErrs = append(validationErrs, dto.ValidationError{Field: field, Message: ruleMessage(field, fieldError.Tag())})
			}
		}
	}

	return req, validationErrs
}

func ruleMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "min":
		return field + " must not be empty"
	case "gte":
		return field + " must be greater than or equal to 0"
	case "url_shaped":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
