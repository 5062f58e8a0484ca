package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

// ValidSizes lists the sizes a product may offer
var ValidSizes = []string{"S", "M", "L", "XL"}

// MaxProductImages limits how many image URLs a product may carry
const MaxProductImages = 3

// StringList is a string slice stored as a JSONB column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Contains reports whether the list contains the given value
func (l StringList) Contains(value string) bool {
	for _, s := range l {
		if s == value {
			return true
		}
	}
	return false
}

// Product is a sellable item in the catalog
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(200)"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sizes       StringList      `gorm:"type:jsonb"`
	Images      StringList      `gorm:"type:jsonb"`
	Stock       int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product.
// An empty size list defaults to all valid sizes.
func NewProduct(name, description string, price decimal.Decimal, categoryID uuid.UUID, sizes, images []string, stock int) (*Product, error) {
	product := &Product{
		BaseEntity: shared.NewBaseEntity(),
	}
	if err := product.apply(name, description, price, categoryID, sizes, images, stock); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the product's attributes
func (p *Product) Update(name, description string, price decimal.Decimal, categoryID uuid.UUID, sizes, images []string, stock int) error {
	if err := p.apply(name, description, price, categoryID, sizes, images, stock); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

// OffersSize reports whether the product is sold in the given size
func (p *Product) OffersSize(size string) bool {
	return p.Sizes.Contains(size)
}

func (p *Product) apply(name, description string, price decimal.Decimal, categoryID uuid.UUID, sizes, images []string, stock int) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}
	if len(description) > 200 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 200 characters")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}
	normalizedSizes, err := normalizeSizes(sizes)
	if err != nil {
		return err
	}
	if len(images) > MaxProductImages {
		return shared.NewDomainError("INVALID_IMAGES", fmt.Sprintf("Cannot have more than %d images", MaxProductImages))
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.Price = price
	p.CategoryID = categoryID
	p.Sizes = normalizedSizes
	p.Images = StringList(images)
	if p.Images == nil {
		p.Images = StringList{}
	}
	p.Stock = stock
	return nil
}

// normalizeSizes validates sizes against ValidSizes, defaulting to all sizes
func normalizeSizes(sizes []string) (StringList, error) {
	if len(sizes) == 0 {
		return StringList(append([]string(nil), ValidSizes...)), nil
	}
	result := make(StringList, 0, len(sizes))
	for _, size := range sizes {
		size = strings.ToUpper(strings.TrimSpace(size))
		valid := false
		for _, v := range ValidSizes {
			if size == v {
				valid = true
				break
			}
		}
		if !valid {
			return nil, shared.NewDomainError("INVALID_SIZE", "Size must be one of: "+strings.Join(ValidSizes, ", "))
		}
		if !result.Contains(size) {
			result = append(result, size)
		}
	}
	return result, nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 100 characters")
	}
	return nil
}
