package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/infra/mq"
	"github.com/lukpoex/next-commerce/internal/storage"
)

// ProductService drives the storefront catalog and the admin product CRUD.
type ProductService struct {
	repo   product.Repository
	store  *storage.ImageStore
	events *mq.Publisher
	logger *zap.Logger
}

// NewProductService wires the product service.
func NewProductService(repo product.Repository, store *storage.ImageStore, events *mq.Publisher, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{repo: repo, store: store, events: events, logger: logger}
}

// List returns one page of matching products plus the filtered total.
// Read failures are logged and degrade to an empty page; the storefront
// prefers an empty shelf over an error page.
func (s *ProductService) List(ctx context.Context, f product.Filter) ([]*product.Product, int64) {
	list, total, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("product list query failed", zap.Error(err))
		return []*product.Product{}, 0
	}
	if list == nil {
		list = []*product.Product{}
	}
	return list, total
}

// GetBySlug loads one product for the detail page.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create validates and persists a new product with its variants.
func (s *ProductService) Create(ctx context.Context, p *product.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	s.events.Publish(ctx, mq.EventProductCreated, p.ID)
	return nil
}

func validateProduct(p *product.Product) error {
	switch {
	case p.Brand == "":
		return fmt.Errorf("%w: brand is required", ErrValidation)
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case p.Slug == "":
		return fmt.Errorf("%w: slug is required", ErrValidation)
	case p.CurrentPrice <= 0:
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	case p.DiscountPrice != nil && *p.DiscountPrice > p.CurrentPrice:
		return fmt.Errorf("%w: discount price cannot exceed current price", ErrValidation)
	case p.TotalQuantity < 0:
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	case p.CategoryID <= 0 || p.SubcategoryID <= 0:
		return fmt.Errorf("%w: category and subcategory are required", ErrValidation)
	}
	for _, v := range p.Variants {
		if v.Name == "" || v.Value == "" {
			return fmt.Errorf("%w: variant name and value are required", ErrValidation)
		}
	}
	return nil
}

// Delete removes a product with all dependent rows and backing image files
// in one atomic unit; a failed file removal rolls the row deletions back.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteCascade(ctx, id, func(images []product.Image) error {
		for _, img := range images {
			if err := s.store.Remove(img.Src); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.events.Publish(ctx, mq.EventProductDeleted, id)
	return nil
}

// UploadImages validates every file up front, then stores each one as webp
// and records it on the product. A failed row insert unlinks the freshly
// written file so the database and the disk never disagree.
func (s *ProductService) UploadImages(ctx context.Context, productID int64, alt string, files []*multipart.FileHeader) ([]product.Image, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no images provided", ErrValidation)
	}
	if alt == "" {
		alt = p.Name
	}

	for _, fh := range files {
		if err := s.store.Validate(fh); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	saved := make([]product.Image, 0, len(files))
	for _, fh := range files {
		src, err := s.store.Save(fh)
		if err != nil {
			return saved, fmt.Errorf("store image: %w", err)
		}
		img := product.Image{ProductID: productID, Src: src, Alt: alt}
		if err := s.repo.AddImage(ctx, &img); err != nil {
			if rmErr := s.store.Remove(src); rmErr != nil {
				s.logger.Error("orphaned image file after failed insert",
					zap.String("src", src), zap.Error(rmErr))
			}
			return saved, fmt.Errorf("record image: %w", err)
		}
		saved = append(saved, img)
	}

	s.events.Publish(ctx, mq.EventImageUploaded, productID)
	return saved, nil
}

// AddFavorite marks the product as a favorite of the user.
func (s *ProductService) AddFavorite(ctx context.Context, productID, userID int64) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return err
	}
	return s.repo.AddFavorite(ctx, productID, userID)
}

// RemoveFavorite drops the favorite mark; removing a non-favorite is a no-op.
func (s *ProductService) RemoveFavorite(ctx context.Context, productID, userID int64) error {
	return s.repo.RemoveFavorite(ctx, productID, userID)
}
