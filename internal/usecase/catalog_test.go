package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/moriwell/storefront/internal/usecase"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
)

func TestCatalogUseCaseProductDetail(t *testing.T) {
	catalog := newCatalogStub()
	catalog.Images = []model.ProductImage{{ID: 1, ProductID: 7, Path: "front.jpg"}}
	catalog.Sizes = []model.Size{{ID: 2, Name: "M"}}
	catalog.Colours = []model.Colour{{ID: 3, Name: "Black"}}
	catalog.Best = []model.Product{{ID: 8, Name: "Boot"}}

	uc := usecase.NewCatalogUseCase(catalog)

	detail, err := uc.ProductDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Product == nil || detail.Product.ID != 7 {
		t.Fatalf("expected product 7, got %+v", detail.Product)
	}
	if len(detail.Images) != 1 || detail.Images[0].Path != "front.jpg" {
		t.Errorf("unexpected images %+v", detail.Images)
	}
	if len(detail.Inventories) != 1 || detail.Inventories[0].ID != 31 {
		t.Errorf("unexpected inventories %+v", detail.Inventories)
	}
	if len(detail.Sizes) != 1 || len(detail.Colours) != 1 {
		t.Errorf("expected dictionaries to be populated, got %+v / %+v", detail.Sizes, detail.Colours)
	}
	if len(detail.Related) != 1 || detail.Related[0].ID != 8 {
		t.Errorf("unexpected related products %+v", detail.Related)
	}
}

func TestCatalogUseCaseProductDetailUnknownProduct(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newCatalogStub())

	if _, err := uc.ProductDetail(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
