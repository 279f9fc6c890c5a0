package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/moriwell/storefront/internal/usecase"
	"time"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	testhelpers "github.com/moriwell/storefront/internal/test"
)

func newCatalogStub() *testhelpers.CatalogRepositoryStub {
	return &testhelpers.CatalogRepositoryStub{
		Products: map[int64]*model.Product{
			7: {ID: 7, SKU: testhelpers.RandomSKU(), Name: "Sneaker", Price: dec("120.50")},
		},
		Inventories: []model.Inventory{
			{ID: 31, ProductID: 7, SizeID: 2, ColourID: 3, Stock: 10},
		},
	}
}

func TestCartUseCaseAddToCart(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewCartUseCase(orders, newCatalogStub(), &testhelpers.WishlistRepositoryStub{})

	order, err := uc.AddToCart(context.Background(), 1, 7, 2, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order == nil {
		t.Fatal("expected order")
	}
	if len(orders.AddCalls) != 1 {
		t.Fatalf("expected one repository call, got %d", len(orders.AddCalls))
	}

	call := orders.AddCalls[0]
	if call.InventoryID != 31 {
		t.Errorf("expected inventory 31, got %d", call.InventoryID)
	}
	if call.Qty != 2 {
		t.Errorf("expected qty 2, got %d", call.Qty)
	}
	if !call.UnitPrice.Equal(dec("120.50")) {
		t.Errorf("expected unit price 120.50, got %s", call.UnitPrice)
	}
	if !call.LineTotal.Equal(dec("241")) {
		t.Errorf("expected line total 241, got %s", call.LineTotal)
	}
	if call.InvoiceNumber == "" {
		t.Error("expected invoice number to be generated")
	}
}

func TestCartUseCaseAddToCartInvalidQuantity(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewCartUseCase(orders, newCatalogStub(), &testhelpers.WishlistRepositoryStub{})

	for _, qty := range []int{0, -1} {
		if _, err := uc.AddToCart(context.Background(), 1, 7, 2, 3, qty); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if len(orders.AddCalls) != 0 {
		t.Fatal("repository should not be called on validation errors")
	}
}

func TestCartUseCaseAddToCartUnknownProduct(t *testing.T) {
	uc := usecase.NewCartUseCase(&testhelpers.OrderRepositoryStub{}, newCatalogStub(), &testhelpers.WishlistRepositoryStub{})

	if _, err := uc.AddToCart(context.Background(), 1, 99, 2, 3, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartUseCaseAddToCartUnknownCombination(t *testing.T) {
	uc := usecase.NewCartUseCase(&testhelpers.OrderRepositoryStub{}, newCatalogStub(), &testhelpers.WishlistRepositoryStub{})

	if _, err := uc.AddToCart(context.Background(), 1, 7, 2, 9, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown colour, got %v", err)
	}
}

func TestCartUseCaseSessionWithDraft(t *testing.T) {
	draft := &model.Order{ID: 5, UserID: 1, Subtotal: dec("100")}
	orders := &testhelpers.OrderRepositoryStub{
		Draft: draft,
		Lines: []model.CartLine{{ID: 1, OrderID: 5, Qty: 2}},
	}
	wishlists := &testhelpers.WishlistRepositoryStub{Products: []model.Product{{ID: 7}}}
	uc := usecase.NewCartUseCase(orders, newCatalogStub(), wishlists)

	session, err := uc.Session(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Order == nil || session.Order.ID != 5 {
		t.Fatalf("expected draft order in session, got %+v", session.Order)
	}
	if len(session.Carts) != 1 {
		t.Errorf("expected one cart line, got %d", len(session.Carts))
	}
	if len(session.Wishlists) != 1 {
		t.Errorf("expected one wishlist product, got %d", len(session.Wishlists))
	}
}

func TestCartUseCaseSessionWithoutDraft(t *testing.T) {
	uc := usecase.NewCartUseCase(&testhelpers.OrderRepositoryStub{}, newCatalogStub(), &testhelpers.WishlistRepositoryStub{})

	session, err := uc.Session(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected empty session, got error: %v", err)
	}
	if session.Order != nil {
		t.Fatalf("expected nil order, got %+v", session.Order)
	}
	if len(session.Carts) != 0 {
		t.Errorf("expected no cart lines, got %d", len(session.Carts))
	}
}

func TestCartUseCaseAddWishlist(t *testing.T) {
	wishlists := &testhelpers.WishlistRepositoryStub{}
	uc := usecase.NewCartUseCase(&testhelpers.OrderRepositoryStub{}, newCatalogStub(), wishlists)

	if err := uc.AddWishlist(context.Background(), 1, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wishlists.Added) != 1 || wishlists.Added[0] != 7 {
		t.Fatalf("expected product 7 to be wished, got %v", wishlists.Added)
	}

	if err := uc.AddWishlist(context.Background(), 1, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}
}

func TestInvoiceNumberMonotonic(t *testing.T) {
	base := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	first := usecase.InvoiceNumber(base)
	second := usecase.InvoiceNumber(base.Add(time.Second))

	a, err := strconv.ParseInt(first, 10, 64)
	if err != nil {
		t.Fatalf("invoice number not numeric: %v", err)
	}
	b, err := strconv.ParseInt(second, 10, 64)
	if err != nil {
		t.Fatalf("invoice number not numeric: %v", err)
	}
	if b-a != 10_000_000 {
		t.Fatalf("expected one second to advance 10M ticks, got %d", b-a)
	}
}
