package usecase_test

import (
	"context"
	"testing"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/test"
	"github.com/butcherynv/posdesk/internal/usecase"
	"github.com/butcherynv/posdesk/internal/view"
)

func newCatalogUseCaseForTest(items *test.ItemRepositoryStub, waiters *test.WaiterRepositoryStub) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(items, waiters, view.NewStore(), discardLogger(), 2)
}

func TestCatalogUseCaseAddItemTrimsName(t *testing.T) {
	items := &test.ItemRepositoryStub{}
	uc := newCatalogUseCaseForTest(items, &test.WaiterRepositoryStub{})

	if err := uc.AddItem(context.Background(), "  Beef  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.Entries) != 1 || items.Entries[0].Name != "Beef" {
		t.Fatalf("unexpected entries %v", items.Entries)
	}
}

func TestCatalogUseCaseRejectsBlankNames(t *testing.T) {
	items := &test.ItemRepositoryStub{
		NamedRepositoryStub: test.NamedRepositoryStub{
			CreateFn: func(context.Context, string) error {
				t.Fatal("blank name must not reach the repository")
				return nil
			},
		},
	}
	uc := newCatalogUseCaseForTest(items, &test.WaiterRepositoryStub{})

	if err := uc.AddItem(context.Background(), "   "); err != domainErrors.ErrEmptyName {
		t.Fatalf("expected empty name error, got %v", err)
	}
	if err := uc.RenameItem(context.Background(), "i1", ""); err != domainErrors.ErrEmptyName {
		t.Fatalf("expected empty name error on rename, got %v", err)
	}
}

func TestCatalogUseCaseMutationRefreshesSnapshot(t *testing.T) {
	waiters := &test.WaiterRepositoryStub{}
	uc := newCatalogUseCaseForTest(&test.ItemRepositoryStub{}, waiters)

	if _, err := uc.Waiters(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.AddWaiter(context.Background(), "Ann"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := uc.Waiters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ann" {
		t.Fatalf("snapshot not refreshed after mutation: %v", list)
	}
}

func TestCatalogUseCaseItemPagePaginates(t *testing.T) {
	items := &test.ItemRepositoryStub{}
	uc := newCatalogUseCaseForTest(items, &test.WaiterRepositoryStub{})

	for _, name := range []string{"Beef", "Lamb", "Goat"} {
		if err := uc.AddItem(context.Background(), name); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, err := uc.ItemPage(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 2 || page.Total != 3 {
		t.Fatalf("unexpected paging state %+v", page)
	}
	if len(page.Entries) != 1 || page.Entries[0].Name != "Goat" {
		t.Fatalf("unexpected second page %v", page.Entries)
	}
}

func TestCatalogUseCaseRemoveItem(t *testing.T) {
	items := &test.ItemRepositoryStub{}
	uc := newCatalogUseCaseForTest(items, &test.WaiterRepositoryStub{})

	if err := uc.AddItem(context.Background(), "Beef"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := items.Entries[0].ID

	if err := uc.RemoveItem(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := uc.Items(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %v", list)
	}
}
