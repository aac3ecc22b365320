package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

func newTestAddress(userID string, addrType models.AddressType, isDefault bool) *models.Address {
	return &models.Address{
		UserID:     userID,
		Type:       addrType,
		Line1:      "1 Main St",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62704",
		IsDefault:  isDefault,
	}
}

func TestSaveEnforcesDefaultExclusivity(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "user-1")

	x := newTestAddress("user-1", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, x); err != nil {
		t.Fatalf("Save x: %v", err)
	}
	y := newTestAddress("user-1", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, y); err != nil {
		t.Fatalf("Save y: %v", err)
	}

	gotX, err := repo.FindByID(ctx, x.ID)
	if err != nil {
		t.Fatalf("FindByID x: %v", err)
	}
	gotY, err := repo.FindByID(ctx, y.ID)
	if err != nil {
		t.Fatalf("FindByID y: %v", err)
	}
	if gotX.IsDefault {
		t.Error("x must lose its default flag when y becomes default")
	}
	if !gotY.IsDefault {
		t.Error("y must be the default")
	}
}

// The demotion ignores address type: a default billing address unseats a
// default shipping address for the same user.
func TestSaveDefaultExclusivityCrossesTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "user-1")

	shipping := newTestAddress("user-1", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, shipping); err != nil {
		t.Fatalf("Save shipping: %v", err)
	}
	billing := newTestAddress("user-1", models.AddressTypeBilling, true)
	if err := repo.Save(ctx, billing); err != nil {
		t.Fatalf("Save billing: %v", err)
	}

	gotShipping, err := repo.FindByID(ctx, shipping.ID)
	if err != nil {
		t.Fatalf("FindByID shipping: %v", err)
	}
	if gotShipping.IsDefault {
		t.Error("default billing save must also demote the shipping default")
	}
}

func TestSaveDefaultExclusivityScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "user-1")
	createTestUser(t, db, "user-2")

	mine := newTestAddress("user-1", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, mine); err != nil {
		t.Fatalf("Save mine: %v", err)
	}
	theirs := newTestAddress("user-2", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, theirs); err != nil {
		t.Fatalf("Save theirs: %v", err)
	}

	gotMine, err := repo.FindByID(ctx, mine.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !gotMine.IsDefault {
		t.Error("another user's default must not demote mine")
	}
}

func TestSaveFalseDefaultNeverPromotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "user-1")

	x := newTestAddress("user-1", models.AddressTypeShipping, true)
	if err := repo.Save(ctx, x); err != nil {
		t.Fatalf("Save x: %v", err)
	}
	x.IsDefault = false
	if err := repo.Save(ctx, x); err != nil {
		t.Fatalf("Save x update: %v", err)
	}

	addresses, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for _, address := range addresses {
		if address.IsDefault {
			t.Errorf("address %d still default; unsetting never auto-promotes", address.ID)
		}
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	createTestUser(t, db, "user-1")
	createTestUser(t, db, "user-2")

	address := newTestAddress("user-1", models.AddressTypeBilling, false)
	if err := repo.Save(ctx, address); err != nil {
		t.Fatalf("Save: %v", err)
	}

	err := repo.Delete(ctx, "user-2", address.ID)
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
	if err := repo.Delete(ctx, "user-1", address.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}
