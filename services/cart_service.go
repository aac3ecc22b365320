package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Sufiyan0000/nike-ecommerce/auth"
	"github.com/Sufiyan0000/nike-ecommerce/models"
	"github.com/Sufiyan0000/nike-ecommerce/repository"
)

// GuestTTL is how long a minted guest identity stays valid.
const GuestTTL = 7 * 24 * time.Hour

// CartService unifies guest and user shopping carts: it resolves the request
// principal, locates the single cart owned by it, and applies mutations with
// idempotent quantity aggregation.
type CartService struct {
	carts    repository.CartRepository
	guests   repository.GuestRepository
	catalog  repository.CatalogRepository
	now      func() time.Time
	newToken func() string
}

func NewCartService(carts repository.CartRepository, guests repository.GuestRepository, catalog repository.CatalogRepository) *CartService {
	return &CartService{
		carts:    carts,
		guests:   guests,
		catalog:  catalog,
		now:      time.Now,
		newToken: auth.NewGuestToken,
	}
}

// ResolvePrincipal maps request credentials to a Principal. An authenticated
// user id wins outright. A presented guest token is honored while the guest
// record exists and has not expired; an expired guest is deleted locally and
// replaced with a fresh one, never surfaced as an error. The second return
// value is the newly minted token, empty unless a guest was created, and must
// be propagated back to the caller.
func (s *CartService) ResolvePrincipal(ctx context.Context, userID, guestToken string) (Principal, string, error) {
	if userID != "" {
		return UserPrincipal(userID), "", nil
	}
	if guestToken != "" {
		guest, err := s.guests.FindByToken(ctx, guestToken)
		switch {
		case err == nil && !guest.Expired(s.now()):
			return GuestPrincipal(guest.Token), "", nil
		case err == nil:
			// Stale session: clean up the guest and its now-orphaned cart,
			// then fall through to minting a replacement.
			if delErr := s.guests.Delete(ctx, guest.Token); delErr != nil {
				log.Printf("failed to delete expired guest: %v", delErr)
			}
			if cart, findErr := s.carts.FindByGuest(ctx, guest.Token); findErr == nil {
				if delErr := s.carts.DeleteCart(ctx, cart.ID); delErr != nil {
					log.Printf("failed to delete expired guest cart: %v", delErr)
				}
			}
		default:
			var notFound *models.NotFoundError
			if !errors.As(err, &notFound) {
				return Principal{}, "", err
			}
		}
	}
	return s.mintGuest(ctx)
}

func (s *CartService) mintGuest(ctx context.Context) (Principal, string, error) {
	guest := &models.Guest{
		Token:     s.newToken(),
		ExpiresAt: s.now().Add(GuestTTL),
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return Principal{}, "", err
	}
	return GuestPrincipal(guest.Token), guest.Token, nil
}

// GetOrCreateCart locates the one cart owned by the principal, creating it
// lazily. A ConflictError from a concurrent first request is retried once
// transparently; the retry finds the row the other request created.
func (s *CartService) GetOrCreateCart(ctx context.Context, p Principal) (*models.Cart, error) {
	cart, err := s.locate(ctx, p)
	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		cart, err = s.locate(ctx, p)
	}
	return cart, err
}

func (s *CartService) locate(ctx context.Context, p Principal) (*models.Cart, error) {
	if p.IsGuest() {
		return s.carts.GetOrCreateByGuest(ctx, p.GuestToken)
	}
	return s.carts.GetOrCreateByUser(ctx, p.UserID)
}

// AddItem aggregates quantity onto the (cart, variant) row and returns the
// refreshed cart.
func (s *CartService) AddItem(ctx context.Context, p Principal, variantID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, models.NewValidationError("quantity", "must be at least 1")
	}
	if variantID == 0 {
		return nil, models.NewValidationError("product_variant_id", "is required")
	}
	if _, err := s.catalog.FindVariantByID(ctx, variantID); err != nil {
		return nil, err
	}
	cart, err := s.GetOrCreateCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.carts.UpsertItem(ctx, cart.ID, variantID, quantity); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, cart.ID)
}

// SetItemQuantity overwrites an item's quantity.
func (s *CartService) SetItemQuantity(ctx context.Context, p Principal, itemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, models.NewValidationError("quantity", "must be at least 1")
	}
	cart, err := s.GetOrCreateCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.carts.SetItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, cart.ID)
}

// RemoveItem deletes one item from the principal's cart.
func (s *CartService) RemoveItem(ctx context.Context, p Principal, itemID uint) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.carts.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, cart.ID)
}

// ClearCart deletes every item; the cart row survives.
func (s *CartService) ClearCart(ctx context.Context, p Principal) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.carts.FindByID(ctx, cart.ID)
}

// MergeGuestCart moves a guest's cart into the user's cart at sign-in or
// sign-up, aggregating quantities, and retires the guest identity. A missing
// or unknown token is a no-op.
func (s *CartService) MergeGuestCart(ctx context.Context, userID, guestToken string) error {
	if guestToken == "" {
		return nil
	}
	if _, err := s.guests.FindByToken(ctx, guestToken); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	guestCart, err := s.carts.FindByGuest(ctx, guestToken)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return s.guests.Delete(ctx, guestToken)
		}
		return err
	}
	userCart, err := s.GetOrCreateCart(ctx, UserPrincipal(userID))
	if err != nil {
		return err
	}
	if err := s.carts.MergeInto(ctx, guestCart.ID, userCart.ID); err != nil {
		return err
	}
	if err := s.carts.DeleteCart(ctx, guestCart.ID); err != nil {
		return err
	}
	return s.guests.Delete(ctx, guestToken)
}
