package systems

import (
	"errors"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Pricing and stock rules.
const (
	BuyMarkup      = 1.5
	SellRatio      = 0.5
	UnlimitedStock = -1
	MinStock       = 1
	MaxStock       = 5
)

var (
	ErrNotForSale     = errors.New("item not sold here")
	ErrOutOfStock     = errors.New("not enough stock")
	ErrNotEnoughGold  = errors.New("not enough gold")
	ErrInvalidAmount  = errors.New("quantity must be positive")
	ErrNotEnoughItems = errors.New("not enough items to sell")
)

// ShopEntry is one line of the shop.
type ShopEntry struct {
	Item  domain.Item `json:"item"`
	Price int         `json:"price"`
	Stock int         `json:"stock"`
}

// Shop sells every catalog item except currency.
type Shop struct {
	entries *domain.Registry[*ShopEntry]
	log     *logrus.Entry
}

// NewShop prices and stocks the catalog. Materials never run out.
func NewShop(items []domain.Item, rng *rand.Rand) *Shop {
	s := &Shop{
		entries: domain.NewRegistry[*ShopEntry](),
		log:     logger.Component("shop"),
	}
	for _, it := range items {
		if it.ID == domain.GoldItemID {
			continue
		}
		stock := UnlimitedStock
		if it.Type != enums.ItemTypeMaterial {
			stock = MinStock + rng.Intn(MaxStock-MinStock+1)
		}
		s.entries.Add(it.ID, &ShopEntry{
			Item:  it.Clone(),
			Price: BuyPrice(it),
			Stock: stock,
		})
	}
	return s
}

// BuyPrice is floor(value * 1.5).
func BuyPrice(it domain.Item) int {
	return int(float64(it.Value) * BuyMarkup)
}

// SellPrice is floor(value * 0.5 * quantity).
func SellPrice(it domain.Item, quantity int) int {
	return int(float64(it.Value) * SellRatio * float64(quantity))
}

// Buy debits gold, then adds items. Nothing changes on failure.
func (s *Shop) Buy(itemID string, quantity int, inv *domain.Inventory) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	entry, ok := s.entries.Get(itemID)
	if !ok {
		return fmt.Errorf("buy %s: %w", itemID, ErrNotForSale)
	}
	if entry.Stock != UnlimitedStock && entry.Stock < quantity {
		return fmt.Errorf("buy %s x%d: %w", itemID, quantity, ErrOutOfStock)
	}

	cost := entry.Price * quantity
	if inv.Gold < cost {
		return fmt.Errorf("buy %s x%d for %d: %w", itemID, quantity, cost, ErrNotEnoughGold)
	}
	if !inv.AddItem(entry.Item, quantity) {
		return fmt.Errorf("buy %s: %w", itemID, ErrInventoryFull)
	}
	inv.RemoveGold(cost)

	if entry.Stock != UnlimitedStock {
		entry.Stock -= quantity
	}

	s.log.WithFields(logrus.Fields{
		"item_id":  itemID,
		"quantity": quantity,
		"cost":     cost,
	}).Debug("Bought")
	return nil
}

// Sell removes items and credits floor(value*0.5*quantity). Returns the gold earned.
func (s *Shop) Sell(itemID string, quantity int, inv *domain.Inventory) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidAmount
	}
	item, ok := inv.Lookup(itemID)
	if !ok || !inv.HasItem(itemID, quantity) {
		return 0, fmt.Errorf("sell %s x%d: %w", itemID, quantity, ErrNotEnoughItems)
	}

	earned := SellPrice(item, quantity)
	inv.RemoveItem(itemID, quantity)
	inv.AddGold(earned)

	s.log.WithFields(logrus.Fields{
		"item_id":  itemID,
		"quantity": quantity,
		"earned":   earned,
	}).Debug("Sold")
	return earned, nil
}

// Entry returns a copy of one shop line.
func (s *Shop) Entry(itemID string) (ShopEntry, bool) {
	e, ok := s.entries.Get(itemID)
	if !ok {
		return ShopEntry{}, false
	}
	return ShopEntry{Item: e.Item.Clone(), Price: e.Price, Stock: e.Stock}, true
}

// List copies the shop lines in catalog order.
func (s *Shop) List() []ShopEntry {
	live := s.entries.Snapshot()
	out := make([]ShopEntry, 0, len(live))
	for _, e := range live {
		out = append(out, ShopEntry{Item: e.Item.Clone(), Price: e.Price, Stock: e.Stock})
	}
	return out
}
