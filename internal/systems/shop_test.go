package systems

import (
	"errors"
	"ethereplodor-server/internal/domain"
	"math/rand"
	"testing"
)

func testShop() *Shop {
	return NewShop([]domain.Item{*goldTemplate(), potion, sword, gem}, rand.New(rand.NewSource(3)))
}

func TestNewShop(t *testing.T) {
	shop := testShop()

	if _, ok := shop.Entry(domain.GoldItemID); ok {
		t.Error("gold must not be for sale")
	}
	if len(shop.List()) != 3 {
		t.Errorf("entries = %d", len(shop.List()))
	}

	g, _ := shop.Entry(gem.ID)
	if g.Stock != UnlimitedStock || g.Price != 22 {
		t.Errorf("gem entry %+v", g)
	}
	s, _ := shop.Entry(sword.ID)
	if s.Stock < MinStock || s.Stock > MaxStock || s.Price != 135 {
		t.Errorf("sword entry %+v", s)
	}
}

func TestShop_Buy(t *testing.T) {
	t.Run("Debits gold and stock", func(t *testing.T) {
		shop := testShop()
		inv := domain.NewInventory(0)
		inv.AddGold(1000)
		before, _ := shop.Entry(sword.ID)

		if err := shop.Buy(sword.ID, 1, inv); err != nil {
			t.Fatal(err)
		}
		after, _ := shop.Entry(sword.ID)
		if inv.Gold != 865 || !inv.HasItem(sword.ID, 1) || after.Stock != before.Stock-1 {
			t.Errorf("gold %d stock %d -> %d", inv.Gold, before.Stock, after.Stock)
		}
	})

	t.Run("Not enough gold changes nothing", func(t *testing.T) {
		shop := testShop()
		inv := domain.NewInventory(0)
		inv.AddGold(100)
		before, _ := shop.Entry(sword.ID)

		if err := shop.Buy(sword.ID, 1, inv); !errors.Is(err, ErrNotEnoughGold) {
			t.Errorf("err = %v", err)
		}
		after, _ := shop.Entry(sword.ID)
		if inv.Gold != 100 || inv.HasItem(sword.ID, 1) || after.Stock != before.Stock {
			t.Error("failed purchase mutated state")
		}
	})

	t.Run("Stock runs out", func(t *testing.T) {
		shop := testShop()
		inv := domain.NewInventory(0)
		inv.AddGold(10000)
		entry, _ := shop.Entry(sword.ID)

		if err := shop.Buy(sword.ID, entry.Stock+1, inv); !errors.Is(err, ErrOutOfStock) {
			t.Errorf("err = %v", err)
		}
		if err := shop.Buy(sword.ID, entry.Stock, inv); err != nil {
			t.Fatal(err)
		}
		if err := shop.Buy(sword.ID, 1, inv); !errors.Is(err, ErrOutOfStock) {
			t.Errorf("empty stock err = %v", err)
		}
	})

	t.Run("Materials are unlimited", func(t *testing.T) {
		shop := testShop()
		inv := domain.NewInventory(0)
		inv.AddGold(22 * 500)
		if err := shop.Buy(gem.ID, 500, inv); err != nil {
			t.Fatal(err)
		}
		if e, _ := shop.Entry(gem.ID); e.Stock != UnlimitedStock {
			t.Errorf("stock = %d", e.Stock)
		}
	})

	t.Run("Unknown item and bad quantity", func(t *testing.T) {
		shop := testShop()
		inv := domain.NewInventory(0)
		if err := shop.Buy("nope", 1, inv); !errors.Is(err, ErrNotForSale) {
			t.Errorf("err = %v", err)
		}
		if err := shop.Buy(gem.ID, 0, inv); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestShop_Sell(t *testing.T) {
	shop := testShop()
	inv := domain.NewInventory(0)
	inv.AddItem(gem, 3)

	earned, err := shop.Sell(gem.ID, 3, inv)
	if err != nil {
		t.Fatal(err)
	}
	// floor(15 * 0.5 * 3)
	if earned != 22 || inv.Gold != 22 || inv.HasItem(gem.ID, 1) {
		t.Errorf("earned %d gold %d", earned, inv.Gold)
	}

	if _, err := shop.Sell(gem.ID, 1, inv); !errors.Is(err, ErrNotEnoughItems) {
		t.Errorf("err = %v", err)
	}
}
