package entities

// CoinPackage is a purchasable Purple Coins bundle.
//
// The catalog is static: packages are defined at compile time and never
// persisted. Orders copy the coin amount and price at creation time, so a
// later catalog edit does not retroactively change existing orders.

type CoinPackage struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	PurpleCoins     int     `json:"purple_coins"`
	PriceBRL        float64 `json:"price"`
	DiscountPercent int     `json:"discount"`
	Description     string  `json:"description"`
}

var coinPackages = map[string]CoinPackage{
	"starter": {
		Type:            "starter",
		Name:            "Starter Pack",
		PurpleCoins:     100,
		PriceBRL:        5.00,
		DiscountPercent: 0,
		Description:     "Pacote inicial perfeito para começar",
	},
	"popular": {
		Type:            "popular",
		Name:            "Popular Pack",
		PurpleCoins:     500,
		PriceBRL:        20.00,
		DiscountPercent: 20,
		Description:     "Nosso pacote mais vendido com 20% de desconto",
	},
	"premium": {
		Type:            "premium",
		Name:            "Premium Pack",
		PurpleCoins:     1000,
		PriceBRL:        35.00,
		DiscountPercent: 30,
		Description:     "Pacote premium com 30% de desconto",
	},
	"ultimate": {
		Type:            "ultimate",
		Name:            "Ultimate Pack",
		PurpleCoins:     2500,
		PriceBRL:        75.00,
		DiscountPercent: 40,
		Description:     "Pacote ultimate com 40% de desconto",
	},
}

// packageOrder keeps catalog listings stable (maps iterate randomly).
var packageOrder = []string{"starter", "popular", "premium", "ultimate"}

// PackageByType looks up a bundle by its catalog key.
func PackageByType(packageType string) (CoinPackage, bool) {
	p, ok := coinPackages[packageType]
	return p, ok
}

// AllPackages returns the catalog in its display order.
func AllPackages() []CoinPackage {
	out := make([]CoinPackage, 0, len(packageOrder))
	for _, key := range packageOrder {
		out = append(out, coinPackages[key])
	}
	return out
}
