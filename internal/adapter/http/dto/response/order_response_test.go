package response

import (
	"testing"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"
)

func TestFromCreatedOrder(t *testing.T) {
	pkg, ok := entities.PackageByType("popular")
	if !ok {
		t.Fatalf("catalog missing popular package")
	}
	o := entities.Order{
		ID:        "ord-1",
		PaymentID: "999",
		PriceBRL:  pkg.PriceBRL,
	}
	charge := interfaces.PixCharge{
		PaymentID:    "999",
		PixCode:      "00020126pix",
		QRCodeBase64: "data:image/png;base64,abc",
	}

	res := FromCreatedOrder(o, pkg, charge)
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Order.ID != "ord-1" {
		t.Fatalf("unexpected order id: %s", res.Order.ID)
	}
	if res.Order.Package.Type != "popular" || res.Order.Package.PurpleCoins != 500 || res.Order.Package.Discount != 20 {
		t.Fatalf("unexpected package body: %+v", res.Order.Package)
	}
	if res.Order.Payment.ID != "999" || res.Order.Payment.QRCode != charge.QRCodeBase64 {
		t.Fatalf("unexpected payment body: %+v", res.Order.Payment)
	}
	if res.Order.Payment.Amount != 20.00 {
		t.Fatalf("unexpected amount: %v", res.Order.Payment.Amount)
	}
}
