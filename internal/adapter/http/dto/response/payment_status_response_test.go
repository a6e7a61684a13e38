package response

import (
	"testing"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
)

func TestFromOrderPaymentStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending order", func(t *testing.T) {
		o := entities.Order{
			ID:                "ord-1",
			PaymentID:         "999",
			Status:            entities.OrderStatusPending,
			PriceBRL:          5.00,
			PurpleCoinsAmount: 100,
			CreatedAt:         now,
		}
		res := FromOrderPaymentStatus(o)
		if !res.Success {
			t.Fatalf("expected success")
		}
		if res.Payment.ID != "999" || res.Payment.Status != "pending" {
			t.Fatalf("unexpected payment body: %+v", res.Payment)
		}
		if res.Payment.PurpleCoinCode != nil {
			t.Fatalf("expected nil code on pending order, got %v", *res.Payment.PurpleCoinCode)
		}
		if res.Payment.PaidAt != nil {
			t.Fatalf("expected nil paid_at on pending order")
		}
		if res.Payment.Amount != 5.00 || res.Payment.PurpleCoins != 100 {
			t.Fatalf("unexpected amounts: %+v", res.Payment)
		}
	})

	t.Run("paid order", func(t *testing.T) {
		paidAt := now
		o := entities.Order{
			ID:             "ord-1",
			PaymentID:      "999",
			Status:         entities.OrderStatusPaid,
			PurpleCoinCode: "PC100_ABCD1234",
			PaidAt:         &paidAt,
			CreatedAt:      now,
		}
		res := FromOrderPaymentStatus(o)
		if res.Payment.PurpleCoinCode == nil || *res.Payment.PurpleCoinCode != "PC100_ABCD1234" {
			t.Fatalf("expected code, got %+v", res.Payment.PurpleCoinCode)
		}
		if res.Payment.PaidAt == nil || !res.Payment.PaidAt.Equal(now) {
			t.Fatalf("unexpected paid_at: %+v", res.Payment.PaidAt)
		}
	})
}

func TestFromSweep(t *testing.T) {
	res := FromSweep(nil)
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Expired == nil || len(res.Expired) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res.Expired)
	}

	res = FromSweep([]string{"111"})
	if len(res.Expired) != 1 || res.Expired[0] != "111" {
		t.Fatalf("unexpected expired list: %v", res.Expired)
	}
}
