package invoice

import (
	"testing"

	"pharma-backend/internal/models"
)

func TestAddItemMergesSameBatchAndProduct(t *testing.T) {
	b := NewBuilder()

	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := b.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
	if items[0].Amount != 20 {
		t.Errorf("expected amount 20, got %v", items[0].Amount)
	}
}

func TestAddItemSameBatchDifferentProductStaysSeparate(t *testing.T) {
	b := NewBuilder()

	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(2, "B001", "Ibuprofen 200mg", 15); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if len(b.Items()) != 2 {
		t.Fatalf("expected 2 separate lines, got %d", len(b.Items()))
	}
}

func TestAddItemRejectsBlankBatch(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "   ", "Paracetamol 500mg", 10); err == nil {
		t.Fatal("expected error for blank batch number")
	}
	if len(b.Items()) != 0 {
		t.Errorf("no line should be added on validation failure")
	}
}

func TestTotals(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(2, "B002", "Amoxicillin 250mg", 25); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.SetQuantity(0, 4); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if err := b.SetFreeQuantity(0, 2); err != nil {
		t.Fatalf("SetFreeQuantity: %v", err)
	}
	b.SetDiscount(5)

	totals := b.Totals()
	// gross = 4*10 + 1*25 = 65; free discount = 2*10 = 20; net = 65 - 5 - 20 = 40
	if totals.GrossTotal != 65 {
		t.Errorf("gross: expected 65, got %v", totals.GrossTotal)
	}
	if totals.FreeQuantityDiscount != 20 {
		t.Errorf("free discount: expected 20, got %v", totals.FreeQuantityDiscount)
	}
	if totals.ManualDiscount != 5 {
		t.Errorf("manual discount: expected 5, got %v", totals.ManualDiscount)
	}
	if totals.TotalDiscount != 25 {
		t.Errorf("total discount: expected 25, got %v", totals.TotalDiscount)
	}
	if totals.NetTotal != 40 {
		t.Errorf("net: expected 40, got %v", totals.NetTotal)
	}
}

func TestFreeQuantityDoesNotChangeLineAmount(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.SetQuantity(0, 3); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if err := b.SetFreeQuantity(0, 5); err != nil {
		t.Fatalf("SetFreeQuantity: %v", err)
	}

	if got := b.Items()[0].Amount; got != 30 {
		t.Errorf("amount should stay quantity*rate: expected 30, got %v", got)
	}
}

func TestNegativeQuantitiesClampToZero(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.SetQuantity(0, -3); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if err := b.SetFreeQuantity(0, -1); err != nil {
		t.Fatalf("SetFreeQuantity: %v", err)
	}

	line := b.Items()[0]
	if line.Quantity != 0 || line.FreeQuantity != 0 {
		t.Errorf("expected clamped quantities 0/0, got %d/%d", line.Quantity, line.FreeQuantity)
	}
	if line.Amount != 0 {
		t.Errorf("expected amount 0, got %v", line.Amount)
	}
}

func TestSetQuantityOutOfRange(t *testing.T) {
	b := NewBuilder()
	if err := b.SetQuantity(0, 5); err == nil {
		t.Error("expected error for empty builder")
	}
	if err := b.SetFreeQuantity(2, 1); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if err := b.RemoveItem(0); err == nil {
		t.Error("expected error removing from empty builder")
	}
}

func TestDiscountClampedToGross(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	b.SetDiscount(-5)
	if b.Discount() != 0 {
		t.Errorf("negative discount should clamp to 0, got %v", b.Discount())
	}

	b.SetDiscount(100)
	if b.Discount() != 10 {
		t.Errorf("oversized discount should clamp to gross 10, got %v", b.Discount())
	}

	totals := b.Totals()
	if totals.NetTotal != 0 {
		t.Errorf("net can reach zero but not below: got %v", totals.NetTotal)
	}
}

func TestDiscountReclampedAfterLinesShrink(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(2, "B002", "Amoxicillin 250mg", 30); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	b.SetDiscount(35)

	if err := b.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	totals := b.Totals()
	if totals.ManualDiscount != 10 {
		t.Errorf("discount should re-clamp to the remaining gross 10, got %v", totals.ManualDiscount)
	}
	if totals.NetTotal != 0 {
		t.Errorf("net should never go negative, got %v", totals.NetTotal)
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "A", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(2, "B002", "B", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.AddItem(3, "B003", "C", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := b.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	items := b.Items()
	if len(items) != 2 || items[0].BatchNumber != "B001" || items[1].BatchNumber != "B003" {
		t.Errorf("unexpected lines after removal: %+v", items)
	}
}

func TestBuildRequest(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := b.SetQuantity(0, 3); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if err := b.SetFreeQuantity(0, 1); err != nil {
		t.Fatalf("SetFreeQuantity: %v", err)
	}
	b.SetDiscount(2)

	customerID := 7
	req, err := b.BuildRequest(&customerID, 3, 5, nil)
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	if req.PaymentStatus != models.PaymentPending {
		t.Errorf("new orders must start pending, got %q", req.PaymentStatus)
	}
	if req.PrintCount != 0 {
		t.Errorf("new orders must start with print count 0, got %d", req.PrintCount)
	}
	if req.GrossTotal != 30 || req.DiscountAmount != 12 || req.NetTotal != 18 {
		t.Errorf("unexpected totals: gross=%v discount=%v net=%v",
			req.GrossTotal, req.DiscountAmount, req.NetTotal)
	}
	if len(req.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(req.Items))
	}
	if req.Items[0].Quantity != 3 || req.Items[0].FreeIssueQuantity != 1 {
		t.Errorf("unexpected item quantities: %+v", req.Items[0])
	}
	if req.CustomerID == nil || *req.CustomerID != 7 {
		t.Errorf("customer id not carried through")
	}
}

func TestBuildRequestValidation(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if _, err := b.BuildRequest(nil, 0, 5, nil); err == nil {
		t.Error("expected error for missing agency")
	}
	if _, err := b.BuildRequest(nil, 3, 0, nil); err == nil {
		t.Error("expected error for missing salesperson")
	}

	empty := NewBuilder()
	if _, err := empty.BuildRequest(nil, 3, 5, nil); err == nil {
		t.Error("expected error for empty item list")
	}

	// Walk-in: nil customer is valid
	if _, err := b.BuildRequest(nil, 3, 5, nil); err != nil {
		t.Errorf("nil customer should be accepted: %v", err)
	}
}

func TestReset(t *testing.T) {
	b := NewBuilder()
	if err := b.AddItem(1, "B001", "Paracetamol 500mg", 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	b.SetDiscount(5)

	b.Reset()

	if len(b.Items()) != 0 {
		t.Errorf("items should be cleared")
	}
	if b.Discount() != 0 {
		t.Errorf("discount should be cleared")
	}
	totals := b.Totals()
	if totals.GrossTotal != 0 || totals.NetTotal != 0 {
		t.Errorf("totals should be zero after reset: %+v", totals)
	}
}
