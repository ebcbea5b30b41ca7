package models

import "testing"

func TestFormatOrderID(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "O00001"},
		{7, "O00007"},
		{42, "O00042"},
		{99999, "O99999"},
		{123456, "O123456"},
	}
	for _, tt := range tests {
		if got := FormatOrderID(tt.id); got != tt.want {
			t.Errorf("FormatOrderID(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestPrintLabel(t *testing.T) {
	if got := PrintLabel(0); got != "Original" {
		t.Errorf("PrintLabel(0) = %q, want Original", got)
	}
	if got := PrintLabel(1); got != "Copy (1)" {
		t.Errorf("PrintLabel(1) = %q, want Copy (1)", got)
	}
	if got := PrintLabel(3); got != "Copy (3)" {
		t.Errorf("PrintLabel(3) = %q, want Copy (3)", got)
	}
}

func TestValidatePaymentTransition(t *testing.T) {
	date := "2026-08-31"
	badDate := "31/08/2026"

	if err := ValidatePaymentTransition(PaymentPending, PaymentPaid, &date); err != nil {
		t.Errorf("pending->paid with valid date should pass: %v", err)
	}
	if err := ValidatePaymentTransition(PaymentPending, PaymentPaid, nil); err == nil {
		t.Error("pending->paid without a date must fail")
	}
	if err := ValidatePaymentTransition(PaymentPending, PaymentPaid, &badDate); err == nil {
		t.Error("pending->paid with a malformed date must fail")
	}
	// paid->pending never requires a date; the stored paid date is kept
	if err := ValidatePaymentTransition(PaymentPaid, PaymentPending, nil); err != nil {
		t.Errorf("paid->pending should pass: %v", err)
	}
	if err := ValidatePaymentTransition(PaymentPending, PaymentCancelled, nil); err == nil {
		t.Error("cancelled is reserved and must be rejected as a target")
	}
	if err := ValidatePaymentTransition(PaymentPending, "refunded", &date); err == nil {
		t.Error("unknown statuses must be rejected")
	}
}
