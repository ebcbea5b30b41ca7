package models

import "testing"

func TestBatchNumberValidate(t *testing.T) {
	valid := []BatchNumber{"B001", "PCM-2026-01", " X1 "}
	for _, b := range valid {
		if err := b.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", b, err)
		}
	}

	invalid := []BatchNumber{"", "   ", "\t\n"}
	for _, b := range invalid {
		if err := b.Validate(); err == nil {
			t.Errorf("Validate(%q) should fail", b)
		}
	}
}

func TestDeletePolicyFor(t *testing.T) {
	retained := []string{"product", "user"}
	for _, entity := range retained {
		if got := DeletePolicyFor(entity); got != Retain {
			t.Errorf("DeletePolicyFor(%q) = %v, want retain", entity, got)
		}
	}

	purged := []string{"customer", "agency", "order"}
	for _, entity := range purged {
		if got := DeletePolicyFor(entity); got != Purge {
			t.Errorf("DeletePolicyFor(%q) = %v, want purge", entity, got)
		}
	}
}
