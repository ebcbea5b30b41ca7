package models

// DeletePolicy says what DELETE means for an entity type. Entities referenced
// by historical orders (products, users) are retained with is_active=false so
// past invoices stay printable; the rest are purged outright.
type DeletePolicy int

const (
	Retain DeletePolicy = iota
	Purge
)

func (p DeletePolicy) String() string {
	if p == Retain {
		return "retain"
	}
	return "purge"
}

// DeletePolicyFor maps an entity name to its delete behavior. Repositories
// implement the matching SQL verb; this table is the single statement of the
// asymmetry.
func DeletePolicyFor(entity string) DeletePolicy {
	switch entity {
	case "product", "user":
		return Retain
	default: // customer, agency, order
		return Purge
	}
}
