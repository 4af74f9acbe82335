// Package pubid provides the domain core of public identifier generation:
// the closed set of entity types, the mask grammar, and the contracts
// implemented by the infrastructure layer.
package pubid

import "fmt"

// EntityType identifies the kind of record a public identifier is issued for.
// It is a closed enumeration; every counter and mask configuration is scoped
// by (tenant, EntityType).
type EntityType string

const (
	EntityAuction         EntityType = "auction"
	EntityLot             EntityType = "lot"
	EntityAsset           EntityType = "asset"
	EntityAuctioneer      EntityType = "auctioneer"
	EntitySeller          EntityType = "seller"
	EntityUser            EntityType = "user"
	EntityCategory        EntityType = "category"
	EntitySubcategory     EntityType = "subcategory"
	EntityJudicialProcess EntityType = "judicial_process"
	EntityDirectSaleOffer EntityType = "direct_sale_offer"
)

// fallbackPrefixes maps each entity type to the short code used by
// fallback identifiers. One entry per EntityType, no dynamic dispatch.
var fallbackPrefixes = map[EntityType]string{
	EntityAuction:         "AUC",
	EntityLot:             "LOTE",
	EntityAsset:           "BEM",
	EntityAuctioneer:      "LEI",
	EntitySeller:          "COM",
	EntityUser:            "USR",
	EntityCategory:        "CAT",
	EntitySubcategory:     "SUB",
	EntityJudicialProcess: "PJ",
	EntityDirectSaleOffer: "VD",
}

// AllEntityTypes returns every member of the enumeration in a stable order.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityAuction,
		EntityLot,
		EntityAsset,
		EntityAuctioneer,
		EntitySeller,
		EntityUser,
		EntityCategory,
		EntitySubcategory,
		EntityJudicialProcess,
		EntityDirectSaleOffer,
	}
}

// Valid reports whether e is a member of the closed enumeration.
func (e EntityType) Valid() bool {
	_, ok := fallbackPrefixes[e]
	return ok
}

// Prefix returns the fixed short code used for fallback identifiers.
// Returns "ID" for unknown types so that callers formatting diagnostics
// never produce an empty prefix; validation happens elsewhere.
func (e EntityType) Prefix() string {
	if p, ok := fallbackPrefixes[e]; ok {
		return p
	}
	return "ID"
}

func (e EntityType) String() string {
	return string(e)
}

// ParseEntityType converts user input into an EntityType.
// Returns ErrInvalidEntityType for values outside the enumeration.
func ParseEntityType(s string) (EntityType, error) {
	e := EntityType(s)
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityType, s)
	}
	return e, nil
}
