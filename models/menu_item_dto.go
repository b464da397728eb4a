// Package models holds the wire-level DTOs exchanged with clients. DTOs never
// carry a populated back-reference (that would make the JSON cyclic); the
// back-reference is reconstructed server-side after conversion.
package models

// MenuItemDto mirrors entity.MenuItem on the wire. Id and ItemPrice are
// pointers so "absent" is distinguishable from zero: creation requests must
// not pre-assign an id, and a missing price is a validation error rather than
// a free item.
type MenuItemDto struct {
	Id             *uint               `json:"id,omitempty"`
	Name           string              `json:"name"`
	ItemPrice      *float64            `json:"itemPrice,omitempty"`
	AllowedOptions []MenuItemOptionDto `json:"allowedOptions,omitempty"`
}

// MenuItemOptionDto mirrors entity.MenuItemOption on the wire, minus the
// back-reference.
type MenuItemOptionDto struct {
	Id         *uint    `json:"id,omitempty"`
	Name       string   `json:"name"`
	DeltaPrice *float64 `json:"deltaPrice,omitempty"`
}
