// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Category is the closed set of garment categories.
type Category string

// Garment category constants.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryDress     Category = "dress"
	CategoryOuterwear Category = "outerwear"
	CategoryAccessory Category = "accessory"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryShoes,
	CategoryDress,
	CategoryOuterwear,
	CategoryAccessory,
}

// ParseCategory converts a raw string into a Category, accepting common
// aliases produced by the vision service.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "top", "tops", "shirt", "Top":
		return CategoryTop, nil
	case "bottom", "bottoms", "pants", "Bottom":
		return CategoryBottom, nil
	case "shoes", "shoe", "footwear", "Shoes":
		return CategoryShoes, nil
	case "dress", "dresses", "Dress":
		return CategoryDress, nil
	case "outerwear", "jacket", "coat", "Outerwear":
		return CategoryOuterwear, nil
	case "accessory", "accessories", "Accessory":
		return CategoryAccessory, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryShoes, CategoryDress, CategoryOuterwear, CategoryAccessory:
		return true
	}
	return false
}

// String returns the category as a plain string.
func (c Category) String() string {
	return string(c)
}
