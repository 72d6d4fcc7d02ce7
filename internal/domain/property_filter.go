package domain

import "strconv"

// PropertyFilter represents the structured narrowing options for listing
// queries. Zero values mean "no constraint on that dimension"; all provided
// constraints apply conjunctively.
type PropertyFilter struct {
	Status       Status
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
}

// IsZero reports whether the filter carries no constraints at all.
func (f PropertyFilter) IsZero() bool {
	return f.Status == "" && f.PropertyType == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Matches reports whether an active listing satisfies every provided
// constraint. Price bounds compare numerically against the stored decimal
// string; a listing whose price does not parse never satisfies a price bound.
func (f PropertyFilter) Matches(p Property) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return false
		}
		if f.MinPrice != nil && price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			return false
		}
	}
	return true
}
