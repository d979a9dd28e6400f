package util

import (
	"fmt"

	"bewear/internal/domain/entity"
)

// FormatAddress renders a shipping address as a single display line:
//
//	Recipient • street, number[, complement], neighborhood, city - state • CEP: zip
//
// A nil or empty complement leaves no trailing empty segment.
func FormatAddress(address *entity.ShippingAddress) string {
	if address == nil {
		return ""
	}

	complement := ""
	if address.Complement != nil && *address.Complement != "" {
		complement = ", " + *address.Complement
	}

	return fmt.Sprintf("%s • %s, %s%s, %s, %s - %s • CEP: %s",
		address.RecipientName,
		address.Street,
		address.Number,
		complement,
		address.Neighborhood,
		address.City,
		address.State,
		address.ZipCode,
	)
}
