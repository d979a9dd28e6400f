package impl

import (
	"bewear/internal/domain/entity"
	"bewear/internal/usecase"
	"bewear/internal/util"
)

// toCartOutput builds the display-ready cart view. Totals are computed here
// from the current line items, never read from a stored column.
func toCartOutput(cart *entity.Cart) *usecase.CartOutput {
	items := make([]*usecase.CartItemOutput, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemOutput(item))
	}

	output := &usecase.CartOutput{
		ID:             cart.ID,
		Status:         cart.Status.String(),
		Items:          items,
		TotalInCents:   cart.TotalInCents(),
		FormattedTotal: util.FormatCentsToBRL(cart.TotalInCents()),
	}
	if cart.ShippingAddress != nil {
		output.ShippingAddress = toAddressOutput(cart.ShippingAddress)
		output.FormattedAddress = util.FormatAddress(cart.ShippingAddress)
	}

	return output
}

// emptyCartOutput is the view for a user who never added anything (or whose
// previous cart was finalized): zero items, zero total, no cart row behind it.
func emptyCartOutput() *usecase.CartOutput {
	return &usecase.CartOutput{
		Status:         entity.CartStatusOpen.String(),
		Items:          []*usecase.CartItemOutput{},
		TotalInCents:   0,
		FormattedTotal: util.FormatCentsToBRL(0),
	}
}

func toCartItemOutput(item *entity.CartItem) *usecase.CartItemOutput {
	return &usecase.CartItemOutput{
		ID:                item.ID,
		ProductVariantID:  item.ProductVariantID,
		ProductName:       item.ProductName,
		VariantName:       item.VariantName,
		ImageURL:          util.SanitizeImageURL(item.ImageURL),
		Quantity:          item.Quantity,
		PriceInCents:      item.PriceInCents,
		SubtotalInCents:   item.SubtotalInCents(),
		FormattedPrice:    util.FormatCentsToBRL(item.PriceInCents),
		FormattedSubtotal: util.FormatCentsToBRL(item.SubtotalInCents()),
	}
}

func toAddressOutput(address *entity.ShippingAddress) *usecase.AddressOutput {
	return &usecase.AddressOutput{
		ID:            address.ID,
		RecipientName: address.RecipientName,
		Street:        address.Street,
		Number:        address.Number,
		Complement:    address.Complement,
		Neighborhood:  address.Neighborhood,
		City:          address.City,
		State:         address.State,
		ZipCode:       address.ZipCode,
		Email:         address.Email,
		CPF:           address.CPF,
		Phone:         address.Phone,
		Formatted:     util.FormatAddress(address),
		CreatedAt:     address.CreatedAt,
	}
}

func toVariantOutput(variant *entity.ProductVariant) *usecase.VariantOutput {
	return &usecase.VariantOutput{
		ID:             variant.ID,
		ProductID:      variant.ProductID,
		ProductName:    variant.ProductName,
		Name:           variant.Name,
		Slug:           variant.Slug,
		Color:          variant.Color,
		PriceInCents:   variant.PriceInCents,
		FormattedPrice: util.FormatCentsToBRL(variant.PriceInCents),
		ImageURL:       util.SanitizeImageURL(variant.ImageURL),
	}
}

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	variants := make([]*usecase.VariantOutput, 0, len(product.Variants))
	for _, variant := range product.Variants {
		variants = append(variants, toVariantOutput(variant))
	}

	return &usecase.ProductOutput{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Variants:    variants,
	}
}
