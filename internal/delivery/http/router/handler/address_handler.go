package handler

import (
	"log/slog"
	"net/http"

	"bewear/internal/delivery/http/response"
	"bewear/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for shipping-address handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAddressRequest struct {
	RecipientName string  `json:"recipient_name" validate:"required"`
	Street        string  `json:"street" validate:"required"`
	Number        string  `json:"number" validate:"required"`
	Complement    *string `json:"complement"`
	Neighborhood  string  `json:"neighborhood" validate:"required"`
	City          string  `json:"city" validate:"required"`
	State         string  `json:"state" validate:"required"`
	ZipCode       string  `json:"zip_code" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	CPF           string  `json:"cpf" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
}

// CreateAddress registers a new shipping address for the user.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, &usecase.CreateAddressInput{
		RecipientName: req.RecipientName,
		Street:        req.Street,
		Number:        req.Number,
		Complement:    req.Complement,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Email:         req.Email,
		CPF:           req.CPF,
		Phone:         req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// ListAddresses returns the user's shipping addresses, newest first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}
