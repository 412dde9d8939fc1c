// internal/domain/order/payload.go
package order

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DeliveryService identifies how a stock order reaches the recipient
type DeliveryService string

const (
	ServiceSelfPickup DeliveryService = "SELF_PICKUP"
	ServiceCDEK       DeliveryService = "CDEK"
)

// Recipient identifies who receives the delivery
type Recipient struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required,min=10"`
}

// DeliveryPoint is the pickup point chosen in the delivery provider widget
type DeliveryPoint struct {
	Address string `json:"address" validate:"required"`
	Code    string `json:"code" validate:"required"`
}

// Delivery is the delivery part of an order submission
type Delivery struct {
	Recipient Recipient       `json:"recipient"`
	Service   DeliveryService `json:"service" validate:"required,oneof=SELF_PICKUP CDEK"`
	Point     *DeliveryPoint  `json:"point"`
}

// CreateOrderPayload is the order creation request sent to the remote
// commerce API. Preorder submissions carry no delivery: the address flow
// runs after the items arrive at the warehouse.
type CreateOrderPayload struct {
	CreditIDs    []string  `json:"creditIds"`
	Delivery     *Delivery `json:"delivery"`
	SaveDelivery bool      `json:"saveDelivery"`
}

var phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

var deliveryValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the delivery form rules: recipient fields, a known
// service, and a chosen point when the service delivers to one.
func (d *Delivery) Validate() error {
	if err := deliveryValidator.Struct(d); err != nil {
		return fmt.Errorf("invalid delivery: %w", err)
	}
	if !phonePattern.MatchString(d.Recipient.Phone) {
		return fmt.Errorf("invalid delivery: recipient phone %q is not a valid phone number", d.Recipient.Phone)
	}
	if d.Service == ServiceCDEK && d.Point == nil {
		return fmt.Errorf("invalid delivery: %s requires a delivery point", ServiceCDEK)
	}
	return nil
}

// BuildPayload assembles the submission payload for the composed order.
// Stock orders require a valid delivery; preorder orders must not carry one
// and never save a delivery profile.
func BuildPayload(items []Item, creditIDs []string, delivery *Delivery, saveDelivery bool) (CreateOrderPayload, error) {
	if creditIDs == nil {
		creditIDs = []string{}
	}

	if Preorder(items) != nil {
		return CreateOrderPayload{
			CreditIDs:    creditIDs,
			Delivery:     nil,
			SaveDelivery: false,
		}, nil
	}

	if delivery == nil {
		return CreateOrderPayload{}, fmt.Errorf("delivery is required for a stock order")
	}
	if err := delivery.Validate(); err != nil {
		return CreateOrderPayload{}, err
	}

	return CreateOrderPayload{
		CreditIDs:    creditIDs,
		Delivery:     delivery,
		SaveDelivery: saveDelivery,
	}, nil
}
