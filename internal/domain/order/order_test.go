//go:build unit

package order_test

import (
	"testing"
	"time"

	"beads-store/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testAddress() order.ShippingAddress {
	return order.ShippingAddress{
		FullName:    "Sita Sharma",
		PhoneNumber: "9800000000",
		AddressType: "Home",
		Country:     "Nepal",
		Province:    "Bagmati",
		District:    "Kathmandu",
		City:        "Kathmandu",
	}
}

func testLines() []order.Line {
	return []order.Line{
		{ProductID: uuid.New(), Name: "Glass beads", UnitPrice: dec("250"), Quantity: 2},
		{ProductID: uuid.New(), Name: "Silk thread", UnitPrice: dec("99.50"), Quantity: 1},
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("freezes totals and initial lifecycle", func(t *testing.T) {
		o, err := order.New(uuid.New(), uuid.New(), testLines(),
			dec("599.50"), dec("100"), dec("150"), nil, testAddress(), order.PaymentMethodCOD, now)
		require.NoError(t, err)

		assert.True(t, o.Total.Equal(dec("549.50")), "total = subtotal + shipping - discount")
		assert.Equal(t, order.StatusPending, o.Status)
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus)
		assert.Equal(t, now, o.CreatedAt)
	})

	t.Run("total floors at zero", func(t *testing.T) {
		o, err := order.New(uuid.New(), uuid.New(), testLines(),
			dec("100"), dec("0"), dec("500"), nil, testAddress(), order.PaymentMethodCOD, now)
		require.NoError(t, err)
		assert.True(t, o.Total.Equal(decimal.Zero))
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.New(uuid.New(), uuid.New(), nil,
			dec("0"), dec("0"), dec("0"), nil, testAddress(), order.PaymentMethodCOD, now)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		lines := testLines()
		lines[0].Quantity = 0
		_, err := order.New(uuid.New(), uuid.New(), lines,
			dec("100"), dec("0"), dec("0"), nil, testAddress(), order.PaymentMethodCOD, now)
		assert.ErrorIs(t, err, order.ErrInvalidLine)
	})

	t.Run("rejects missing recipient", func(t *testing.T) {
		addr := testAddress()
		addr.PhoneNumber = ""
		_, err := order.New(uuid.New(), uuid.New(), testLines(),
			dec("100"), dec("0"), dec("0"), nil, addr, order.PaymentMethodCOD, now)
		assert.ErrorIs(t, err, order.ErrMissingRecipient)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("cancellable only while pending or processing", func(t *testing.T) {
		assert.True(t, order.StatusPending.Cancellable())
		assert.True(t, order.StatusProcessing.Cancellable())
		assert.False(t, order.StatusShipped.Cancellable())
		assert.False(t, order.StatusDelivered.Cancellable())
		assert.False(t, order.StatusCancelled.Cancellable())
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		for _, next := range []order.Status{
			order.StatusPending, order.StatusProcessing, order.StatusShipped,
			order.StatusDelivered, order.StatusCancelled,
		} {
			assert.False(t, order.StatusDelivered.CanTransitionTo(next))
			assert.False(t, order.StatusCancelled.CanTransitionTo(next))
		}
	})

	t.Run("forward transitions", func(t *testing.T) {
		assert.True(t, order.StatusPending.CanTransitionTo(order.StatusProcessing))
		assert.True(t, order.StatusProcessing.CanTransitionTo(order.StatusShipped))
		assert.True(t, order.StatusShipped.CanTransitionTo(order.StatusDelivered))
		assert.False(t, order.StatusShipped.CanTransitionTo(order.StatusProcessing))
	})

	t.Run("unknown status strings rejected", func(t *testing.T) {
		_, err := order.NewStatus("returned")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)

		_, err = order.NewPaymentStatus("charged")
		assert.ErrorIs(t, err, order.ErrInvalidPaymentStatus)

		_, err = order.NewPaymentMethod("paypal")
		assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
	})
}
