package commands

import (
	"context"
	"time"

	"beads-store/internal/domain/address"
	"beads-store/internal/domain/coupon"
	"beads-store/internal/domain/order"
	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/config"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/queries"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceOrderInput struct {
	CouponCode    *string
	PaymentMethod string
	Address       AddressSelection
}

// AddressSelection resolves in precedence order: explicit payload, then index
// into the saved list, then the default flag.
type AddressSelection struct {
	Explicit *AddressInput
	Index    *int
}

type AddressInput struct {
	FullName    string
	PhoneNumber string
	AddressType string
	Country     string
	Province    string
	District    string
	City        string
	Tole        *string
	Landmark    *string
}

type PlaceOrderResult struct {
	Order *queries.OrderView
	// CouponMessage carries the validation outcome when a coupon code was
	// submitted; an invalid coupon degrades the order to no discount instead
	// of failing it.
	CouponApplied bool
	CouponMessage string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	shipping     config.ShippingConfig
	clock        clock.Clock
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	orderQueries queries.OrderQueries,
	shipping config.ShippingConfig,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		orderQueries: orderQueries,
		shipping:     shipping,
		clock:        clock,
	}
}

func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*PlaceOrderResult, error) {
	paymentMethod, err := order.NewPaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := c.clock.Now()
	reads := c.uow.CommandReads()

	lines, subtotal, err := c.snapshotCart(ctx, reads, userID, now)
	if err != nil {
		return nil, err
	}

	shippingAddress, err := c.resolveShippingAddress(ctx, reads, userID, input.Address)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	var couponCode *string
	couponApplied := false
	couponMessage := ""

	if input.CouponCode != nil && *input.CouponCode != "" {
		validation, err := c.validateCoupon(ctx, reads, userID, *input.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		couponMessage = validation.Message
		if validation.Valid {
			discount = validation.DiscountAmount
			couponApplied = true
			couponCode = input.CouponCode
		}
	}

	orderID := uuid.New()
	entity, err := order.New(
		orderID, userID, lines,
		subtotal, c.shippingCost(subtotal), discount,
		couponCode, shippingAddress, paymentMethod, now,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !couponApplied {
			return nil
		}

		affected, err := tx.Coupons().IncrementUsage(ctx, tx.DB(), *couponCode)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			// A concurrent order exhausted the coupon between validation
			// and commit; the whole transaction rolls back.
			return errs.ErrCouponUsageConflict
		}
		return tx.Coupons().RecordUsage(ctx, tx.DB(), *couponCode, userID, orderID, now)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the persisted view, not the in-memory entity.
	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &PlaceOrderResult{
		Order:         view,
		CouponApplied: couponApplied,
		CouponMessage: couponMessage,
	}, nil
}

// snapshotCart freezes the cart into order lines at their effective prices.
// A line whose product is missing or disabled blocks checkout because its
// price cannot be trusted; stock is checked point-in-time, not reserved.
func (c *orderCommandsImpl) snapshotCart(
	ctx context.Context,
	reads shared.CommandReads,
	userID uuid.UUID,
	now time.Time,
) ([]order.Line, decimal.Decimal, error) {
	items, err := reads.CartItems(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(items) == 0 {
		return nil, decimal.Zero, errs.ErrEmptyCart
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := reads.ProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]shared.ProductSnapshot, len(products))
	offerIDSet := make(map[uuid.UUID]struct{})
	for _, p := range products {
		byID[p.ID] = p
		for _, id := range p.OfferIDs {
			offerIDSet[id] = struct{}{}
		}
	}

	offersByID := make(map[uuid.UUID]pricing.Offer, len(offerIDSet))
	if len(offerIDSet) > 0 {
		offerIDs := make([]uuid.UUID, 0, len(offerIDSet))
		for id := range offerIDSet {
			offerIDs = append(offerIDs, id)
		}
		offers, err := reads.ActiveOffersByIDs(ctx, offerIDs)
		if err != nil {
			return nil, decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, o := range offers {
			offersByID[o.ID] = o
		}
	}

	lines := make([]order.Line, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsAvailable {
			return nil, decimal.Zero, errs.ErrProductUnavailable
		}
		if item.Quantity > product.StockQuantity {
			return nil, decimal.Zero, errs.ErrInsufficientStock
		}

		offers := make([]pricing.Offer, 0, len(product.OfferIDs))
		for _, id := range product.OfferIDs {
			if o, ok := offersByID[id]; ok {
				offers = append(offers, o)
			}
		}
		quote := pricing.Compute(product.OriginalPrice, product.ManualDiscount, offers, now)

		lines = append(lines, order.Line{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: quote.FinalPrice,
			Quantity:  item.Quantity,
		})
		subtotal = subtotal.Add(quote.FinalPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	return lines, subtotal.Round(2), nil
}

// resolveShippingAddress picks the destination by precedence: explicit
// payload, index into the insertion-ordered saved list, then the default
// flag, then the oldest saved address.
func (c *orderCommandsImpl) resolveShippingAddress(
	ctx context.Context,
	reads shared.CommandReads,
	userID uuid.UUID,
	sel AddressSelection,
) (order.ShippingAddress, error) {
	if sel.Explicit != nil {
		return shippingAddressFromInput(*sel.Explicit), nil
	}

	saved, err := reads.AddressesByUserID(ctx, userID)
	if err != nil {
		return order.ShippingAddress{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if sel.Index != nil {
		if *sel.Index < 0 || *sel.Index >= len(saved) {
			return order.ShippingAddress{}, errs.ErrInvalidAddressIndex
		}
		return shippingAddressFromSaved(saved[*sel.Index]), nil
	}

	for _, a := range saved {
		if a.IsDefault {
			return shippingAddressFromSaved(a), nil
		}
	}
	if len(saved) > 0 {
		return shippingAddressFromSaved(saved[0]), nil
	}
	return order.ShippingAddress{}, errs.ErrNoAddressAvailable
}

func shippingAddressFromInput(in AddressInput) order.ShippingAddress {
	addressType := in.AddressType
	if addressType == "" {
		addressType = "Home"
	}
	country := in.Country
	if country == "" {
		country = "Nepal"
	}
	return order.ShippingAddress{
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		AddressType: addressType,
		Country:     country,
		Province:    in.Province,
		District:    in.District,
		City:        in.City,
		Tole:        in.Tole,
		Landmark:    in.Landmark,
	}
}

func shippingAddressFromSaved(a address.Address) order.ShippingAddress {
	return order.ShippingAddress{
		FullName:    a.FullName,
		PhoneNumber: a.PhoneNumber,
		AddressType: a.AddressType,
		Country:     a.Country,
		Province:    a.Province,
		District:    a.District,
		City:        a.City,
		Tole:        a.Tole,
		Landmark:    a.Landmark,
	}
}

func (c *orderCommandsImpl) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Orders().Cancel(ctx, tx.DB(), orderID, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected > 0 {
			return nil
		}

		snapshot, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snapshot.UserID != userID {
			return errs.ErrOrderNotFound
		}
		return errs.ErrOrderNotCancellable
	})
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	next, err := order.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		current, err := order.NewStatus(snapshot.Status)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !current.CanTransitionTo(next) {
			return errs.ErrInvalidStatusTransition
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *orderCommandsImpl) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	next, err := order.NewPaymentStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().OrderByID(ctx, orderID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().UpdatePaymentStatus(ctx, tx.DB(), orderID, next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *orderCommandsImpl) validateCoupon(
	ctx context.Context,
	reads shared.CommandReads,
	userID uuid.UUID,
	code string,
	cartTotal decimal.Decimal,
) (*coupon.Validation, error) {
	entity, err := reads.CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			v := coupon.NotFound(cartTotal)
			return &v, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	usageCount, err := reads.CouponUserUsageCount(ctx, code, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	v := entity.Validate(c.clock.Now(), cartTotal, &usageCount)
	return &v, nil
}

func (c *orderCommandsImpl) shippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if c.shipping.FreeAbove.IsPositive() && subtotal.GreaterThanOrEqual(c.shipping.FreeAbove) {
		return decimal.Zero
	}
	return c.shipping.FlatRate
}
