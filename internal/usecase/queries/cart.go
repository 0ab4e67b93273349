package queries

import (
	"context"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineData is a cart line joined with its product and the product's offer
// rules. Product is nil when the referenced row no longer exists.
type CartLineData struct {
	ProductID uuid.UUID
	Quantity  int32
	Product   *CartProductData
	Offers    []pricing.Offer
}

type CartProductData struct {
	Name           string
	ImageURL       string
	OriginalPrice  decimal.Decimal
	ManualDiscount *decimal.Decimal
	StockQuantity  int32
	IsAvailable    bool
}

type CartViewRepo interface {
	// LinesByUserID returns the cart lines in insertion order.
	LinesByUserID(ctx context.Context, userID uuid.UUID) ([]CartLineData, error)
}

type CartQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	repo  CartViewRepo
	clock clock.Clock
}

func NewCartQueries(repo CartViewRepo, clock clock.Clock) CartQueries {
	return &cartQueriesImpl{repo: repo, clock: clock}
}

// Get resolves each line to its effective price. Lines whose product is gone
// or disabled are annotated as unavailable and excluded from the subtotal;
// checkout, not the cart view, is where they become an error.
func (q *cartQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	lines, err := q.repo.LinesByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	view := &CartView{
		UserID:   userID,
		Items:    make([]CartLineView, 0, len(lines)),
		Subtotal: decimal.Zero,
	}

	for _, line := range lines {
		item := CartLineView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}

		if line.Product == nil || !line.Product.IsAvailable {
			item.Unavailable = true
			if line.Product != nil {
				item.Name = line.Product.Name
				item.ImageURL = line.Product.ImageURL
			}
			view.Items = append(view.Items, item)
			continue
		}

		quote := pricing.Compute(line.Product.OriginalPrice, line.Product.ManualDiscount, line.Offers, now)

		item.Name = line.Product.Name
		item.ImageURL = line.Product.ImageURL
		item.OriginalPrice = line.Product.OriginalPrice
		item.EffectivePrice = quote.FinalPrice
		item.DiscountAmount = quote.DiscountAmount
		item.AppliedOfferID = quote.AppliedOfferID
		item.LineTotal = quote.FinalPrice.Mul(decimal.NewFromInt32(line.Quantity))
		item.StockQuantity = line.Product.StockQuantity

		view.Subtotal = view.Subtotal.Add(item.LineTotal)
		view.Items = append(view.Items, item)
	}

	view.Subtotal = view.Subtotal.Round(2)
	return view, nil
}
