//go:build unit

package commands_test

import (
	"context"
	"testing"

	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/shared"
	"beads-store/tests/common/builder"
	sharedmock "beads-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type cartCommandMocks struct {
	uow   *sharedmock.MockUnitOfWork
	reads *sharedmock.MockCommandReads
	tx    *sharedmock.MockTx
	carts *sharedmock.MockCartRepository
}

func newCartCommands(t *testing.T) (commands.CartCommands, *cartCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &cartCommandMocks{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		carts: sharedmock.NewMockCartRepository(ctrl),
	}
	m.tx.EXPECT().Carts().Return(m.carts).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return commands.NewCartCommands(m.uow), m
}

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("inserts a new line", func(t *testing.T) {
		product := builder.NewProductBuilder().WithStock(10).Build()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
			Return([]shared.ProductSnapshot{product}, nil)
		m.reads.EXPECT().CartItems(gomock.Any(), userID).Return(nil, nil)
		m.carts.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), userID, product.ID, int32(3)).Return(nil)

		assert.NoError(t, cmd.AddItem(ctx, userID, product.ID, 3))
	})

	t.Run("stock check covers the merged quantity", func(t *testing.T) {
		product := builder.NewProductBuilder().WithStock(5).Build()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
			Return([]shared.ProductSnapshot{product}, nil)
		m.reads.EXPECT().CartItems(gomock.Any(), userID).Return([]shared.CartItemSnapshot{
			{ProductID: product.ID, Quantity: 4, Position: 1},
		}, nil)

		assert.ErrorIs(t, cmd.AddItem(ctx, userID, product.ID, 2), errs.ErrInsufficientStock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		cmd, _ := newCartCommands(t)
		assert.ErrorIs(t, cmd.AddItem(ctx, userID, uuid.New(), 0), errs.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		productID := uuid.New()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{productID}).Return(nil, nil)

		assert.ErrorIs(t, cmd.AddItem(ctx, userID, productID, 1), errs.ErrProductNotFound)
	})

	t.Run("disabled product", func(t *testing.T) {
		product := builder.NewProductBuilder().Unavailable().Build()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
			Return([]shared.ProductSnapshot{product}, nil)

		assert.ErrorIs(t, cmd.AddItem(ctx, userID, product.ID, 1), errs.ErrProductUnavailable)
	})
}

func TestCartUpdateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("sets the quantity", func(t *testing.T) {
		product := builder.NewProductBuilder().WithStock(10).Build()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
			Return([]shared.ProductSnapshot{product}, nil)
		m.carts.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), userID, product.ID, int32(4)).Return(int64(1), nil)

		assert.NoError(t, cmd.UpdateItem(ctx, userID, product.ID, 4))
	})

	t.Run("line missing", func(t *testing.T) {
		product := builder.NewProductBuilder().WithStock(10).Build()
		cmd, m := newCartCommands(t)
		m.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{product.ID}).
			Return([]shared.ProductSnapshot{product}, nil)
		m.carts.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), userID, product.ID, int32(4)).Return(int64(0), nil)

		assert.ErrorIs(t, cmd.UpdateItem(ctx, userID, product.ID, 4), errs.ErrCartItemMissing)
	})
}

func TestCartRemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmd, m := newCartCommands(t)
		m.carts.EXPECT().RemoveItem(gomock.Any(), gomock.Any(), userID, productID).Return(int64(1), nil)
		assert.NoError(t, cmd.RemoveItem(ctx, userID, productID))
	})

	t.Run("line missing", func(t *testing.T) {
		cmd, m := newCartCommands(t)
		m.carts.EXPECT().RemoveItem(gomock.Any(), gomock.Any(), userID, productID).Return(int64(0), nil)
		assert.ErrorIs(t, cmd.RemoveItem(ctx, userID, productID), errs.ErrCartItemMissing)
	})
}

func TestCartClear(t *testing.T) {
	userID := uuid.New()
	cmd, m := newCartCommands(t)
	m.carts.EXPECT().Clear(gomock.Any(), gomock.Any(), userID).Return(nil)

	assert.NoError(t, cmd.Clear(context.Background(), userID))
}
