//go:build unit

package commands_test

import (
	"context"
	"testing"

	"beads-store/internal/domain/address"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/shared"
	sharedmock "beads-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type addressCommandMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	addresses *sharedmock.MockAddressRepository
}

func newAddressCommands(t *testing.T) (commands.AddressCommands, *addressCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &addressCommandMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		addresses: sharedmock.NewMockAddressRepository(ctrl),
	}
	m.tx.EXPECT().Addresses().Return(m.addresses).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return commands.NewAddressCommands(m.uow, clock.NewMockClock(testNow)), m
}

func saveAddressInput() commands.SaveAddressInput {
	return commands.SaveAddressInput{
		FullName:    "Sita Shrestha",
		PhoneNumber: "+9779841000000",
		Province:    "Bagmati",
		District:    "Kathmandu",
		City:        "Kathmandu",
	}
}

func TestAddressAdd(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("plain address never touches other defaults", func(t *testing.T) {
		cmd, m := newAddressCommands(t)

		var created *address.Address
		m.addresses.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *address.Address) error {
				created = a
				return nil
			})

		id, err := cmd.Add(ctx, userID, saveAddressInput())
		require.NoError(t, err)
		assert.Equal(t, created.ID, id)
		assert.Equal(t, "Home", created.AddressType)
		assert.Equal(t, "Nepal", created.Country)
		assert.False(t, created.IsDefault)
	})

	t.Run("default flag unsets every other default first", func(t *testing.T) {
		cmd, m := newAddressCommands(t)

		gomock.InOrder(
			m.addresses.EXPECT().UnsetDefaults(gomock.Any(), gomock.Any(), userID).Return(nil),
			m.addresses.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		input := saveAddressInput()
		input.IsDefault = true

		_, err := cmd.Add(ctx, userID, input)
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		cmd, _ := newAddressCommands(t)

		input := saveAddressInput()
		input.City = "  "

		_, err := cmd.Add(ctx, userID, input)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestAddressUpdate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, cmd.Update(ctx, userID, addressID, saveAddressInput()))
	})

	t.Run("not found or foreign", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		assert.ErrorIs(t, cmd.Update(ctx, userID, addressID, saveAddressInput()), errs.ErrAddressNotFound)
	})
}

func TestAddressDelete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().Delete(gomock.Any(), gomock.Any(), addressID, userID).Return(int64(1), nil)
		assert.NoError(t, cmd.Delete(ctx, userID, addressID))
	})

	t.Run("not found", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().Delete(gomock.Any(), gomock.Any(), addressID, userID).Return(int64(0), nil)
		assert.ErrorIs(t, cmd.Delete(ctx, userID, addressID), errs.ErrAddressNotFound)
	})
}

func TestAddressSetDefault(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().SetDefault(gomock.Any(), gomock.Any(), addressID, userID).Return(int64(1), nil)

		assert.NoError(t, cmd.SetDefault(ctx, userID, addressID))
	})

	t.Run("target missing", func(t *testing.T) {
		cmd, m := newAddressCommands(t)
		m.addresses.EXPECT().SetDefault(gomock.Any(), gomock.Any(), addressID, userID).Return(int64(0), nil)

		assert.ErrorIs(t, cmd.SetDefault(ctx, userID, addressID), errs.ErrAddressNotFound)
	})
}
