package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/core/domain/services"
	"starwings/internal/pkg/errs"
)

func sampleAllocation(t *testing.T) services.FlightAllocation {
	t.Helper()
	pilot, err := kernel.NewPrincipal("0xpilot1")
	require.NoError(t, err)
	drone, err := kernel.NewPrincipal("0xdrone1")
	require.NoError(t, err)

	return services.FlightAllocation{
		DeliveryID:     "delivery-1",
		ConopsID:       1,
		PilotPrincipal: pilot,
		DronePrincipal: drone,
	}
}

func Test_FlightHandleFactory(t *testing.T) {
	namespace := kernel.NewUUID()

	t.Run("same_inputs_same_handle", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)
		allocation := sampleAllocation(t)

		first, err := factory.Handle("salt-001", allocation)
		require.NoError(t, err)
		second, err := factory.Handle("salt-001", allocation)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("different_salt_different_handle", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)
		allocation := sampleAllocation(t)

		first, err := factory.Handle("salt-001", allocation)
		require.NoError(t, err)
		second, err := factory.Handle("salt-002", allocation)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("different_payload_different_handle", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)
		allocation := sampleAllocation(t)
		other := allocation
		other.ConopsID = 2

		first, err := factory.Handle("salt-001", allocation)
		require.NoError(t, err)
		second, err := factory.Handle("salt-001", other)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("different_namespace_different_handle", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)
		otherFactory, err := services.NewFlightHandleFactory(kernel.NewUUID())
		require.NoError(t, err)
		allocation := sampleAllocation(t)

		first, err := factory.Handle("salt-001", allocation)
		require.NoError(t, err)
		second, err := otherFactory.Handle("salt-001", allocation)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("rejects_empty_salt", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)

		_, err = factory.Handle("", sampleAllocation(t))

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_incomplete_payload", func(t *testing.T) {
		factory, err := services.NewFlightHandleFactory(namespace)
		require.NoError(t, err)
		allocation := sampleAllocation(t)
		allocation.DeliveryID = ""

		_, err = factory.Handle("salt-001", allocation)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_namespace", func(t *testing.T) {
		_, err := services.NewFlightHandleFactory(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("unconstructed_factory_refuses_to_derive", func(t *testing.T) {
		var factory services.FlightHandleFactory

		_, err := factory.Handle("salt-001", sampleAllocation(t))

		assert.ErrorIs(t, err, services.ErrFactoryIsNotConstructed)
	})
}
