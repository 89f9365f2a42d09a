package guard_test

import (
	"errors"
	"testing"

	"starwings/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Checkpoint struct {
		latitude  float64
		longitude float64
		guard     guard.ConstructorGuard
	}

	var errCheckpointNotConstructed = errors.New("Checkpoint must be created via NewCheckpoint")

	newCheckpoint := func(latitude, longitude float64) (Checkpoint, error) {
		if latitude < -90 || latitude > 90 {
			return Checkpoint{}, errors.New("latitude is out of range")
		}
		if longitude < -180 || longitude > 180 {
			return Checkpoint{}, errors.New("longitude is out of range")
		}
		return Checkpoint{
			latitude:  latitude,
			longitude: longitude,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	validateCheckpoint := func(c Checkpoint) error {
		return c.guard.Validate(errCheckpointNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		checkpoint, err := newCheckpoint(48.1173, -1.6778)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateCheckpoint(checkpoint))
		assert.Equal(t, 48.1173, checkpoint.latitude)
		assert.Equal(t, -1.6778, checkpoint.longitude)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var checkpoint Checkpoint // zero value

		// When
		err := validateCheckpoint(checkpoint)

		// Then
		// Zero value Checkpoint has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errCheckpointNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test out-of-range latitude
		_, err := newCheckpoint(101.5, -1.6778)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude is out of range")

		// Test out-of-range longitude
		_, err = newCheckpoint(48.1173, 181.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude is out of range")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errDossierNotConstructed = errors.New("Dossier must be created via NewDossier")

	// Define a guard-aware base type
	type guardedDossier struct {
		guard guard.ConstructorGuard
	}

	newGuardedDossier := func() guardedDossier {
		return guardedDossier{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedDossier := func(g guardedDossier) error {
		return g.guard.Validate(errDossierNotConstructed)
	}

	// Define the actual domain object
	type Dossier struct {
		guardedDossier
		id   int
		name string
		grc  int
	}

	newDossier := func(id int, name string, grc int) (Dossier, error) {
		if id < 1 {
			return Dossier{}, errors.New("dossier id is required")
		}
		if name == "" {
			return Dossier{}, errors.New("dossier name is required")
		}
		if grc < 0 {
			return Dossier{}, errors.New("dossier grc cannot be negative")
		}
		return Dossier{
			guardedDossier: newGuardedDossier(),
			id:             id,
			name:           name,
			grc:            grc,
		}, nil
	}

	t.Run("valid_dossier_construction", func(t *testing.T) {
		// When
		dossier, err := newDossier(1, "Rennes hospital corridor", 3)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedDossier(dossier.guardedDossier))
		assert.Equal(t, 1, dossier.id)
		assert.Equal(t, "Rennes hospital corridor", dossier.name)
		assert.Equal(t, 3, dossier.grc)
	})

	t.Run("zero_value_dossier_fails_validation", func(t *testing.T) {
		// Given
		var dossier Dossier // zero value

		// When
		err := validateGuardedDossier(dossier.guardedDossier)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errDossierNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "flight_not_constructed_error",
			expectedError: errors.New("Flight must be created via NewFlight"),
		},
		{
			name:          "delivery_not_constructed_error",
			expectedError: errors.New("Delivery must be created via NewDelivery factory method"),
		},
		{
			name:          "conops_not_constructed_error",
			expectedError: errors.New("Conops requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
