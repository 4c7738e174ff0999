package banking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates address with defaults", func(t *testing.T) {
		address, err := NewAddress(customerID, "Istiklal Cd. 1", "", "Istanbul", "Beyoglu", "34430", "", true)

		require.NoError(t, err)
		assert.Equal(t, customerID, address.CustomerID)
		assert.Equal(t, "TR", address.CountryCode)
		assert.True(t, address.IsDefault)
		assert.NotEqual(t, uuid.Nil, address.ID)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := NewAddress(uuid.Nil, "Istiklal Cd. 1", "", "Istanbul", "", "", "TR", false)
		assert.Error(t, err)
	})

	t.Run("rejects blank address line", func(t *testing.T) {
		_, err := NewAddress(customerID, "  ", "", "Istanbul", "", "", "TR", false)
		assert.Error(t, err)
	})

	t.Run("rejects blank city", func(t *testing.T) {
		_, err := NewAddress(customerID, "Istiklal Cd. 1", "", "", "", "", "TR", false)
		assert.Error(t, err)
	})
}

func TestAddress_Update(t *testing.T) {
	customerID := uuid.New()
	address, err := NewAddress(customerID, "Istiklal Cd. 1", "", "Istanbul", "Beyoglu", "34430", "TR", false)
	require.NoError(t, err)

	t.Run("replaces mutable fields", func(t *testing.T) {
		err := address.Update("Ataturk Blv. 99", "Kat 3", "Ankara", "Cankaya", "06420", "", true)

		require.NoError(t, err)
		assert.Equal(t, "Ataturk Blv. 99", address.Line1)
		assert.Equal(t, "Ankara", address.City)
		assert.Equal(t, "TR", address.CountryCode)
		assert.True(t, address.IsDefault)
		assert.Equal(t, customerID, address.CustomerID)
	})

	t.Run("rejects blank address line", func(t *testing.T) {
		err := address.Update("", "", "Ankara", "", "", "TR", false)
		assert.Error(t, err)
		assert.Equal(t, "Ataturk Blv. 99", address.Line1)
	})
}
