package schema_test

import (
	"testing"
	"time"

	"github.com/lefergusion/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerdeClientEventV1(t *testing.T) {

	t.Run("SchemaIsParsable", func(t *testing.T) {
		_, err := schema.NewSerdeClientEventV1()
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeClientEventV1()
		require.NoError(t, err)

		eventValue := schema.ClientEventV1{
			EventType: "product_added",
			ProductID: "testProductID",
			Quantity:  2,
			Query:     "",
			AtUnixMs:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
		}

		b, err := serde.Encode(eventValue)
		require.NoError(t, err)

		var decoded schema.ClientEventV1
		require.NoError(t, serde.Decode(b, &decoded))
		assert.Equal(t, eventValue, decoded)
	})

	t.Run("DecodeGarbage", func(t *testing.T) {
		serde, err := schema.NewSerdeClientEventV1()
		require.NoError(t, err)

		var decoded schema.ClientEventV1
		assert.Error(t, serde.Decode([]byte{0xff}, &decoded))
	})
}
