package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

// NewSerdeClientEventV1 builds the serde for [ClientEventV1] values.
func NewSerdeClientEventV1() (Serde, error) {
	const op = "NewSerdeClientEventV1"

	avroSchema, err := avro.Parse(ClientEventSchemaTextV1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema}, nil
}
