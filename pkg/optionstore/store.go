package optionstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Getter reads the currently stored value of an option.
type Getter interface {
	Get(ctx context.Context, name string) (any, error)
}

// Store reads and writes option values.
type Store interface {
	Getter
	Set(ctx context.Context, name string, value any) error
	Delete(ctx context.Context, name string) error
}

// GetterFunc adapts a function to the Getter interface.
type GetterFunc func(ctx context.Context, name string) (any, error)

func (f GetterFunc) Get(ctx context.Context, name string) (any, error) {
	return f(ctx, name)
}

func encode(value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return b, nil
}

func decode(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return value, nil
}
