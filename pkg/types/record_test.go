package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint8
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0},
		{name: "small", input: "3", want: 3},
		{name: "upper bound", input: "255", want: 255},
		{name: "above range", input: "256", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "fraction", input: "3.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "leading plus", input: "+3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAge(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAnimal(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		a, err := NewAnimal("Rex", "Alice", "3")
		require.NoError(t, err)
		assert.Equal(t, Animal{Name: "Rex", Owner: "Alice", Age: 3}, a)
	})

	t.Run("invalid age", func(t *testing.T) {
		_, err := NewAnimal("Rex", "Alice", "abc")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewAnimal("", "Alice", "3")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("empty owner", func(t *testing.T) {
		_, err := NewAnimal("Rex", "", "3")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "owner")
	})
}

func TestKinds(t *testing.T) {
	tests := []struct {
		kind       Kind
		singular   string
		collection string
	}{
		{kind: Dog{}, singular: "dog", collection: "dogs"},
		{kind: Cat{}, singular: "cat", collection: "cats"},
	}

	for _, tt := range tests {
		t.Run(tt.singular, func(t *testing.T) {
			assert.Equal(t, tt.singular, tt.kind.Singular())
			assert.Equal(t, tt.collection, tt.kind.Collection())
			assert.Equal(t, "json", tt.kind.Extension())
		})
	}

	assert.Len(t, Kinds(), 2)
	assert.Equal(t, "dogs", KindOf[Dog]().Collection())
	assert.Equal(t, "cats", KindOf[Cat]().Collection())
}
