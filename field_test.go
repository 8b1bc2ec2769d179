package gqlres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	t.Run("value at the path is exposed", func(t *testing.T) {
		doc := D{{Key: "me", Value: D{{Key: "name", Value: "Luke"}}}}
		field, err := NewField(doc, nil, "me.name")
		require.NoError(t, err)
		require.Equal(t, "Luke", field.Value)
		require.True(t, field.HasValue())
	})

	t.Run("absent path yields nil value", func(t *testing.T) {
		field, err := NewField(D{}, nil, "me")
		require.NoError(t, err)
		require.Nil(t, field.Value)
		require.False(t, field.HasValue())
	})

	t.Run("terminal null and missing key are indistinguishable", func(t *testing.T) {
		withNull := D{{Key: "me", Value: nil}}
		nullField, err := NewField(withNull, nil, "me")
		require.NoError(t, err)
		missingField, err := NewField(D{}, nil, "me")
		require.NoError(t, err)
		require.Equal(t, missingField.Value, nullField.Value)
		require.False(t, nullField.HasValue())
	})

	t.Run("parsed path is exposed", func(t *testing.T) {
		field, err := NewField(nil, nil, "me.friends[1]")
		require.NoError(t, err)
		require.Equal(t, Path{FieldSegment("me"), FieldSegment("friends"), IndexSegment(1)}, field.Path)
	})

	t.Run("invalid path propagates", func(t *testing.T) {
		_, err := NewField(D{}, nil, "me..name")
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("type mismatch propagates", func(t *testing.T) {
		doc := D{{Key: "me", Value: "string"}}
		_, err := NewField(doc, nil, "me.name")
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestNewFieldErrors(t *testing.T) {
	t.Run("collects errors at or below the queried field in order", func(t *testing.T) {
		errs := []*ResponseError{
			{Message: "fail-me"},
			{Message: "fail-me", Path: []any{"me"}},
			{Message: "fail-me-friends", Path: []any{"me", "friends"}},
			{Message: "fail-me-friends-name", Path: []any{"me", "friends", int64(0), "name"}},
		}

		field, err := NewField(nil, errs, "me.friends")
		require.NoError(t, err)

		// The pathless record never applies to a non-root field; the other
		// three all sit on the me.friends lineage.
		require.Len(t, field.Errors, 3)
		require.Equal(t, "me", field.Errors[0].PathString())
		require.Equal(t, "me.friends", field.Errors[1].PathString())
		require.Equal(t, "me.friends[0].name", field.Errors[2].PathString())
	})

	t.Run("root field owns every error", func(t *testing.T) {
		errs := []*ResponseError{
			{Message: "fail"},
			{Message: "fail-me", Path: []any{"me"}},
		}
		field, err := NewField(nil, errs, "")
		require.NoError(t, err)
		require.Len(t, field.Errors, 2)
	})

	t.Run("diverging errors are excluded silently", func(t *testing.T) {
		errs := []*ResponseError{
			{Message: "fail-pets", Path: []any{"me", "pets", int64(0)}},
		}
		field, err := NewField(nil, errs, "me.friends")
		require.NoError(t, err)
		require.Empty(t, field.Errors)
	})
}
