// internal/pkg/validate/validate_test.go
package validate

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string `validate:"required"`
	Price int64  `validate:"gte=0"`
	Tags  []tag  `validate:"dive"`
}

type tag struct {
	Name string `validate:"required"`
}

func testGate() *Gate {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewGate(logger)
}

func TestGate_Struct(t *testing.T) {
	gate := testGate()

	t.Run("well-shaped value passes", func(t *testing.T) {
		err := gate.Struct("payload", &payload{ID: "guitar", Price: 100})
		assert.NoError(t, err)
	})

	t.Run("empty nested list passes", func(t *testing.T) {
		err := gate.Struct("payload", &payload{ID: "guitar", Tags: []tag{}})
		assert.NoError(t, err)
	})

	t.Run("shape mismatch returns a typed error", func(t *testing.T) {
		err := gate.Struct("payload", &payload{Price: -1})
		require.Error(t, err)

		var shapeErr *Error
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, "payload", shapeErr.Schema)
		assert.Len(t, shapeErr.Issues, 2)
	})

	t.Run("nested element mismatch is reported", func(t *testing.T) {
		err := gate.Struct("payload", &payload{
			ID:   "guitar",
			Tags: []tag{{Name: "ok"}, {}},
		})
		require.Error(t, err)

		var shapeErr *Error
		require.True(t, errors.As(err, &shapeErr))
		require.Len(t, shapeErr.Issues, 1)
		assert.Contains(t, shapeErr.Issues[0], "Tags[1].Name")
	})
}

func TestGate_Var(t *testing.T) {
	gate := testGate()

	t.Run("list of non-empty ids passes", func(t *testing.T) {
		assert.NoError(t, gate.Var("ids", []string{"a", "b"}, "dive,required"))
	})

	t.Run("empty id in list fails", func(t *testing.T) {
		err := gate.Var("ids", []string{"a", ""}, "dive,required")
		require.Error(t, err)

		var shapeErr *Error
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, "ids", shapeErr.Schema)
	})
}

func TestError_Message(t *testing.T) {
	err := &Error{Schema: "CatalogResponse", Issues: []string{"Items[0].ID: failed \"required\""}}
	assert.Contains(t, err.Error(), "CatalogResponse")
	assert.Contains(t, err.Error(), "required")
}
