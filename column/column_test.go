package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringColumn(t *testing.T) {
	c := NewStringColumn("name")

	got, err := c.Parse("  Ada ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)

	got, err = c.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "", got, "no null handler means empty text stays a string")

	c.NullHandler = ConstantNullHandler{Token: "N/A"}
	got, err = c.Parse("N/A")
	require.NoError(t, err)
	assert.Nil(t, got)

	out, err := c.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "N/A", out)

	out, err = c.Format("Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", out)

	_, err = c.Format(1)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestBooleanColumn(t *testing.T) {
	c := NewBooleanColumn("active")
	c.TrueString, c.FalseString = "Y", "N"

	got, err := c.Parse(" y ")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = c.Parse("N")
	require.NoError(t, err)
	assert.Equal(t, false, got)

	got, err = c.Parse("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = c.Parse("maybe")
	assert.ErrorIs(t, err, ErrParse)

	out, err := c.Format(true)
	require.NoError(t, err)
	assert.Equal(t, "Y", out)

	_, err = c.Format("true")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestIgnoredColumn(t *testing.T) {
	c := NewIgnoredColumn()
	c.Name = "filler"

	assert.Equal(t, "filler", c.ColumnName())

	got, err := c.Parse("anything")
	require.NoError(t, err)
	assert.Nil(t, got)

	out, err := c.Format(123)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNullHandlers(t *testing.T) {
	var h NullHandler = DefaultNullHandler{}
	assert.True(t, h.IsNullValue(" \t"))
	assert.False(t, h.IsNullValue("0"))

	h = ConstantNullHandler{Token: "NULL"}
	assert.True(t, h.IsNullValue("NULL"))
	assert.False(t, h.IsNullValue("null"))
	assert.Equal(t, "NULL", h.NullValue())

	assert.Equal(t, DefaultNullHandler{}, nullHandlerOrDefault(nil))
}
