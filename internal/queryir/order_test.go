package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLimit_ZeroValueAppliesDefaultCap(t *testing.T) {
	var l RowLimit

	assert.False(t, l.IsAll())
	assert.Equal(t, DefaultRowCap, l.Cap())
}

func TestRowLimit_ExplicitCap(t *testing.T) {
	l := Limit(25)

	assert.False(t, l.IsAll())
	assert.Equal(t, 25, l.Cap())
}

func TestRowLimit_AllRows(t *testing.T) {
	assert.True(t, AllRows().IsAll())
}

func TestOrderBy_Columns(t *testing.T) {
	assert.Equal(t, "id", OrderByID.Column())
	assert.Equal(t, "name", OrderByName.Column())
	assert.Equal(t, "priority", OrderByPriority.Column())
	assert.Equal(t, "", OrderByDefault.Column())
}

func TestProjection(t *testing.T) {
	assert.True(t, AllColumns().All())
	assert.Nil(t, AllColumns().Names())

	p := Columns("id", "name")
	assert.False(t, p.All())
	assert.Equal(t, []string{"id", "name"}, p.Names())
}
