package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Registry(t *testing.T) {
	require.NoError(t, Validate())
}

func TestAllDungeons(t *testing.T) {
	all := AllDungeons()
	require.Len(t, all, 7)
	assert.Equal(t, "chinese_forest", all[0].ID)
	assert.Equal(t, "sentence_diary", all[6].ID)

	all[0].Name = "changed"
	assert.NotEqual(t, "changed", AllDungeons()[0].Name, "AllDungeons must return a copy")
}

func TestGetDungeon(t *testing.T) {
	d, err := GetDungeon("math_mine")
	require.NoError(t, err)
	assert.Equal(t, "Number Gold Mine", d.Name)

	_, err = GetDungeon("moon_base")
	assert.Error(t, err)
}

func TestValidateDungeons_Problems(t *testing.T) {
	err := validateDungeons([]Dungeon{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "A again"},
		{ID: "b"},
		{Name: "nameless"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate dungeon ID: "a"`)
	assert.Contains(t, err.Error(), `dungeon "b" has empty name`)
	assert.Contains(t, err.Error(), "has empty ID")
}
