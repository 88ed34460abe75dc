package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Pimiento", "Cebolla"}, c.Generics())
	assert.Equal(t, []string{"Cortar", "Saltear", "Hervir", "Freír", "Hornear"}, c.Actions())
	assert.Equal(t,
		[]string{"Pimiento verde", "Pimiento rojo", "Pimiento amarillo"},
		c.SpecificOptionsFor("Pimiento"))
	assert.Equal(t,
		[]string{"Cebolla blanca", "Cebolla morada"},
		c.SpecificOptionsFor("Cebolla"))
}

func TestSpecificOptionsFor_EmptyOrUnknown(t *testing.T) {
	c := Default()

	for _, generic := range []string{"", "Tomate", "pimiento", " Pimiento"} {
		t.Run(generic, func(t *testing.T) {
			opts := c.SpecificOptionsFor(generic)
			require.NotNil(t, opts)
			assert.Empty(t, opts)
		})
	}
}

func TestSpecificOptionsFor_ReturnsCopy(t *testing.T) {
	c := Default()

	opts := c.SpecificOptionsFor("Pimiento")
	opts[0] = "Berenjena"

	assert.Equal(t, "Pimiento verde", c.SpecificOptionsFor("Pimiento")[0])
}

func TestMembership(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"known generic", c.IsValidGeneric("Cebolla"), true},
		{"unknown generic", c.IsValidGeneric("Ajo"), false},
		{"empty generic", c.IsValidGeneric(""), false},
		{"specific in group", c.IsValidSpecific("Pimiento", "Pimiento rojo"), true},
		{"specific from other group", c.IsValidSpecific("Pimiento", "Cebolla morada"), false},
		{"specific with unknown generic", c.IsValidSpecific("Ajo", "Pimiento rojo"), false},
		{"empty specific", c.IsValidSpecific("Pimiento", ""), false},
		{"known action", c.IsValidAction("Hornear"), true},
		{"unknown action", c.IsValidAction("Asar"), false},
		{"empty action", c.IsValidAction(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMembership_NormalizesAccents(t *testing.T) {
	c := Default()

	// "Freír" spelled with a combining acute accent (NFD).
	decomposed := "Frei\u0301r"
	require.NotEqual(t, "Freír", decomposed)

	assert.True(t, c.IsValidAction(decomposed))
	assert.Equal(t, "Freír", Normalize(decomposed))
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		groups  []Group
		actions []string
		errMsg  string
	}{
		{
			name:    "no groups",
			actions: []string{"Cortar"},
			errMsg:  "at least one generic",
		},
		{
			name:   "no actions",
			groups: []Group{{Generic: "Ajo", Specifics: []string{"Ajo morado"}}},
			errMsg: "at least one action",
		},
		{
			name:    "empty generic",
			groups:  []Group{{Generic: ""}},
			actions: []string{"Cortar"},
			errMsg:  "name is required",
		},
		{
			name: "duplicate generic",
			groups: []Group{
				{Generic: "Ajo", Specifics: []string{"Ajo morado"}},
				{Generic: "Ajo", Specifics: []string{"Ajo blanco"}},
			},
			actions: []string{"Cortar"},
			errMsg:  "duplicate generic",
		},
		{
			name:    "duplicate specific",
			groups:  []Group{{Generic: "Ajo", Specifics: []string{"Ajo morado", "Ajo morado"}}},
			actions: []string{"Cortar"},
			errMsg:  "duplicate specific",
		},
		{
			name:    "empty specific",
			groups:  []Group{{Generic: "Ajo", Specifics: []string{""}}},
			actions: []string{"Cortar"},
			errMsg:  "name is required",
		},
		{
			name:    "duplicate action",
			groups:  []Group{{Generic: "Ajo", Specifics: []string{"Ajo morado"}}},
			actions: []string{"Cortar", "Cortar"},
			errMsg:  "duplicate action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.groups, tt.actions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGroups_PreservesOrder(t *testing.T) {
	c, err := New([]Group{
		{Generic: "Zanahoria", Specifics: []string{"Zanahoria baby"}},
		{Generic: "Ajo", Specifics: []string{"Ajo morado", "Ajo blanco"}},
	}, []string{"Pelar"})
	require.NoError(t, err)

	groups := c.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Zanahoria", groups[0].Generic)
	assert.Equal(t, []string{"Ajo morado", "Ajo blanco"}, groups[1].Specifics)
}
