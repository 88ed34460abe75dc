package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recetario/internal/recipe"
)

func TestCatalog_Text(t *testing.T) {
	out, err := execute(t, NewCatalogCommand(newTestOptions(t)))
	require.NoError(t, err)

	for _, want := range []string{"Pimiento", "Pimiento amarillo", "Cebolla morada", "Cortar", "Freír", "Hornear"} {
		assert.Contains(t, out, want)
	}
}

func TestCatalog_Specifics(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewCatalogCommand(opts), "Pimiento")
	require.NoError(t, err)
	assert.Equal(t, "Pimiento verde\nPimiento rojo\nPimiento amarillo\n", out)

	out, err = execute(t, NewCatalogCommand(opts), "Ajo")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCatalog_JSON(t *testing.T) {
	var view catalogView
	executeJSON(t, newTestOptions(t), NewCatalogCommand, &view)

	require.Len(t, view.Generics, 2)
	assert.Equal(t, "Cebolla", view.Generics[1].Name)
	assert.Equal(t, []string{"Cebolla blanca", "Cebolla morada"}, view.Generics[1].Specifics)
	assert.Equal(t, []string{"Cortar", "Saltear", "Hervir", "Freír", "Hornear"}, view.Actions)
}

func TestCatalog_CustomFile(t *testing.T) {
	opts := newTestOptions(t)
	opts.Catalog = filepath.Join(t.TempDir(), "catalogo.cue")
	require.NoError(t, os.WriteFile(opts.Catalog, []byte(`
generics: [{name: "Ajo", specifics: ["Ajo morado"]}]
actions: ["Picar"]
`), 0o644))

	out, err := execute(t, NewCatalogCommand(opts), "Ajo")
	require.NoError(t, err)
	assert.Equal(t, "Ajo morado\n", out)

	addEntry(t, opts, "Ajo", "Ajo morado", "5", "Picar")
	_, err = execute(t, NewAddCommand(opts), "-g", "Pimiento", "-s", "Pimiento rojo", "-w", "5", "-a", "Cortar")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCatalog_BadFile(t *testing.T) {
	opts := newTestOptions(t)
	opts.Catalog = filepath.Join(t.TempDir(), "roto.cue")
	require.NoError(t, os.WriteFile(opts.Catalog, []byte("generics: [\n"), 0o644))

	out, err := execute(t, NewCatalogCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeCatalog)
	assert.Contains(t, out, "Error [E003]")

	opts.Catalog = filepath.Join(t.TempDir(), "missing.cue")
	_, err = execute(t, NewCatalogCommand(opts))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}

func TestCheck(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewCheckCommand(opts), "-g", "Pimiento", "-s", "Pimiento rojo", "-w", "100", "-a", "Cortar")
	require.NoError(t, err)
	assert.Contains(t, out, "Entry is valid")

	out, err = execute(t, NewCheckCommand(opts), "-g", "Pimiento", "-s", "Cebolla blanca", "-w", "100", "-a", "Cortar")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, recipe.ReasonSpecific)

	assert.Empty(t, listEntries(t, opts).Entries, "check never adds")
}

func TestCheck_FirstFailureOnly(t *testing.T) {
	out, err := execute(t, NewCheckCommand(newTestOptions(t)), "-w", "-3")
	require.Error(t, err)
	assert.Contains(t, out, recipe.ReasonGeneric)
	assert.NotContains(t, out, recipe.ReasonWeight)
}

func TestAdd(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewAddCommand(opts), "-g", "Pimiento", "-s", "Pimiento rojo", "-w", "100", "-a", "Cortar")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 0. Cortar Pimiento rojo (100g)")

	addEntry(t, opts, "Cebolla", "Cebolla blanca", "12.5", "Saltear")

	view := listEntries(t, opts)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, 1, view.Diners)
	assert.Equal(t, "Saltear Cebolla blanca (12.5g)", view.Entries[1].Line)
	assert.True(t, view.CanExport)
}

func TestAdd_JSON(t *testing.T) {
	var view entryView
	executeJSON(t, newTestOptions(t), NewAddCommand, &view,
		"-g", "Pimiento", "-s", "Pimiento verde", "-w", "75", "-a", "Freír")

	assert.Equal(t, entryView{
		Index:        0,
		Generic:      "Pimiento",
		Specific:     "Pimiento verde",
		Weight:       75,
		Action:       "Freír",
		ScaledWeight: 75,
		Line:         "Freír Pimiento verde (75g)",
	}, view)
}

func TestAdd_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		reason string
	}{
		{"unknown generic", []string{"-g", "Tomate", "-s", "Tomate pera", "-w", "1", "-a", "Cortar"}, recipe.ReasonGeneric},
		{"missing specific", []string{"-g", "Pimiento", "-w", "1", "-a", "Cortar"}, recipe.ReasonSpecific},
		{"weight not a number", []string{"-g", "Pimiento", "-s", "Pimiento rojo", "-w", "mucho", "-a", "Cortar"}, recipe.ReasonWeight},
		{"zero weight", []string{"-g", "Pimiento", "-s", "Pimiento rojo", "-w", "0", "-a", "Cortar"}, recipe.ReasonWeight},
		{"unknown action", []string{"-g", "Pimiento", "-s", "Pimiento rojo", "-w", "1", "-a", "Asar"}, recipe.ReasonAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newTestOptions(t)
			out, err := execute(t, NewAddCommand(opts), tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, out, "Error [E101]: "+tt.reason)

			assert.Empty(t, listEntries(t, opts).Entries)
		})
	}
}

func TestEdit(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")
	addEntry(t, opts, "Cebolla", "Cebolla blanca", "50", "Saltear")

	out, err := execute(t, NewEditCommand(opts), "0", "-w", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 0. Cortar Pimiento rojo (150g)")

	_, err = execute(t, NewEditCommand(opts), "1", "-g", "Pimiento", "-s", "Pimiento amarillo")
	require.NoError(t, err)

	view := listEntries(t, opts)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "Cortar Pimiento rojo (150g)", view.Entries[0].Line)
	assert.Equal(t, "Saltear Pimiento amarillo (50g)", view.Entries[1].Line)
}

func TestEdit_GenericClearsSpecific(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")

	out, err := execute(t, NewEditCommand(opts), "0", "-g", "Cebolla")
	require.Error(t, err)
	assert.Contains(t, out, recipe.ReasonSpecific)

	view := listEntries(t, opts)
	assert.Equal(t, "Cortar Pimiento rojo (100g)", view.Entries[0].Line, "rejected edit leaves the entry unchanged")
}

func TestEdit_Errors(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")

	_, err := execute(t, NewEditCommand(opts), "3", "-w", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeIndexRange)

	_, err = execute(t, NewEditCommand(opts), "-1", "-w", "1")
	require.Error(t, err)

	_, err = execute(t, NewEditCommand(opts), "uno", "-w", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeBadArgument)

	_, err = execute(t, NewEditCommand(opts), "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestRemove(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")
	addEntry(t, opts, "Cebolla", "Cebolla blanca", "50", "Saltear")
	addEntry(t, opts, "Pimiento", "Pimiento verde", "75", "Freír")

	out, err := execute(t, NewRemoveCommand(opts), "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed entry 1 (2 left)")

	view := listEntries(t, opts)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "Cortar Pimiento rojo (100g)", view.Entries[0].Line)
	assert.Equal(t, "Freír Pimiento verde (75g)", view.Entries[1].Line)

	_, err = execute(t, NewRemoveCommand(opts), "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeIndexRange)
	assert.Len(t, listEntries(t, opts).Entries, 2)
}

func TestDiners(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")

	out, err := execute(t, NewDinersCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = execute(t, NewDinersCommand(opts), "3")
	require.NoError(t, err)

	_, err = execute(t, NewDinersCommand(opts), "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeInvalidDiners)

	_, err = execute(t, NewDinersCommand(opts), "muchos")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	view := listEntries(t, opts)
	assert.Equal(t, 3, view.Diners)
	assert.Equal(t, 300.0, view.Entries[0].ScaledWeight)
	assert.Equal(t, "Cortar Pimiento rojo (300g)", view.Entries[0].Line)
}

func TestNotes(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewNotesCommand(opts), "Servir", "caliente.")
	require.NoError(t, err)

	out, err := execute(t, NewNotesCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "Servir caliente.\n", out)

	cmd := NewNotesCommand(opts)
	cmd.SetIn(strings.NewReader("Primera línea\nSegunda línea\n"))
	_, err = execute(t, cmd, "-")
	require.NoError(t, err)
	assert.Equal(t, "Primera línea\nSegunda línea\n", listEntries(t, opts).Notes)

	_, err = execute(t, NewNotesCommand(opts), "--clear", "x")
	require.Error(t, err)

	_, err = execute(t, NewNotesCommand(opts), "--clear")
	require.NoError(t, err)
	assert.Empty(t, listEntries(t, opts).Notes)
}

func TestRender(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewRenderCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E104]")

	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")
	addEntry(t, opts, "Cebolla", "Cebolla blanca", "50", "Saltear")
	_, err = execute(t, NewDinersCommand(opts), "2")
	require.NoError(t, err)
	_, err = execute(t, NewNotesCommand(opts), "  Servir caliente.  ")
	require.NoError(t, err)

	out, err = execute(t, NewRenderCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "Receta\nCortar Pimiento rojo (200g)\nSaltear Cebolla blanca (100g)\nNotas:\nServir caliente.\n", out)
}

func TestRender_ConfiguredLabels(t *testing.T) {
	opts := newTestOptions(t)
	opts.ConfigPath = filepath.Join(t.TempDir(), "recetario.yaml")
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("title: Recipe\nnotes_header: \"Notes:\"\n"), 0o644))

	addEntry(t, opts, "Cebolla", "Cebolla morada", "30", "Hervir")
	_, err := execute(t, NewNotesCommand(opts), "Low heat.")
	require.NoError(t, err)

	var doc recipe.Document
	executeJSON(t, opts, NewRenderCommand, &doc)
	assert.Equal(t, []string{"Recipe", "Hervir Cebolla morada (30g)", "Notes:", "Low heat."}, doc.Lines())
}

func TestReset(t *testing.T) {
	opts := newTestOptions(t)
	addEntry(t, opts, "Pimiento", "Pimiento rojo", "100", "Cortar")
	_, err := execute(t, NewDinersCommand(opts), "4")
	require.NoError(t, err)
	_, err = execute(t, NewNotesCommand(opts), "algo")
	require.NoError(t, err)

	out, err := execute(t, NewResetCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "1 entries removed")

	view := listEntries(t, opts)
	assert.Empty(t, view.Entries)
	assert.Equal(t, 1, view.Diners)
	assert.Empty(t, view.Notes)
	assert.False(t, view.CanExport)
}

func TestDatabaseUnavailable(t *testing.T) {
	opts := newTestOptions(t)
	opts.Database = filepath.Join(t.TempDir(), "no", "such", "dir", "recetario.db")

	out, err := execute(t, NewListCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]: failed to open database")
}

func TestMissingConfigFile(t *testing.T) {
	opts := newTestOptions(t)
	opts.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, NewListCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}
