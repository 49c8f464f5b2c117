package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/zelenko/internal/app"
	"github.com/asteroid-belt/zelenko/internal/telemetry"
)

// resetFlags restores every flag of cmd and its children to its default,
// since the command tree is shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// withDataDir points the CLI at a fresh data directory.
func withDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	t.Setenv("ZELENKO_DATA_DIR", dir)
	t.Setenv("ZELENKO_STORAGE_BACKEND", "db")
	t.Setenv("ZELENKO_TIMEZONE", "UTC")
	telemetryClient = telemetry.Noop()
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "zelenko", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("ephemeral"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"add", "edit", "info", "list", "onboarding", "remove", "version", "water"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	withDataDir(t)

	out, err := runCLI(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "zelenko")

	out, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}

func TestEditCmd_ImageFlagsAreExclusive(t *testing.T) {
	withDataDir(t)

	_, err := runCLI(t, "edit", "1", "--image", "a.png", "--clear-image")
	assert.Error(t, err)
}

func TestCLI_PlantLifecycle(t *testing.T) {
	withDataDir(t)

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dodaj svoju prvu biljku")

	out, err = runCLI(t, "add", "Kaktus", "Kasper", "--every", "14")
	require.NoError(t, err)
	assert.Contains(t, out, "#1: Kaktus Kasper")
	assert.Contains(t, out, "Zalivaj na svakih 14 dana")

	_, err = runCLI(t, "add", "Fikus", "-e", "1")
	require.NoError(t, err)

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Zelenko (2)")
	assert.Less(t, bytes.Index([]byte(out), []byte("Fikus")), bytes.Index([]byte(out), []byte("Kaktus")),
		"newest plant first")
	assert.Contains(t, out, "Zalivaj svaki dan")
	assert.Contains(t, out, "💧 Vreme je za zalivanje")

	out, err = runCLI(t, "water", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "💧 Fikus")

	out, err = runCLI(t, "info", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Zalivaj me na svakih: 1 dan")
	assert.Contains(t, out, "Dana od poslednjeg zalivanja: 0")
	assert.Contains(t, out, "⏳ Uskoro zalivanje")
	assert.Contains(t, out, "podrazumevana slika")

	out, err = runCLI(t, "edit", "1", "--every", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Zalivaj na svakih 3 dana")

	out, err = runCLI(t, "info", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Kaktus Kasper", "name kept by partial edit")
	assert.Contains(t, out, "Poslednje zalivanje: Nikad")

	out, err = runCLI(t, "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Kaktus Kasper")

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Zelenko (1)")
	assert.NotContains(t, out, "Kaktus")
}

func TestCLI_AddValidation(t *testing.T) {
	withDataDir(t)

	_, err := runCLI(t, "add", "Fikus")
	require.Error(t, err)
	assert.Equal(t, "Koliko često treba zalivati Fikus?", err.Error())

	_, err = runCLI(t, "add", "Fikus", "--every", "often")
	require.Error(t, err)
	assert.Equal(t, "Unesi broj dana za zalivanje", err.Error())

	_, err = runCLI(t, "add", "  ", "--every", "3")
	require.Error(t, err)
	assert.Equal(t, "Daj ime svom zelenom prijatelju", err.Error())

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dodaj svoju prvu biljku")
}

func TestCLI_UnknownIDs(t *testing.T) {
	withDataDir(t)

	out, err := runCLI(t, "water", "404")
	require.NoError(t, err)
	assert.Contains(t, out, "Biljka nije pronađena.")

	out, err = runCLI(t, "remove", "404")
	require.NoError(t, err)
	assert.Contains(t, out, "Biljka nije pronađena.")

	_, err = runCLI(t, "info", "404")
	assert.ErrorIs(t, err, app.ErrPlantNotFound)

	_, err = runCLI(t, "edit", "404", "--name", "x")
	assert.ErrorIs(t, err, app.ErrPlantNotFound)
}

func TestCLI_Ephemeral(t *testing.T) {
	withDataDir(t)

	_, err := runCLI(t, "--ephemeral", "add", "Fikus", "--every", "3")
	require.NoError(t, err)

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dodaj svoju prvu biljku", "ephemeral changes are not saved")
}

func TestCLI_FileBackend(t *testing.T) {
	withDataDir(t)
	t.Setenv("ZELENKO_STORAGE_BACKEND", "file")

	_, err := runCLI(t, "add", "Fikus", "--every", "3")
	require.NoError(t, err)

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Fikus")
}

func TestCLI_Onboarding(t *testing.T) {
	withDataDir(t)

	out, err := runCLI(t, "onboarding")
	require.NoError(t, err)
	assert.Contains(t, out, "Onboarding završen: ne")

	out, err = runCLI(t, "onboarding", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Onboarding završen: da")

	out, err = runCLI(t, "onboarding")
	require.NoError(t, err)
	assert.Contains(t, out, "Onboarding završen: da")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&app.ValidationError{Field: app.FieldDays, Message: "Unesi broj dana za zalivanje"}, "validation_error"},
		{app.ErrPlantNotFound, "not_found_error"},
		{fmt.Errorf("edit: %w", app.ErrImageSave), "image_error"},
		{errors.New("load config: bad"), "config_error"},
		{errors.New("open database: locked"), "database_error"},
		{errors.New("open x: permission denied"), "permission_error"},
		{errors.New("open x: no such file or directory"), "not_found_error"},
		{errors.New("parse failure"), "validation_error"},
		{errors.New("boom"), "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
