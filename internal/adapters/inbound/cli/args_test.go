package cli_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spirvkit/spirv-val/internal/adapters/inbound/cli"
	"github.com/spirvkit/spirv-val/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argError(t *testing.T, err error) *cli.ArgError {
	t.Helper()
	require.Error(t, err)
	argErr, ok := err.(*cli.ArgError)
	require.True(t, ok, "want *cli.ArgError, got %T", err)
	return argErr
}

func TestParseArgs_Defaults(t *testing.T) {
	inv, err := cli.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, cli.ActionValidate, inv.Action)
	assert.Equal(t, domain.DefaultTargetEnv, inv.Config.TargetEnv)
	assert.Empty(t, inv.Config.Options.Limits())
	assert.True(t, inv.Config.ReadsStdin())
	assert.False(t, inv.Config.HasInput())
}

func TestParseArgs_TargetEnvAndFile(t *testing.T) {
	inv, err := cli.ParseArgs([]string{"--target-env", "spv1.1", "shader.spv"})
	require.NoError(t, err)
	assert.Equal(t, domain.TargetEnvUniversal11, inv.Config.TargetEnv)
	assert.Equal(t, "shader.spv", inv.Config.InputPath)
}

func TestParseArgs_TargetEnvUnknown(t *testing.T) {
	_, err := cli.ParseArgs([]string{"--target-env", "bogus", "shader.spv"})
	argErr := argError(t, err)
	assert.Equal(t, "Unrecognized target env: bogus", argErr.Message)
	assert.False(t, argErr.ShowUsage)
}

func TestParseArgs_TargetEnvMissing(t *testing.T) {
	_, err := cli.ParseArgs([]string{"--target-env"})
	assert.Equal(t, "Missing argument to --target-env", argError(t, err).Message)
}

func TestParseArgs_EveryLimit(t *testing.T) {
	for i, k := range domain.AllLimitKinds() {
		inv, err := cli.ParseArgs([]string{k.Option(), strconv.Itoa(i + 10)})
		require.NoError(t, err, k.Option())
		assert.Equal(t, []domain.Limit{{Kind: k, Value: uint32(i + 10)}}, inv.Config.Options.Limits())
	}
}

func TestParseArgs_LimitLastOccurrenceWins(t *testing.T) {
	inv, err := cli.ParseArgs([]string{"--max-struct-depth", "3", "--max-struct-depth", "8"})
	require.NoError(t, err)
	v, ok := inv.Config.Options.Limit(domain.LimitStructDepth)
	assert.True(t, ok)
	assert.Equal(t, uint32(8), v)
}

func TestParseArgs_LimitProperty(t *testing.T) {
	kinds := domain.AllLimitKinds()
	properties := gopter.NewProperties(nil)

	properties.Property("a --max pair sets exactly that limit", prop.ForAll(
		func(idx int, value uint32) bool {
			inv, err := cli.ParseArgs([]string{kinds[idx].Option(), strconv.FormatUint(uint64(value), 10)})
			if err != nil {
				return false
			}
			limits := inv.Config.Options.Limits()
			return len(limits) == 1 && limits[0].Kind == kinds[idx] && limits[0].Value == value
		},
		gen.IntRange(0, len(kinds)-1),
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestParseArgs_LimitBadValue(t *testing.T) {
	for _, v := range []string{"abc", "-1", "4294967296", "", "12abc"} {
		_, err := cli.ParseArgs([]string{"--max-function-args", v})
		assert.Equal(t, "missing argument to --max-function-args", argError(t, err).Message, "value %q", v)
	}
}

func TestParseArgs_LimitMissingValue(t *testing.T) {
	_, err := cli.ParseArgs([]string{"--max-function-args"})
	assert.Equal(t, "Missing argument to --max-function-args", argError(t, err).Message)
}

func TestParseArgs_LimitUnknownName(t *testing.T) {
	_, err := cli.ParseArgs([]string{"--max-bananas", "3"})
	argErr := argError(t, err)
	assert.Equal(t, "unrecognized option: --max-bananas", argErr.Message)
	assert.False(t, argErr.ShowUsage)
}

func TestParseArgs_RelaxFlags(t *testing.T) {
	inv, err := cli.ParseArgs([]string{"--relax-logical-pointer"})
	require.NoError(t, err)
	assert.True(t, inv.Config.Options.RelaxLogicalPointer())
	assert.False(t, inv.Config.Options.RelaxStructStore())

	inv, err = cli.ParseArgs([]string{"--relax-struct-store", "x.spv"})
	require.NoError(t, err)
	assert.False(t, inv.Config.Options.RelaxLogicalPointer())
	assert.True(t, inv.Config.Options.RelaxStructStore())
	assert.Equal(t, "x.spv", inv.Config.InputPath)
}

func TestParseArgs_DashIsStdin(t *testing.T) {
	inv, err := cli.ParseArgs([]string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "-", inv.Config.InputPath)
	assert.True(t, inv.Config.ReadsStdin())
}

func TestParseArgs_TwoInputs(t *testing.T) {
	for _, args := range [][]string{
		{"a.spv", "b.spv"},
		{"a.spv", "-"},
		{"-", "a.spv"},
		{"-", "-"},
	} {
		_, err := cli.ParseArgs(args)
		assert.Equal(t, "More than one input file specified", argError(t, err).Message, "%v", args)
	}
}

func TestParseArgs_UnknownOptionShowsUsage(t *testing.T) {
	for _, opt := range []string{"--bogus", "-x", "--", "--relax"} {
		_, err := cli.ParseArgs([]string{opt})
		assert.True(t, argError(t, err).ShowUsage, opt)
	}
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	for _, opt := range []string{"-h", "--help"} {
		inv, err := cli.ParseArgs([]string{opt})
		require.NoError(t, err)
		assert.Equal(t, cli.ActionHelp, inv.Action)
	}
	inv, err := cli.ParseArgs([]string{"--version"})
	require.NoError(t, err)
	assert.Equal(t, cli.ActionVersion, inv.Action)
}

func TestParseArgs_StopsAtFirstTerminalToken(t *testing.T) {
	inv, err := cli.ParseArgs([]string{"--relax-struct-store", "--help", "--target-env", "bogus"})
	require.NoError(t, err)
	assert.Equal(t, cli.ActionHelp, inv.Action)
	assert.True(t, inv.Config.Options.RelaxStructStore())

	inv, err = cli.ParseArgs([]string{"--max-struct-depth", "2", "--bogus", "--relax-struct-store"})
	argError(t, err)
	v, ok := inv.Config.Options.Limit(domain.LimitStructDepth)
	assert.True(t, ok, "options before the error stay applied")
	assert.Equal(t, uint32(2), v)
	assert.False(t, inv.Config.Options.RelaxStructStore(), "options after the error are not applied")
}

func TestParseArgs_EmptyFileNameIsAnInput(t *testing.T) {
	inv, err := cli.ParseArgs([]string{""})
	require.NoError(t, err)
	assert.True(t, inv.Config.HasInput())
	assert.False(t, inv.Config.ReadsStdin())

	_, err = cli.ParseArgs([]string{"", "b.spv"})
	assert.Equal(t, "More than one input file specified", argError(t, err).Message)
}
