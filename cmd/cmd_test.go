package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("MATHMONSTERS_LOG_FILE", filepath.Join(t.TempDir(), "test.log"))

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so one execution does not
// leak into the next through the shared command tree.
func resetFlags(c *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestPreviewSeededIsDeterministic(t *testing.T) {
	args := []string{"preview", "--skill", "math.addition", "--grade", "2", "--seed", "test", "--count", "3"}
	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Seed:  test")
	assert.Contains(t, first, " 1. ")
	assert.Contains(t, first, " 3. ")
}

func TestPreviewUnknownSkill(t *testing.T) {
	_, err := execute(t, "preview", "--skill", "math.division", "--count", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "math.division")
}

func TestReplayPrintsTrace(t *testing.T) {
	out, err := execute(t, "replay", "--seed", "abc", "--answers", "ok@1000,ok@1000,miss@4000")
	require.NoError(t, err)

	assert.Contains(t, out, "Seed abc")
	assert.Equal(t, 3, strings.Count(out, "ms  you"))
	assert.Contains(t, out, "Status: in_progress")
}

func TestReplayRejectsBadLatency(t *testing.T) {
	_, err := execute(t, "replay", "--seed", "abc", "--answers", "ok@fast")
	require.Error(t, err)
}

func TestSaveRoundTripThroughDatabase(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "game.db")
	file := filepath.Join(dir, "save.json")

	_, err := execute(t, "--db", db, "save", "export", file)
	require.Error(t, err, "no save yet")

	v1 := `{"version":1,"child":{"grade":3},"progress":{"xp":12}}`
	require.NoError(t, os.WriteFile(file, []byte(v1), 0o644))
	out, err := execute(t, "--db", db, "save", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "grade 3")

	out, err = execute(t, "--db", db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "12 XP")

	_, err = execute(t, "--db", db, "reset", "--yes")
	require.NoError(t, err)
	out, err = execute(t, "--db", db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved game")
}

func TestCatalogValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": "nope"}`), 0o644))

	_, err := execute(t, "catalog", "validate", path)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mathmonsters "))
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestReplayDifficultyChangesQuestions(t *testing.T) {
	easy, err := execute(t, "replay", "--seed", "abc", "--skill", "math.addition", "--answers", "ok@1000,ok@1000")
	require.NoError(t, err)
	hard, err := execute(t, "replay", "--seed", "abc", "--skill", "math.addition", "--difficulty", "4", "--answers", "ok@1000,ok@1000")
	require.NoError(t, err)

	assert.Contains(t, easy, "diff 1→1")
	assert.Contains(t, hard, "diff 4→4")

	_, err = execute(t, "replay", "--seed", "abc", "--difficulty", "6")
	assert.Error(t, err)
	_, err = execute(t, "replay", "--answers", "ok")
	assert.Error(t, err, "seed is required without --from-save")
}

func TestReplayFromSave(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "game.db")
	file := filepath.Join(dir, "save.json")

	_, err := execute(t, "--db", db, "replay", "--from-save")
	require.Error(t, err, "no save yet")

	doc := `{"version":2,"child":{"grade":3},"progress":{"lastBattle":{
		"seed":"abc","skillId":"math.addition","grade":3,"skill":{"difficulty":4}}}}`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o644))
	_, err = execute(t, "--db", db, "save", "import", file)
	require.NoError(t, err)

	script := "ok@1000,miss@2500,ok@1500"
	fromSave, err := execute(t, "--db", db, "replay", "--from-save", "--answers", script)
	require.NoError(t, err)
	fromFlags, err := execute(t, "replay", "--seed", "abc", "--skill", "math.addition",
		"--grade", "3", "--difficulty", "4", "--answers", script)
	require.NoError(t, err)
	assert.Equal(t, fromFlags, fromSave)

	_, err = execute(t, "--db", db, "replay", "--from-save", "--seed", "other")
	assert.Error(t, err, "--from-save takes the seed from the save")
}
