package commands

import (
	"strings"
	"testing"

	"github.com/josephlewis42/sgrep/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGrep(t *testing.T) {
	cases := goldenTestSuite{
		"grep-basic":       {Args: []string{"grep", "apple", "/fruit.txt"}},
		"grep-ignore-case": {Args: []string{"grep", "-i", "apple", "/fruit.txt", "/veg.txt"}},
		"grep-invert":      {Args: []string{"grep", "-v", "a", "/fruit.txt"}},
		"grep-word":        {Args: []string{"grep", "-w", "--no-headers", "apple|tart", "/fruit.txt"}},
		"grep-word-long":   {Args: []string{"grep", "--word-regexp", "app", "/fruit.txt"}},
		"grep-only":        {Args: []string{"grep", "--only-matching", "an", "/fruit.txt"}},
		"grep-limit":       {Args: []string{"grep", "-C", "1", "a", "/fruit.txt", "/veg.txt"}},
		"grep-limit-only":  {Args: []string{"grep", "-o", "-C", "1", "p+", "/fruit.txt"}},
		"grep-invert-only": {Args: []string{"grep", "-vo", "a", "/fruit.txt"}},
		"grep-stdin":       {Args: []string{"grep", "t", "/veg.txt"}, Stdin: "one\ntwo\nthree\n"},
		"grep-no-pattern":  {Args: []string{"grep"}, Exit: 1},
		"grep-no-input":    {Args: []string{"grep", "foo"}, Exit: 1},
		"grep-missing":     {Args: []string{"grep", "foo", "/fruit.txt", "/nope.txt"}, Exit: 1},
		"grep-bad-pattern": {Args: []string{"grep", "(", "/fruit.txt"}, Exit: 1},
		"grep-operand-opt": {Args: []string{"grep", "cherry", "-i", "/fruit.txt"}, Exit: 1},
	}

	cases.Run(t, Grep)
}

func TestGrep_help(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			cmd := vostest.Command(Grep, "sgrep", flag, "ignored", "/missing.txt")

			stdout, stderr, err := cmd.Output()
			assert.Nil(t, err)
			assert.Equal(t, 0, cmd.ExitStatus)
			assert.Empty(t, string(stderr))

			help := string(stdout)
			assert.True(t, strings.HasPrefix(help, "usage: sgrep [OPTIONS] PATTERN [FILE...]\n"))
			for _, opt := range []string{"--ignore-case", "--invert-match", "--word-regexp", "--only-matching", "--context", "--config", "--engine"} {
				assert.Contains(t, help, opt)
			}
		})
	}
}

func TestGrep_missingFile(t *testing.T) {
	cmd := vostest.Command(Grep, "sgrep", "apple", "/fruit.txt", "/nope.txt")
	assert.Nil(t, afero.WriteFile(cmd.FS, "/fruit.txt", []byte("apple pie\n"), 0600))

	stdout, stderr, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Empty(t, string(stdout), "no output before every file is open")
	assert.Equal(t, "No file /nope.txt found!\n", string(stderr))
}

func TestGrep_badOptions(t *testing.T) {
	cases := map[string]struct {
		args     []string
		contains string
	}{
		"not a number":   {[]string{"-C", "many", "a", "/fruit.txt"}, "error:"},
		"negative":       {[]string{"-C", "-2", "a", "/fruit.txt"}, "negative"},
		"unknown option": {[]string{"-P", "a", "/fruit.txt"}, "error:"},
		"unknown engine": {[]string{"--engine=pcre", "a", "/fruit.txt"}, "error:"},
		"bad config":     {[]string{"--config=/nope.yaml", "a", "/fruit.txt"}, "couldn't load config"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Grep, "grep", tc.args...)
			stageFiles(t, cmd.FS)

			out, err := cmd.CombinedOutput()
			assert.Nil(t, err)
			assert.Equal(t, 1, cmd.ExitStatus)
			assert.Contains(t, string(out), tc.contains)
			assert.NotContains(t, string(out), "File: /fruit.txt")
		})
	}
}

func TestGrep_noMatchesIsSuccess(t *testing.T) {
	cmd := vostest.Command(Grep, "grep", "zebra", "/fruit.txt")
	stageFiles(t, cmd.FS)

	stdout, stderr, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "File: /fruit.txt\n", string(stdout))
	assert.Empty(t, string(stderr))
}

func TestGrep_config(t *testing.T) {
	const userConfig = "ignore_case: true\nheaders: false\nmax_count: 1\n"

	t.Run("environment", func(t *testing.T) {
		cmd := vostest.Command(Grep, "grep", "apple", "/fruit.txt")
		cmd.Env = []string{"SGREP_CONFIG=/home/gopher/sgrep.yaml"}
		stageFiles(t, cmd.FS)
		assert.Nil(t, afero.WriteFile(cmd.FS, "/home/gopher/sgrep.yaml", []byte(userConfig), 0600))

		stdout, _, err := cmd.Output()
		assert.Nil(t, err)
		assert.Equal(t, 0, cmd.ExitStatus)
		assert.Equal(t, "apple pie\n", string(stdout))
	})

	t.Run("flag overrides limit", func(t *testing.T) {
		cmd := vostest.Command(Grep, "grep", "--config", "/home/gopher", "-C", "5", "apple", "/fruit.txt")
		stageFiles(t, cmd.FS)
		assert.Nil(t, afero.WriteFile(cmd.FS, "/home/gopher/sgrep.yaml", []byte(userConfig), 0600))

		stdout, _, err := cmd.Output()
		assert.Nil(t, err)
		assert.Equal(t, 0, cmd.ExitStatus)
		assert.Equal(t, "apple pie\nApple tart\n", string(stdout))
	})

	t.Run("flags only switch on", func(t *testing.T) {
		cmd := vostest.Command(Grep, "grep", "--config=/sgrep.yaml", "-v", "e", "/veg.txt")
		stageFiles(t, cmd.FS)
		assert.Nil(t, afero.WriteFile(cmd.FS, "/sgrep.yaml", []byte("invert_match: true\n"), 0600))

		stdout, _, err := cmd.Output()
		assert.Nil(t, err)
		assert.Equal(t, "File: /veg.txt\ncarrot\nbroccoli\n", string(stdout))
	})
}

func TestGrep_engines(t *testing.T) {
	for _, engine := range []string{"std", "coregex"} {
		t.Run(engine, func(t *testing.T) {
			cmd := vostest.Command(Grep, "grep", "--engine="+engine, "-iw", "APPLE|cherry", "/fruit.txt")
			stageFiles(t, cmd.FS)

			stdout, stderr, err := cmd.Output()
			assert.Nil(t, err)
			assert.Empty(t, string(stderr))
			assert.Equal(t, "File: /fruit.txt\napple pie\nApple tart\ncherry\n", string(stdout))
		})
	}
}

func TestGrep_logging(t *testing.T) {
	t.Run("debug flag", func(t *testing.T) {
		cmd := vostest.Command(Grep, "grep", "--debug", "apple", "/fruit.txt")
		stageFiles(t, cmd.FS)

		stdout, stderr, err := cmd.Output()
		assert.Nil(t, err)
		assert.Equal(t, "File: /fruit.txt\napple pie\n", string(stdout))
		assert.Contains(t, string(stderr), "search finished")
		assert.Contains(t, string(stderr), `"lines_written": 1`)
	})

	t.Run("process logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		cmd := vostest.Command(Grep, "grep", "-o", "-C", "2", "apple", "/fruit.txt")
		cmd.Logger = zap.New(core)
		stageFiles(t, cmd.FS)

		_, stderr, err := cmd.Output()
		assert.Nil(t, err)
		// Diagnostics below the configured level stay off stderr.
		assert.NotContains(t, string(stderr), "search finished")

		assert.Equal(t, 1, logs.FilterMessage("option ignored").Len())
		finished := logs.FilterMessage("search finished").All()
		if assert.Len(t, finished, 1) {
			assert.Equal(t, "grep", finished[0].LoggerName)
		}
	})

	t.Run("invalid invocation", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		cmd := vostest.Command(Grep, "grep")
		cmd.Logger = zap.New(core)

		assert.Nil(t, cmd.Run())
		assert.Equal(t, 1, cmd.ExitStatus)
		assert.Equal(t, 1, logs.FilterMessage("invalid invocation").Len())
	})
}
