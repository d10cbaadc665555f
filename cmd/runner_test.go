package cmd_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/golox/cmd"
)

var testDir = "testdata"

var expectedOutputPattern = regexp.MustCompile(`// expect: ?(.*)`)
var errorLinePattern = regexp.MustCompile(`// (\[line \d+\] (?:parse|syntax) error.*)`)
var expectedRuntimeErrorPattern = regexp.MustCompile(`// expect runtime error: (.+)`)
var syntaxErrorPattern = regexp.MustCompile(`^ERROR (\[line \d+\] (?:parse|syntax) error.*)$`)
var runtimeErrorPattern = regexp.MustCompile(`^ERROR \[line (\d+)\] runtime error at '.*': (.+)$`)
var nonTestPattern = regexp.MustCompile(`// nontest`)

type Suite struct {
	name  string
	args  []string
	tests map[string]string
}

var allSuites = map[string]*Suite{}

func init() {
	defineTestSuites()
}

func TestAll(t *testing.T) {
	names := maps.Keys(allSuites)
	slices.Sort(names)
	runSuites(t, names)
}

func runSuites(t *testing.T, names []string) {
	t.Helper()
	t.Parallel()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			runSuite(t, allSuites[name])
		})
	}
}

func runSuite(t *testing.T, suite *Suite) {
	t.Helper()
	require.DirExists(t, testDir)

	var files []string
	err := filepath.WalkDir(testDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".lox" {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		runTest(t, suite, file)
	}
}

func runTest(t *testing.T, suite *Suite, path string) {
	test := &Test{path: path, suite: suite, expectedErrors: make(map[string]string)}

	t.Run(path, func(t *testing.T) {
		test.t = t
		if !test.parse() {
			t.Skip()
		}
		failures := test.run()
		if len(failures) > 0 {
			t.Fatalf("Test failed:\n%s", strings.Join(failures, "\n"))
		}
	})
}

type ExpectedOutput struct {
	line   int
	output string
}

type Test struct {
	t                    *testing.T
	path                 string
	suite                *Suite
	expectedOutput       []ExpectedOutput
	expectedErrors       map[string]string
	expectedRuntimeError string
	runtimeErrorLine     int
	expectedExitCode     int
	failures             []string
}

func (t *Test) parse() bool {
	// More specific paths override more general ones.
	parts := strings.Split(t.path, "/")
	var subpath string
	var state string
	for _, part := range parts {
		if subpath != "" {
			subpath += "/"
		}
		subpath += part

		if val, ok := t.suite.tests[subpath]; ok {
			state = val
		}
	}

	require.NotEmptyf(t.t, state, "Unknown test state for '%s'", t.path)
	if state == "skip" {
		return false
	}

	lines, err := os.ReadFile(t.path)
	require.NoError(t.t, err)

	for lineNum, line := range strings.Split(string(lines), "\n") {
		lineNum++

		if nonTestPattern.MatchString(line) {
			return false
		}

		match := expectedOutputPattern.FindStringSubmatch(line)
		if match != nil {
			t.expectedOutput = append(t.expectedOutput, ExpectedOutput{line: lineNum, output: match[1]})
			continue
		}

		match = errorLinePattern.FindStringSubmatch(line)
		if match != nil {
			t.expectedErrors[match[1]] = match[1]
			t.expectedExitCode = cmd.ExitDataErr
			continue
		}

		match = expectedRuntimeErrorPattern.FindStringSubmatch(line)
		if match != nil {
			t.runtimeErrorLine = lineNum
			t.expectedRuntimeError = match[1]
			t.expectedExitCode = cmd.ExitSoftware
		}
	}

	if len(t.expectedErrors) > 0 && t.expectedRuntimeError != "" {
		require.Fail(t.t, "parse", "TEST ERROR %s\nCannot expect both compile and runtime errors.", t.path)
		return false
	}

	return true
}

func (t *Test) run() []string {
	args := append(slices.Clone(t.suite.args), t.path)

	stdout := new(strings.Builder)
	stderr := new(strings.Builder)
	app := cmd.NewLoxApp(cmd.WithStdout(stdout), cmd.WithStderr(stderr))
	exitCode := app.Main(args)

	outputLines := strings.Split(stdout.String(), "\n")
	errorLines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")

	if t.expectedRuntimeError != "" {
		t.validateRuntimeError(errorLines)
	} else {
		t.validateCompileErrors(errorLines)
	}
	t.validateExitCode(exitCode, errorLines)
	t.validateOutput(outputLines)

	return t.failures
}

func (t *Test) validateRuntimeError(errorLines []string) {
	if len(errorLines) != 1 || errorLines[0] == "" {
		t.Errorf("Expected runtime error '%s' and got: %v", t.expectedRuntimeError, errorLines)
		return
	}

	match := runtimeErrorPattern.FindStringSubmatch(errorLines[0])
	if match == nil {
		t.Errorf("Expected runtime error '%s' and got: %s", t.expectedRuntimeError, errorLines[0])
		return
	}

	if match[2] != t.expectedRuntimeError {
		t.Errorf("Expected runtime error '%s' and got: %s", t.expectedRuntimeError, match[2])
	}

	if line, _ := strconv.Atoi(match[1]); line != t.runtimeErrorLine {
		t.Errorf("Expected runtime error on line %d but was on line %d.", t.runtimeErrorLine, line)
	}
}

func (t *Test) validateCompileErrors(errorLines []string) {
	foundErrors := map[string]bool{}
	unexpectedCount := 0

	for _, line := range errorLines {
		match := syntaxErrorPattern.FindStringSubmatch(line)
		if match != nil {
			if _, ok := t.expectedErrors[match[1]]; ok {
				foundErrors[match[1]] = true
			} else {
				if unexpectedCount < 10 {
					t.Errorf("Unexpected error: %s", line)
				}
				unexpectedCount++
			}
		} else if line != "" {
			if unexpectedCount < 10 {
				t.Errorf("Unexpected output on stderr: %s", line)
			}
			unexpectedCount++
		}
	}

	if unexpectedCount > 10 {
		t.Errorf("(truncated %d more...)", unexpectedCount-10)
	}

	for errorMsg := range t.expectedErrors {
		if _, ok := foundErrors[errorMsg]; !ok {
			t.Errorf("Missing expected error: %s", errorMsg)
		}
	}
}

func (t *Test) validateExitCode(exitCode int, errorLines []string) {
	if exitCode == t.expectedExitCode {
		return
	}

	if len(errorLines) > 10 {
		errorLines = errorLines[:10]
		errorLines = append(errorLines, "(truncated...)")
	}

	t.Errorf("Expected return code %d and got %d. Stderr: %v", t.expectedExitCode, exitCode, errorLines)
}

func (t *Test) validateOutput(outputLines []string) {
	if len(outputLines) > 0 && outputLines[len(outputLines)-1] == "" {
		outputLines = outputLines[:len(outputLines)-1]
	}

	if len(outputLines) > len(t.expectedOutput) {
		t.Errorf("Got output '%s' when none was expected.", outputLines[len(t.expectedOutput)])
		return
	}

	for i, line := range outputLines {
		expected := t.expectedOutput[i]
		if expected.output != line {
			t.Errorf("Expected output '%s' on line %d and got '%s'.", expected.output, expected.line, line)
		}
	}

	for i := len(outputLines); i < len(t.expectedOutput); i++ {
		expected := t.expectedOutput[i]
		t.Errorf("Missing expected output '%s' on line %d.", expected.output, expected.line)
	}
}

func (t *Test) Errorf(format string, args ...interface{}) {
	t.t.Helper()
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
	t.t.Errorf(format, args...)
}

func defineTestSuites() {
	suite := func(name string, args []string, tests ...map[string]string) {
		suiteTests := map[string]string{}
		for _, test := range tests {
			maps.Copy(suiteTests, test)
		}
		allSuites[name] = &Suite{name: name, args: args, tests: suiteTests}
	}

	suite("golox", nil, map[string]string{
		"testdata": "pass",
	})

	// Only the expression chapters, run through the same entry point.
	suite("expressions", nil, map[string]string{
		"testdata":             "skip",
		"testdata/expressions": "pass",
		"testdata/logical":     "pass",
	})
}
