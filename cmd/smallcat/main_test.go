package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smallcat/internal/catfile"
)

const peopleYAML = `
name: people
objects: [Person, String, Integer]
arrows:
  - id_Person: Person -> Person
  - id_String: String -> String
  - id_Integer: Integer -> Integer
  - first_name: Person -> String
  - last_name: Person -> String
  - age: Person -> Integer
splits:
  - object: Person
    rules:
      - group: name
        contains: name
    fallback: age
`

const triangleYAML = `
name: triangle
objects: [X, Y, Z]
arrows:
  - id_X: X -> X
  - id_Y: Y -> Y
  - id_Z: Z -> Z
  - name: f
    domain: X
    codomain: Y
    equals: [id_X;f, f;id_Y]
  - name: g
    domain: Y
    codomain: Z
    equals: [id_Y;g, g;id_Z]
  - name: h
    domain: X
    codomain: Z
    equals: [id_X;h, h;id_Z, f;g]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	showYAML, toyYAML, checkInfos, verbose = false, false, false, false
	splitFlags.object, splitFlags.strategy, splitFlags.fallback, splitFlags.out = "", "", "", ""
	splitFlags.rules = nil
	splitFlags.threshold = catfile.DefaultThreshold
	splitFlags.identities = false

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestShow(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangleYAML)

	out, err := execute(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "objects: [X Y Z]")
	assert.Contains(t, out, "h: X -> Z")

	out, err = execute(t, "show", "--yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "f;g")
}

func TestShow_InvalidFile(t *testing.T) {
	path := writeFile(t, "bad.yaml", "objects: [A]\narrows:\n  - f: A -> B\n")

	_, err := execute(t, "show", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_object")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "triangle.yaml", triangleYAML)

	out, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 1 category checked")

	people := writeFile(t, "people.yaml", peopleYAML)

	out, err = execute(t, "check", good, people)
	require.Error(t, err)
	assert.Contains(t, out, "[people]")
	assert.Contains(t, out, "left_unit")
}

func TestCompose(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangleYAML)

	out, err := execute(t, "compose", path, "f", "g")
	require.NoError(t, err)
	assert.Equal(t, "f;g = h: X -> Z\n", out)

	_, err = execute(t, "compose", path, "g", "f")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain mismatch")
}

func TestIso(t *testing.T) {
	path := writeFile(t, "pair.yaml", "objects: [A, B]\narrows:\n  - f: A -> B\n  - g: B -> A\n")

	out, err := execute(t, "iso", path, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "A and B are isomorphic: true\n", out)

	_, err = execute(t, "iso", path, "A", "Q")
	assert.Error(t, err)
}

func TestSplit_FromFile(t *testing.T) {
	path := writeFile(t, "people.yaml", peopleYAML)

	out, err := execute(t, "split", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# Person/name")
	assert.Contains(t, out, "arrows: [first_name: Person -> String, last_name: Person -> String]")
	assert.Contains(t, out, "# Person/age")
}

func TestSplit_FromFlagsWritesPieces(t *testing.T) {
	path := writeFile(t, "people.yaml", peopleYAML)
	dir := filepath.Join(t.TempDir(), "pieces")

	_, err := execute(t, "split", path, "--object", "Person", "--strategy", "token", "--fallback", "scalar",
		"--identities", "--out", dir)
	require.NoError(t, err)

	f, err := catfile.LoadFile(filepath.Join(dir, "people-Person-name.yaml"))
	require.NoError(t, err)

	c, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, c.ArrowCount())

	_, err = os.Stat(filepath.Join(dir, "people-Person-scalar.yaml"))
	assert.NoError(t, err)
}

func TestSplit_BadRule(t *testing.T) {
	path := writeFile(t, "people.yaml", peopleYAML)

	_, err := execute(t, "split", path, "--object", "Person", "--rule", "name")
	assert.ErrorContains(t, err, "GROUP=SUBSTRING")
}

func TestToy(t *testing.T) {
	out, err := execute(t, "toy", "two")
	require.NoError(t, err)
	assert.Equal(t, "objects: [A B]\narrows: [id_A: A -> A, id_B: B -> B, f: A -> B]\n", out)

	out, err = execute(t, "toy", "--yaml", "one")
	require.NoError(t, err)
	assert.Contains(t, out, "name: one")

	_, err = execute(t, "toy", "seven")
	assert.Error(t, err)
}

func TestExamples(t *testing.T) {
	out, err := execute(t, "check", filepath.Join("..", "..", "examples", "triangle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok:")

	out, err = execute(t, "split", filepath.Join("..", "..", "examples", "people.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "# Person/age\nobjects: [Person Integer]\narrows: [age: Person -> Integer]")
}
