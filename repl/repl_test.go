/*
File    : frostri-lang/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FRostri/frostri-lang/eval"
	"github.com/FRostri/frostri-lang/objects"
	"github.com/stretchr/testify/assert"
)

func newTestRepl() *Repl {
	return NewRepl("banner", "1.0.0", "tester", "----", "MIT", "L >>> ")
}

func TestExecuteBuffer_CompleteStatementEvaluatesAndResetsBuffer(t *testing.T) {
	r := newTestRepl()
	evaluator := eval.NewEvaluator()
	var out bytes.Buffer
	evaluator.SetWriter(&out)
	env := objects.NewEnvironment()

	var buf strings.Builder
	buf.WriteString("5 + 5;")

	r.executeBuffer(&out, &buf, evaluator, env)

	assert.Contains(t, out.String(), "10")
	assert.Equal(t, 0, buf.Len(), "a clean parse must reset the buffer")
}

func TestExecuteBuffer_IncompleteStatementKeepsAccumulating(t *testing.T) {
	r := newTestRepl()
	evaluator := eval.NewEvaluator()
	var out bytes.Buffer
	evaluator.SetWriter(&out)
	env := objects.NewEnvironment()

	var buf strings.Builder
	buf.WriteString("fun add(x, y) {")

	r.executeBuffer(&out, &buf, evaluator, env)

	assert.NotEqual(t, 0, buf.Len(), "an unfinished block must not be discarded")

	buf.WriteString("\n")
	buf.WriteString("x + y;")
	buf.WriteString("\n")
	buf.WriteString("};")

	out.Reset()
	r.executeBuffer(&out, &buf, evaluator, env)

	assert.Equal(t, 0, buf.Len())
}

func TestExecuteBuffer_PersistsEnvironmentAcrossCalls(t *testing.T) {
	r := newTestRepl()
	evaluator := eval.NewEvaluator()
	var out bytes.Buffer
	evaluator.SetWriter(&out)
	env := objects.NewEnvironment()

	var buf strings.Builder
	buf.WriteString("var x = 40;")
	r.executeBuffer(&out, &buf, evaluator, env)

	out.Reset()
	buf.Reset()
	buf.WriteString("x + 2;")
	r.executeBuffer(&out, &buf, evaluator, env)

	assert.Contains(t, out.String(), "42")
}

func TestExecuteBuffer_EvaluationErrorIsPrintedAndBufferReset(t *testing.T) {
	r := newTestRepl()
	evaluator := eval.NewEvaluator()
	var out bytes.Buffer
	evaluator.SetWriter(&out)
	env := objects.NewEnvironment()

	var buf strings.Builder
	buf.WriteString("foobar;")
	r.executeBuffer(&out, &buf, evaluator, env)

	assert.Contains(t, out.String(), "Error[0004]")
	assert.Equal(t, 0, buf.Len())
}
