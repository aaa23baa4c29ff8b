/*
File    : frostri-lang/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/FRostri/frostri-lang/objects"
)

// Error code registry (spec.md §6, plus the 0008 addition noted in
// SPEC_FULL.md §12 for the zero-divisor case the reference leaves
// unguarded).
const (
	codeTypeMismatch         = "0001"
	codeUnknownOperator      = "0002"
	codeUnknownInfixSameType = "0003"
	codeUndefinedIdentifier  = "0004"
	codeNotCallable          = "0005"
	codeBuiltinArity         = "0006"
	codeBuiltinArgumentType  = "0007"
	codeDivisionByZero       = "0008"
	codeFunctionArity        = "0009"
)

// newError builds an *objects.Error whose message begins with
// "on the line <N>.\n", per spec.md §3's Error invariant.
func newError(line int, code, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Code:    code,
		Message: fmt.Sprintf("on the line %d.\n%s", line, fmt.Sprintf(format, a...)),
	}
}

// newBuiltins constructs the fixed builtin table (get_len, print),
// capturing e so that print can optionally echo to the evaluator's writer.
func newBuiltins(e *Evaluator) map[string]*objects.Builtin {
	return map[string]*objects.Builtin{
		"get_len": {Fn: builtinGetLen},
		"print":   {Fn: e.builtinPrint},
	}
}

// builtinGetLen returns the character count of its single String argument.
func builtinGetLen(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return &objects.Error{
			Code:    codeBuiltinArity,
			Message: fmt.Sprintf("on the line 1.\nWrong number of arguments to 'get_len'. given %d, expected 1.", len(args)),
		}
	}

	str, ok := args[0].(*objects.String)
	if !ok {
		return &objects.Error{
			Code:    codeBuiltinArgumentType,
			Message: fmt.Sprintf("on the line 1.\nUnexpected type argument: expected 'STRING', received '%s'.", args[0].Type()),
		}
	}

	return &objects.Integer{Value: int64(len([]rune(str.Value)))}
}

// builtinPrint implements spec.md §4.4's corrected multi-arg semantics: a
// single String/Float/Integer/Boolean argument is echoed back unchanged;
// multiple arguments are rendered with Inspect() and joined with single
// spaces into a String. It also emits the same text to e.Writer as an
// optional side effect; only the return value is part of the contract.
func (e *Evaluator) builtinPrint(args ...objects.Object) objects.Object {
	if len(args) == 0 {
		return &objects.Error{
			Code:    codeBuiltinArity,
			Message: "on the line 1.\nWrong number of arguments to 'print'. given 0, expected 1 or more.",
		}
	}

	for _, arg := range args {
		if !isPrintable(arg) {
			return &objects.Error{
				Code:    codeBuiltinArgumentType,
				Message: fmt.Sprintf("on the line 1.\nUnexpected type argument: '%s' cannot be printed.", arg.Type()),
			}
		}
	}

	var result objects.Object
	if len(args) == 1 {
		result = args[0]
	} else {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.Inspect()
		}
		result = &objects.String{Value: strings.Join(parts, " ")}
	}

	fmt.Fprint(e.Writer, result.Inspect())
	return result
}

func isPrintable(obj objects.Object) bool {
	switch obj.Type() {
	case objects.StringObj, objects.FloatObj, objects.IntegerObj, objects.BooleanObj:
		return true
	default:
		return false
	}
}
