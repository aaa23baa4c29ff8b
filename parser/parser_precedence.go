/*
File    : frostri-lang/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/FRostri/frostri-lang/lexer"

// Operator precedence levels, ascending. LOWEST is the default starting
// precedence passed to parseExpression at statement position; CALL is the
// precedence used when a '(' appears in call position.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // myFunction(x)
)

// precedences maps infix-capable token types to their binding precedence.
// A token absent from this map defaults to LOWEST.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:             EQUALS,
	lexer.NOT_EQ:         EQUALS,
	lexer.LT:             LESSGREATER,
	lexer.GT:             LESSGREATER,
	lexer.LE:             LESSGREATER,
	lexer.GE:             LESSGREATER,
	lexer.PLUS:           SUM,
	lexer.MINUS:          SUM,
	lexer.DIVISION:       PRODUCT,
	lexer.MULTIPLICATION: PRODUCT,
	lexer.LPAREN:         CALL,
}
