package scene

import (
	"strconv"
	"strings"

	"github.com/livescene/scene/lexer"
)

// Productions of the scene grammar. Every production either succeeds, leaving the cursor after the
// text it matched, or fails with a syntax error. Callers that try alternatives rewind on failure.

var arithOps = map[string]ArithOp{"+": Plus, "-": Minus, "*": Mult, "/": Div}

var compareOps = map[string]CompareOp{
	"<=": LesserOrEqual,
	">=": GreaterOrEqual,
	"=":  Equal,
	"<":  Lesser,
	">":  Greater,
}

// expr := term (('+'|'-') term)*
func (c *parseContext) parseExpr() (Operation, error) {
	defer c.Enter("expr")()
	left, err := c.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		checkpoint := c.MakeCheckpoint()
		op, ok := c.Operator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := c.parseTerm()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return left, nil
		}
		left = Calculation{Left: left, Op: arithOps[op], Right: right}
	}
}

// term := factor (('*'|'/') factor)*
func (c *parseContext) parseTerm() (Operation, error) {
	defer c.Enter("term")()
	left, err := c.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		checkpoint := c.MakeCheckpoint()
		op, ok := c.Operator("*", "/")
		if !ok {
			return left, nil
		}
		right, err := c.parseFactor()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return left, nil
		}
		left = Calculation{Left: left, Op: arithOps[op], Right: right}
	}
}

// factor := '(' expr ')' | number | 'sin' '(' expr ')' | 'cos' '(' expr ')' | 'time' | variable
func (c *parseContext) parseFactor() (Operation, error) {
	defer c.Enter("factor")()
	checkpoint := c.MakeCheckpoint()
	tok := c.Peek()
	switch {
	case tok.Type == lexer.Operator && tok.Value == "(":
		c.Next()
		inner, err := c.parseExpr()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return nil, err
		}
		if _, ok := c.Operator(")"); !ok {
			err := c.Unexpected(`")"`)
			c.LoadCheckpoint(checkpoint)
			return nil, err
		}
		return inner, nil

	case tok.Type == lexer.Operator && (tok.Value == "-" || tok.Value == "+"):
		// A sign is only part of a literal when it directly abuts the digits.
		c.Next()
		digits := c.Peek()
		if digits.Type != lexer.Number || digits.Pos.Offset != tok.Pos.Offset+1 {
			c.LoadCheckpoint(checkpoint)
			return nil, c.Unexpected("a factor")
		}
		c.Next()
		return c.number(tok.Value+digits.Value, checkpoint)

	case tok.Type == lexer.Number:
		c.Next()
		return c.number(tok.Value, checkpoint)

	case tok.Type == lexer.Ident:
		switch tok.Value {
		case "sin", "cos":
			c.Next()
			if _, ok := c.Operator("("); !ok {
				err := c.Unexpected(`"("`)
				c.LoadCheckpoint(checkpoint)
				return nil, err
			}
			arg, err := c.parseExpr()
			if err != nil {
				c.LoadCheckpoint(checkpoint)
				return nil, err
			}
			if _, ok := c.Operator(")"); !ok {
				err := c.Unexpected(`")"`)
				c.LoadCheckpoint(checkpoint)
				return nil, err
			}
			if tok.Value == "sin" {
				return Identity{Sin{Arg: arg}}, nil
			}
			return Identity{Cos{Arg: arg}}, nil

		case "time":
			c.Next()
			return Identity{Time{}}, nil
		}
		if lexer.IsKeyword(tok.Value) {
			return nil, c.Unexpected("a factor")
		}
		c.Next()
		return Identity{Variable{Name: tok.Value}}, nil
	}
	return nil, c.Unexpected("a factor")
}

func (c *parseContext) number(text string, checkpoint lexer.Checkpoint) (Operation, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		// Out of range literals still parse to ±Inf, matching IEEE-754 semantics elsewhere.
		if nerr, ok := err.(*strconv.NumError); !ok || nerr.Err != strconv.ErrRange {
			c.LoadCheckpoint(checkpoint)
			return nil, c.Unexpected("a number")
		}
	}
	return num(float32(v)), nil
}

// bool_expr := bool_term ('or' bool_term)*
func (c *parseContext) parseBoolExpr() (Operation, error) {
	defer c.Enter("bool_expr")()
	left, err := c.parseBoolTerm()
	if err != nil {
		return nil, err
	}
	for {
		checkpoint := c.MakeCheckpoint()
		if !c.Keyword("or") {
			return left, nil
		}
		right, err := c.parseBoolTerm()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return left, nil
		}
		left = Condition{Left: left, Op: Or, Right: right}
	}
}

// bool_term := bool_factor ('and' bool_factor)*
func (c *parseContext) parseBoolTerm() (Operation, error) {
	defer c.Enter("bool_term")()
	left, err := c.parseBoolFactor()
	if err != nil {
		return nil, err
	}
	for {
		checkpoint := c.MakeCheckpoint()
		if !c.Keyword("and") {
			return left, nil
		}
		right, err := c.parseBoolFactor()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return left, nil
		}
		left = Condition{Left: left, Op: And, Right: right}
	}
}

// bool_factor := '(' bool_expr ')' | comparison | 'true' | 'false'
//
// A leading "(" may open either a nested condition or an arithmetic operand of a comparison, eg.
// "(x + 1) > 2". The nested condition is tried first.
func (c *parseContext) parseBoolFactor() (Operation, error) {
	defer c.Enter("bool_factor")()
	checkpoint := c.MakeCheckpoint()
	if _, ok := c.Operator("("); ok {
		inner, err := c.parseBoolExpr()
		if err == nil {
			if _, ok := c.Operator(")"); ok {
				return inner, nil
			}
		}
		c.LoadCheckpoint(checkpoint)
	}
	switch {
	case c.Keyword("true"):
		return Identity{Boolean{Value: true}}, nil
	case c.Keyword("false"):
		return Identity{Boolean{Value: false}}, nil
	}
	return c.parseComparison()
}

// comparison := expr ('<='|'>='|'='|'<'|'>') expr
func (c *parseContext) parseComparison() (Operation, error) {
	defer c.Enter("comparison")()
	checkpoint := c.MakeCheckpoint()
	left, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	op, ok := c.Operator("<=", ">=", "=", "<", ">")
	if !ok {
		err := c.Unexpected("a comparison operator")
		c.LoadCheckpoint(checkpoint)
		return nil, err
	}
	right, err := c.parseExpr()
	if err != nil {
		c.LoadCheckpoint(checkpoint)
		return nil, err
	}
	return Condition{Left: left, Op: compareOps[op], Right: right}, nil
}

// statement := declaration | shape | move | reset | color | for | conditional
//
// Alternatives are tried in this order and the first to match wins.
func (c *parseContext) parseStatement() (Command, error) {
	defer c.Enter("statement")()
	alternatives := []func() (Command, error){
		c.parseDeclaration,
		c.parseShape,
		c.parseMove,
		c.parseReset,
		c.parseColor,
		c.parseFor,
		c.parseConditional,
	}
	checkpoint := c.MakeCheckpoint()
	for _, alternative := range alternatives {
		cmd, err := alternative()
		if err == nil {
			return cmd, nil
		}
		c.LoadCheckpoint(checkpoint)
	}
	return nil, c.Deepest(c.Unexpected("a statement"))
}

// declaration := name ':' expr
func (c *parseContext) parseDeclaration() (Command, error) {
	defer c.Enter("declaration")()
	tok := c.Peek()
	if tok.Type != lexer.Ident || lexer.IsKeyword(tok.Value) {
		return nil, c.Unexpected("a variable name")
	}
	c.Next()
	if _, ok := c.Operator(":"); !ok {
		return nil, c.Unexpected(`":"`)
	}
	value, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	return Declaration{Name: tok.Value, Value: value}, nil
}

// shape := ('circle'|'square') [expr [expr]]
//
// Only a square takes a second argument.
func (c *parseContext) parseShape() (Command, error) {
	defer c.Enter("shape")()
	switch {
	case c.Keyword("circle"):
		size, ok := c.optionalExpr()
		if !ok {
			size = num(DefaultSize)
		}
		return Instantiation{Circle{Size: size}}, nil

	case c.Keyword("square"):
		width, ok := c.optionalExpr()
		if !ok {
			return Instantiation{Square{Width: num(DefaultSize), Height: num(DefaultSize)}}, nil
		}
		height, ok := c.optionalExpr()
		if !ok {
			height = width
		}
		return Instantiation{Square{Width: width, Height: height}}, nil
	}
	return nil, c.Unexpected(`"circle" or "square"`)
}

func (c *parseContext) optionalExpr() (Operation, bool) {
	checkpoint := c.MakeCheckpoint()
	op, err := c.parseExpr()
	if err != nil {
		c.LoadCheckpoint(checkpoint)
		return nil, false
	}
	return op, true
}

// move := 'move' expr ',' expr
func (c *parseContext) parseMove() (Command, error) {
	defer c.Enter("move")()
	if !c.Keyword("move") {
		return nil, c.Unexpected(`"move"`)
	}
	x, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := c.Operator(","); !ok {
		return nil, c.Unexpected(`","`)
	}
	y, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	return Move{X: x, Y: y}, nil
}

// reset := 'reset_m'
func (c *parseContext) parseReset() (Command, error) {
	if !c.Keyword("reset_m") {
		return nil, c.Unexpected(`"reset_m"`)
	}
	return ResetMove{}, nil
}

// color := 'color' expr expr expr
func (c *parseContext) parseColor() (Command, error) {
	defer c.Enter("color")()
	if !c.Keyword("color") {
		return nil, c.Unexpected(`"color"`)
	}
	var channels [3]Operation
	for i := range channels {
		op, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		channels[i] = op
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// for := 'for' integer '{' program '}'
func (c *parseContext) parseFor() (Command, error) {
	defer c.Enter("for")()
	if !c.Keyword("for") {
		return nil, c.Unexpected(`"for"`)
	}
	count, err := c.parseCount()
	if err != nil {
		return nil, err
	}
	c.SkipNewlines()
	if _, ok := c.Operator("{"); !ok {
		return nil, c.Unexpected(`"{"`)
	}
	body := c.parseCommands()
	if _, ok := c.Operator("}"); !ok {
		return nil, c.Unexpected(`"}"`)
	}
	return For{Count: count, Body: body}, nil
}

func (c *parseContext) parseCount() (int32, error) {
	sign := ""
	tok := c.Peek()
	if tok.Type == lexer.Operator && (tok.Value == "-" || tok.Value == "+") {
		c.Next()
		sign = tok.Value
		next := c.Peek()
		if next.Pos.Offset != tok.Pos.Offset+1 {
			return 0, c.Unexpected("an integer")
		}
	}
	tok = c.Peek()
	if tok.Type != lexer.Number || strings.ContainsAny(tok.Value, ".eE") {
		return 0, c.Unexpected("an integer")
	}
	n, err := strconv.ParseInt(sign+tok.Value, 10, 32)
	if err != nil {
		return 0, c.Unexpected("an integer that fits in 32 bits")
	}
	c.Next()
	return int32(n), nil
}

// conditional := 'if' bool_expr program ('else' 'if' bool_expr program)* ('else' program)? 'end' 'if'
func (c *parseContext) parseConditional() (Command, error) {
	defer c.Enter("conditional")()
	if !c.Keyword("if") {
		return nil, c.Unexpected(`"if"`)
	}
	predicate, err := c.parseBoolExpr()
	if err != nil {
		return nil, err
	}
	block := ConditionalBlock{Branches: []Branch{{Kind: IfB, Predicate: predicate, Body: c.parseCommands()}}}
	for c.Keyword("else") {
		// "else if" must share a line; an "if" on the following line opens a nested block.
		if c.Keyword("if") {
			predicate, err := c.parseBoolExpr()
			if err != nil {
				return nil, err
			}
			block.Branches = append(block.Branches, Branch{Kind: ElseIfB, Predicate: predicate, Body: c.parseCommands()})
			continue
		}
		block.Branches = append(block.Branches, Branch{Kind: ElseB, Predicate: Identity{Boolean{Value: true}}, Body: c.parseCommands()})
		break
	}
	if !c.Keyword("end") {
		return nil, c.Unexpected(`"else" or "end if"`)
	}
	if !c.Keyword("if") {
		return nil, c.Unexpected(`"if"`)
	}
	return block, nil
}

// program := statement*
//
// Newlines between statements are skipped. Parsing stops, without error, at the first position where
// no statement matches; the cursor is left at that statement's first token.
func (c *parseContext) parseCommands() []Command {
	defer c.Enter("program")()
	commands := []Command{}
	for {
		c.SkipNewlines()
		checkpoint := c.MakeCheckpoint()
		if c.Peek().EOF() {
			return commands
		}
		cmd, err := c.parseStatement()
		if err != nil {
			c.LoadCheckpoint(checkpoint)
			return commands
		}
		commands = append(commands, cmd)
	}
}
