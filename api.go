package scene

var defaultParser = MustNewParser()

// ParseExpr parses an arithmetic expression with the default parser.
func ParseExpr(src string) (string, Operation, error) { return defaultParser.ParseExpr(src) }

// ParseBoolExpr parses a boolean expression with the default parser.
func ParseBoolExpr(src string) (string, Operation, error) { return defaultParser.ParseBoolExpr(src) }

// ParseStatement parses one statement with the default parser.
func ParseStatement(src string) (string, Command, error) { return defaultParser.ParseStatement(src) }

// ParseProgram parses as many statements as possible with the default parser.
func ParseProgram(src string) (string, []Command) { return defaultParser.ParseProgram(src) }

// ParseString parses a complete program with the default parser.
func ParseString(src string) ([]Command, error) { return defaultParser.ParseString(src) }
