package parser

import "fmt"

// Warning is a non-fatal note about markup that was kept as literal text.
type Warning struct {
	Line, Col int
	format    string
	args      []interface{}
}

func (w *Warning) Message() string {
	return fmt.Sprintf(w.format, w.args...)
}

func (w *Warning) String() string {
	return fmt.Sprintf("line %d:%d: %s", w.Line, w.Col, w.Message())
}

func (p *Parser) warnAt(line, col int, format string, args ...interface{}) {
	p.warnings = append(p.warnings, &Warning{
		Line:   line,
		Col:    col,
		format: format,
		args:   args,
	})
}

// Warnings returns the warnings collected so far.
func (p *Parser) Warnings() []*Warning {
	return p.warnings
}
