package host

import (
	"sync"

	"github.com/livescene/scene"
)

// Session holds the most recently accepted program for a live editing buffer.
//
// Text is only accepted when it parses completely. Otherwise the previous program keeps running and
// the parse failure is kept as the current diagnostic. A Session is safe for concurrent use.
type Session struct {
	parser  *scene.Parser
	options []scene.EvalOption

	mu         sync.Mutex
	source     string
	program    []scene.Command
	diagnostic error
	generation int
}

// NewSession creates a Session with an empty program. options are applied to every Frame.
func NewSession(parser *scene.Parser, options ...scene.EvalOption) *Session {
	return &Session{parser: parser, options: options, program: []scene.Command{}}
}

// Update offers new source text.
//
// If the text parses with no remainder it replaces the current program and nil is returned.
// Otherwise the current program is kept and the *scene.PartialParseError is returned.
func (s *Session) Update(text string) error {
	program, err := s.parser.ParseString(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.diagnostic = err
		return err
	}
	s.source = text
	s.program = program
	s.diagnostic = nil
	s.generation++
	return nil
}

// Program currently accepted.
func (s *Session) Program() []scene.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

// Source of the accepted program.
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Diagnostic from the most recent Update, nil if it was accepted.
func (s *Session) Diagnostic() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diagnostic
}

// Generation counts accepted updates.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Frame evaluates the accepted program at time.
func (s *Session) Frame(time float32) (*scene.Result, error) {
	return scene.Evaluate(s.Program(), time, s.options...)
}
