package scene_test

import (
	"strings"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/livescene/scene"
	"github.com/livescene/scene/lexer"
)

func TestGrammarVerifies(t *testing.T) {
	require.NoError(t, scene.VerifyGrammar())
}

func TestGrammarMentionsEveryKeyword(t *testing.T) {
	for _, kw := range lexer.Keywords() {
		require.True(t, strings.Contains(scene.Grammar, `"`+kw+`"`), kw)
	}
}
