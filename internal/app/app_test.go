package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-bank/internal/config"
	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

func TestNewProvider(t *testing.T) {
	p, err := newProvider(config.Import{Source: external.SourceOpenTDB})
	require.NoError(t, err)
	assert.IsType(t, &external.OpenTDBClient{}, p)

	p, err = newProvider(config.Import{Source: external.SourceTriviaAPI, TriviaAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &external.TriviaAPIClient{}, p)

	p, err = newProvider(config.Import{Source: external.SourceGenerator, GeneratorURL: "http://gen:9090"})
	require.NoError(t, err)
	assert.IsType(t, &external.GeneratorClient{}, p)

	_, err = newProvider(config.Import{Source: external.SourceGenerator})
	assert.Error(t, err)

	_, err = newProvider(config.Import{Source: "jeopardy"})
	assert.ErrorContains(t, err, "jeopardy")
}
