package probe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/probe"
)

type fakeRunner struct {
	out []byte
	err error
}

func (f fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f.out, f.err
}

func TestFileCommandProberTrimsOutput(t *testing.T) {
	p := &probe.FileCommandProber{Runner: fakeRunner{out: []byte("Bourne-Again shell script, ASCII text executable\n")}}
	desc, err := p.Probe(context.Background(), "/bin/some-script")
	require.NoError(t, err)
	assert.Equal(t, "Bourne-Again shell script, ASCII text executable", desc)
}

func TestFileCommandProberPropagatesError(t *testing.T) {
	p := &probe.FileCommandProber{Runner: fakeRunner{err: assert.AnError}}
	_, err := p.Probe(context.Background(), "/bin/nope")
	assert.Error(t, err)
}
