package dirid_test

import (
	"testing"

	"github.com/KilimcininKorOglu/dsagent/internal/dirid"
	"github.com/stretchr/testify/require"
)

func TestSIDResolveWellKnown(t *testing.T) {
	r := require.New(t)

	sid, err := dirid.ParseSIDString("S-1-5-18")
	r.NoError(err)
	r.Equal("Local System", sid.Resolve())
}

func TestSIDResolveFallsBackToString(t *testing.T) {
	r := require.New(t)

	sid, err := dirid.ParseSIDString("S-1-5-21-1111111111-2222222222-3333333333-1104")
	r.NoError(err)
	r.Equal(sid.String(), sid.Resolve())
}
