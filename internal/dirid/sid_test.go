package dirid_test

import (
	"testing"

	"github.com/KilimcininKorOglu/dsagent/internal/dirid"
	"github.com/stretchr/testify/require"
)

func TestParseSID(t *testing.T) {
	r := require.New(t)

	t.Run("parses a well-formed SID", func(t *testing.T) {
		sid, err := dirid.ParseSID([]byte{
			1, 1, // revision, count
			0, 0, 0, 0, 0, 5, // NT authority
			18, 0, 0, 0, // sub-authority 18, little-endian
		})
		r.NoError(err)
		r.Equal("S-1-5-18", sid.String())
	})

	t.Run("round-trips through Bytes", func(t *testing.T) {
		orig := []byte{
			1, 2,
			0, 0, 0, 0, 0, 21,
			21, 209, 51, 13, // sub-authority 1
			1, 2, 3, 4,
		}
		sid, err := dirid.ParseSID(orig)
		r.NoError(err)
		r.Equal(orig, sid.Bytes())
	})

	t.Run("rejects short buffers", func(t *testing.T) {
		_, err := dirid.ParseSID([]byte{1, 1, 0, 0})
		r.Error(err)
	})

	t.Run("rejects unsupported revision", func(t *testing.T) {
		_, err := dirid.ParseSID([]byte{2, 0, 0, 0, 0, 0, 0, 0})
		r.Error(err)
	})

	t.Run("rejects too many sub-authorities", func(t *testing.T) {
		buf := []byte{1, 16, 0, 0, 0, 0, 0, 0}
		_, err := dirid.ParseSID(buf)
		r.Error(err)
	})
}

func TestSIDKeyBytesIsBigEndian(t *testing.T) {
	r := require.New(t)
	sid, err := dirid.ParseSID([]byte{
		1, 1,
		0, 0, 0, 0, 0, 5,
		0x00, 0x00, 0x01, 0x00, // little-endian 0x00010000
	})
	r.NoError(err)

	key := sid.KeyBytes()
	r.Equal(byte(0x00), key[8])
	r.Equal(byte(0x01), key[9])
}

func TestParseSIDString(t *testing.T) {
	r := require.New(t)

	sid, err := dirid.ParseSIDString("S-1-5-21-1-2-3-1001")
	r.NoError(err)
	r.Equal(uint32(1001), sid.RID())
	r.Equal("S-1-5-21-1-2-3-1001", sid.String())

	_, err = dirid.ParseSIDString("not-a-sid")
	r.Error(err)
}
