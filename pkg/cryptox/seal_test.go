package cryptox_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/cryptox"
)

func TestSealAndOpen(t *testing.T) {
	plaintext := []byte("JBSWY3DPEHPK3PXP")

	sealed, err := cryptox.Seal("hunter2", plaintext)
	require.NoError(t, err)
	require.NotEmpty(t, sealed)
	require.NotEqual(t, plaintext, sealed)

	opened, err := cryptox.Open("hunter2", sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestSealProducesUniqueOutput(t *testing.T) {
	first, err := cryptox.Seal("passphrase", []byte("secret"))
	require.NoError(t, err)

	second, err := cryptox.Seal("passphrase", []byte("secret"))
	require.NoError(t, err)

	// Fresh salt and nonce per call.
	require.NotEqual(t, first, second)
}

func TestOpenWithWrongPassphrase(t *testing.T) {
	sealed, err := cryptox.Seal("correct", []byte("secret"))
	require.NoError(t, err)

	_, err = cryptox.Open("incorrect", sealed)
	require.Error(t, err)
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	sealed, err := cryptox.Seal("passphrase", []byte("secret"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff

	_, err = cryptox.Open("passphrase", sealed)
	require.Error(t, err)
}

func TestOpenRejectsShortInput(t *testing.T) {
	_, err := cryptox.Open("passphrase", []byte("short"))
	require.ErrorIs(t, err, cryptox.ErrInvalidCiphertext)
}
