package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServerConfig(t *testing.T) {
	dir, certFile, keyFile := writeKeyPair(t)
	defer os.RemoveAll(dir)

	t.Run("withoutCA", func(t *testing.T) {
		conf, err := ServerConfig(certFile, keyFile, "")
		require.NoError(t, err)
		require.Len(t, conf.Certificates, 1)
		require.Equal(t, tls.NoClientCert, conf.ClientAuth)
		require.Equal(t, uint16(tls.VersionTLS12), conf.MinVersion)
	})

	t.Run("withCA", func(t *testing.T) {
		conf, err := ServerConfig(certFile, keyFile, certFile)
		require.NoError(t, err)
		require.Equal(t, tls.VerifyClientCertIfGiven, conf.ClientAuth)
		require.NotNil(t, conf.ClientCAs)
	})

	t.Run("missingKey", func(t *testing.T) {
		_, err := ServerConfig(certFile, filepath.Join(dir, "missing.pem"), "")
		require.Error(t, err)
	})

	t.Run("invalidCA", func(t *testing.T) {
		_, err := ServerConfig(certFile, keyFile, keyFile)
		require.Error(t, err)
	})
}

func TestClientConfig(t *testing.T) {
	dir, certFile, _ := writeKeyPair(t)
	defer os.RemoveAll(dir)

	conf, err := ClientConfig("", true)
	require.NoError(t, err)
	require.True(t, conf.InsecureSkipVerify)
	require.Nil(t, conf.RootCAs)

	conf, err = ClientConfig(certFile, false)
	require.NoError(t, err)
	require.NotNil(t, conf.RootCAs)

	_, err = ClientConfig(filepath.Join(dir, "missing.pem"), false)
	require.Error(t, err)
}

func writeKeyPair(t *testing.T) (string, string, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "localhost"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		DNSNames:              []string{"localhost"},
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir, err := ioutil.TempDir("", "tlsutil")
	require.NoError(t, err)

	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")
	require.NoError(t, ioutil.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0600))
	require.NoError(t, ioutil.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0600))

	return dir, certFile, keyFile
}
