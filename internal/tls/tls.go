package tls

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/logger"
)

// CrtFile и KeyFile - имена сертификата и ключа в каталоге сертификатов.
var (
	CrtFile = "server.crt"
	KeyFile = "server.key"
)

const keyBits = 2048

// Certs возвращает пути сертификата и ключа в dir и создаёт
// самоподписанную пару для localhost, если какого-то файла нет.
func Certs(dir string) (crtPath, keyPath string, err error) {
	crtPath = filepath.Join(dir, CrtFile)
	keyPath = filepath.Join(dir, KeyFile)

	if exists(crtPath) && exists(keyPath) {
		return crtPath, keyPath, nil
	}
	if err := GenerateCerts(crtPath, keyPath); err != nil {
		return "", "", err
	}
	return crtPath, keyPath, nil
}

// GenerateCerts пишет новый самоподписанный сертификат и RSA ключ в PEM.
func GenerateCerts(crtPath, keyPath string) error {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		return err
	}
	cert := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{"TinyLink"},
			CommonName:   "localhost",
		},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().AddDate(10, 0, 0),
		SubjectKeyId: []byte{1, 2, 3, 4, 6},
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return err
	}

	certBytes, err := x509.CreateCertificate(rand.Reader, cert, cert, &privateKey.PublicKey, privateKey)
	if err != nil {
		return err
	}

	var certPEM bytes.Buffer
	if err := pem.Encode(&certPEM, &pem.Block{Type: "CERTIFICATE", Bytes: certBytes}); err != nil {
		return err
	}

	var privateKeyPEM bytes.Buffer
	if err := pem.Encode(&privateKeyPEM, &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(crtPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(crtPath, certPEM.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(keyPath, privateKeyPEM.Bytes(), 0o600); err != nil {
		return err
	}

	logger.Log.Info("Generated certificate", zap.String("crt", crtPath), zap.String("key", keyPath))
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
