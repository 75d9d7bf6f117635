// Package tlscert выпускает самоподписанные сертификаты для запуска сервера по HTTPS
// без внешних файлов и проверяет уже сохраненные пары.
package tlscert

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"time"
)

const (
	defaultKeyBits  = 2048
	defaultValidFor = 365 * 24 * time.Hour
)

// Options параметры выпускаемого сертификата.
type Options struct {
	Organization string        // Организация в Subject
	Hosts        []string      // DNS имена и IP адреса сертификата
	ValidFor     time.Duration // Срок действия
	KeyBits      int           // Размер RSA ключа
}

// Generator представляет собой генератор самоподписанных сертификатов.
type Generator struct {
	opts Options
}

// New создает генератор. По умолчанию сертификат выпускается для localhost
// (127.0.0.1, ::1) на год.
func New(opts ...func(*Options)) *Generator {
	o := Options{
		Organization: "shortlinks",
		Hosts:        []string{"localhost", "127.0.0.1", "::1"},
		ValidFor:     defaultValidFor,
		KeyBits:      defaultKeyBits,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// WithHosts задает имена и адреса, для которых выпускается сертификат.
func WithHosts(hosts ...string) func(*Options) {
	return func(o *Options) {
		if len(hosts) > 0 {
			o.Hosts = hosts
		}
	}
}

// Modifier модификатор для изменения параметров сертификата.
type Modifier struct {
	apply func(*x509.Certificate)
}

// Modify создает новый модификатор сертификата.
// Позволяет изменять параметры сертификата перед его генерацией.
func Modify(fn func(*x509.Certificate)) Modifier {
	return Modifier{apply: fn}
}

// Generate генерирует новую пару сертификат/приватный ключ в формате PEM.
// Шаблон строится заново на каждый вызов, модификаторы применяются к нему.
func (g *Generator) Generate(modifiers ...Modifier) ([]byte, []byte, error) {
	cert, err := g.template()
	if err != nil {
		return nil, nil, err
	}
	for _, m := range modifiers {
		m.apply(cert)
	}

	privKey, errGenPrivKey := rsa.GenerateKey(rand.Reader, g.opts.KeyBits)
	if errGenPrivKey != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", errGenPrivKey)
	}
	certBytes, errGenCert := x509.CreateCertificate(rand.Reader, cert, cert, &privKey.PublicKey, privKey)
	if errGenCert != nil {
		return nil, nil, fmt.Errorf("generate certificate: %w", errGenCert)
	}

	certPEM, privPEM, errPEM := pemEncode(privKey, certBytes)
	if errPEM != nil {
		return nil, nil, fmt.Errorf("encode certificate and private key: %w", errPEM)
	}
	return certPEM, privPEM, nil
}

func (g *Generator) template() (*x509.Certificate, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128)) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("generate serial number: %w", err)
	}
	now := time.Now()
	cert := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{g.opts.Organization},
		},
		NotBefore: now.Add(-time.Minute),
		NotAfter:  now.Add(g.opts.ValidFor),
		ExtKeyUsage: []x509.ExtKeyUsage{
			x509.ExtKeyUsageServerAuth,
		},
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	for _, h := range g.opts.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			cert.IPAddresses = append(cert.IPAddresses, ip)
		} else {
			cert.DNSNames = append(cert.DNSNames, h)
		}
	}
	return cert, nil
}

// Check проверяет пару PEM сертификат/ключ.
//
// Возможные ошибки:
//   - ErrBlankPEM - пустые данные
//   - ErrCertExpired - срок действия сертификата истек
//   - ErrCertNotValidYet - сертификат еще не вступил в силу
//   - ErrKeyMismatch - ключ не подходит к сертификату
func Check(certPEM, keyPEM []byte) error {
	if len(bytes.TrimSpace(certPEM)) == 0 || len(bytes.TrimSpace(keyPEM)) == 0 {
		return ErrBlankPEM
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return errors.New("pem decode: block is nil")
	}
	if block.Type != "CERTIFICATE" {
		return errors.New("certificate type is not CERTIFICATE")
	}
	cert, errParseCert := x509.ParseCertificate(block.Bytes)
	if errParseCert != nil {
		return fmt.Errorf("parse certificate: %w", errParseCert)
	}

	now := time.Now()
	if cert.NotBefore.After(now) {
		return ErrCertNotValidYet
	}
	if cert.NotAfter.Before(now) {
		return ErrCertExpired
	}

	if _, err := tls.X509KeyPair(certPEM, keyPEM); err != nil {
		return fmt.Errorf("%w: %s", ErrKeyMismatch, err.Error())
	}
	return nil
}

func pemEncode(privKey *rsa.PrivateKey, certBytes []byte) ([]byte, []byte, error) {
	var certPEM bytes.Buffer
	if errPemEncode := pem.Encode(&certPEM, &pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certBytes,
	}); errPemEncode != nil {
		return nil, nil, fmt.Errorf("pem encode certificate: %w", errPemEncode)
	}

	var privKeyPEM bytes.Buffer
	if errPemEncode := pem.Encode(&privKeyPEM, &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privKey),
	}); errPemEncode != nil {
		return nil, nil, fmt.Errorf("pem encode RSA: %w", errPemEncode)
	}

	return certPEM.Bytes(), privKeyPEM.Bytes(), nil
}
