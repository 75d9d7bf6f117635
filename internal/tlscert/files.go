package tlscert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsurePair проверяет файлы сертификата и ключа. Если файлов нет, они пусты, сертификат
// просрочен, еще не действует или ключ от него не подходит, выпускается и сохраняется новая пара.
//
// Возвращает true, если пара была перевыпущена.
func (g *Generator) EnsurePair(certPath, keyPath string) (bool, error) {
	certPEM, errCert := readOptional(certPath)
	if errCert != nil {
		return false, errCert
	}
	keyPEM, errKey := readOptional(keyPath)
	if errKey != nil {
		return false, errKey
	}

	errCheck := Check(certPEM, keyPEM)
	if errCheck == nil {
		return false, nil
	}
	if !errors.Is(errCheck, ErrBlankPEM) &&
		!errors.Is(errCheck, ErrCertExpired) &&
		!errors.Is(errCheck, ErrCertNotValidYet) &&
		!errors.Is(errCheck, ErrKeyMismatch) {
		return false, fmt.Errorf("check certificate and private key: %w", errCheck)
	}

	newCert, newKey, errGen := g.Generate()
	if errGen != nil {
		return false, fmt.Errorf("generate certificate and private key: %w", errGen)
	}
	if err := writeFile(certPath, newCert); err != nil {
		return false, fmt.Errorf("save certificate: %w", err)
	}
	if err := writeFile(keyPath, newKey); err != nil {
		return false, fmt.Errorf("save private key: %w", err)
	}
	return true, nil
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600) //nolint:wrapcheck,mnd
}
