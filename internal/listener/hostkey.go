package listener

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/crypto/ssh"
)

// LoadOrGenerateHostKey returns the ssh host key stored at path. If path is
// empty an ephemeral key is generated. If no file exists at path a new key
// is generated and written there so clients see the same key after a
// restart.
func LoadOrGenerateHostKey(path string) (ssh.Signer, error) {
	if path == "" {
		slog.Warn("no host_key_path configured for ssh listener, generating ephemeral key")
		_, signer, err := generateHostKey()
		return signer, err
	}

	keyBytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return writeHostKey(path)
	case err != nil:
		return nil, fmt.Errorf("reading host key %q: %w", path, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", path, err)
	}
	return signer, nil
}

func generateHostKey() (ed25519.PrivateKey, ssh.Signer, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating host key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("creating signer from host key: %w", err)
	}
	return privKey, signer, nil
}

func writeHostKey(path string) (ssh.Signer, error) {
	privKey, signer, err := generateHostKey()
	if err != nil {
		return nil, err
	}

	block, err := ssh.MarshalPrivateKey(privKey, "adventure host key")
	if err != nil {
		return nil, fmt.Errorf("marshalling host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("writing host key %q: %w", path, err)
	}

	slog.Info("generated ssh host key", "path", path)
	return signer, nil
}
