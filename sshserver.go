package adventure

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ahmetb/go-cursor"
	gossh "golang.org/x/crypto/ssh"

	"github.com/gliderlabs/ssh"
)

const adventurePubkey = "adventure-pubkey"

func handleConnection(world World, s ssh.Session) {
	if len(s.Command()) > 0 {
		s.Write([]byte("Commands are not supported.\n"))
		s.Close()
		return
	}

	pubKey, _ := s.Context().Value(adventurePubkey).(string)
	log.Printf("%s logged in from %s at %s (key %q)",
		s.User(), s.RemoteAddr(), time.Now().UTC().Format(time.RFC3339), pubKey)

	io.WriteString(s, cursor.ClearEntireScreen()+cursor.MoveTo(1, 1))

	game := NewGame(world, s)
	game.Run(s)

	log.Printf("Disconnected %v", s.RemoteAddr())
	s.Close()
}

// makeHostKey writes a fresh RSA host key to filename unless one is already
// there, and returns the filename for ssh.HostKeyFile.
func makeHostKey(filename string) (string, error) {
	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", err
	}
	defer out.Close()

	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	if err := pem.Encode(out, block); err != nil {
		return "", err
	}

	return filename, nil
}

// ServeSSH runs the main SSH server loop against a shared world. Any public
// key is accepted; the key is only recorded for the connection log.
func ServeSSH(listen string, world World) error {
	privateKey, err := makeHostKey("./adventure_host_key")
	if err != nil {
		return fmt.Errorf("host key: %v", err)
	}

	publicKeyOption := ssh.PublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
		marshal := gossh.MarshalAuthorizedKey(key)
		ctx.SetValue(adventurePubkey, string(marshal))
		return true
	})

	log.Printf("Starting SSH server on %v", listen)
	return ssh.ListenAndServe(listen, func(s ssh.Session) {
		handleConnection(world, s)
	}, publicKeyOption, ssh.HostKeyFile(privateKey))
}
