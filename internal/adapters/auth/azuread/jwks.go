package azuread

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"shelter/internal/platform/httpclient"

	"golang.org/x/sync/singleflight"
)

var ErrUnknownKey = errors.New("azuread: unknown signing key")

// jwks es el documento publicado en .../discovery/v2.0/keys.
type jwks struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	KTY string `json:"kty"`
	Use string `json:"use"`
	KID string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// KeySet cachea las claves RSA del JWKS. Ante un kid desconocido se pide el
// documento de nuevo, a lo sumo una vez cada minRefresh: el intento cuenta
// aunque falle, y los pedidos concurrentes comparten un solo fetch.
type KeySet struct {
	url    string
	client *httpclient.Client
	group  singleflight.Group

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	lastAttempt time.Time
	lastErr     error
	minRefresh  time.Duration
	now         func() time.Time
}

func NewKeySet(url string, client *httpclient.Client) *KeySet {
	if client == nil {
		client = httpclient.New(httpclient.DefaultTimeout)
	}
	return &KeySet{
		url:        url,
		client:     client,
		keys:       map[string]*rsa.PublicKey{},
		minRefresh: time.Minute,
		now:        time.Now,
	}
}

func (s *KeySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if k, done, err := s.cached(kid); done {
		return k, err
	}

	_, err, _ := s.group.Do("jwks", func() (any, error) {
		// otro request pudo haber refrescado entre el chequeo y el Do
		if _, done, _ := s.cached(kid); done {
			return nil, nil
		}
		return nil, s.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}

	k, _, err := s.cached(kid)
	if k == nil && err == nil {
		err = fmt.Errorf("%w: %s", ErrUnknownKey, kid)
	}
	return k, err
}

// cached resuelve kid sin salir a la red. done=false => hay que refrescar.
func (s *KeySet) cached(kid string) (*rsa.PublicKey, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k, ok := s.keys[kid]; ok {
		return k, true, nil
	}
	if s.lastAttempt.IsZero() || s.now().Sub(s.lastAttempt) >= s.minRefresh {
		return nil, false, nil
	}
	if s.lastErr != nil {
		return nil, true, s.lastErr
	}
	return nil, true, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
}

func (s *KeySet) fetch(ctx context.Context) error {
	var doc jwks
	err := s.client.GetJSON(ctx, s.url, &doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAttempt = s.now()
	if err != nil {
		s.lastErr = fmt.Errorf("azuread: fetch jwks: %w", err)
		return s.lastErr
	}
	s.lastErr = nil

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.KTY != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := k.rsaKey()
		if err != nil {
			continue
		}
		keys[k.KID] = pub
	}
	s.keys = keys
	return nil
}

func (k jwk) rsaKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}
	if len(n) == 0 || len(e) == 0 {
		return nil, errors.New("empty modulus or exponent")
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
