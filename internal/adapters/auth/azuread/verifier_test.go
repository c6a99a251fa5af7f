package azuread

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwksServer struct {
	*httptest.Server
	hits atomic.Int32
	doc  atomic.Value // jwks
}

func newJWKSServer(t *testing.T, keys map[string]*rsa.PublicKey) *jwksServer {
	t.Helper()
	s := &jwksServer{}
	s.setKeys(keys)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.doc.Load())
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *jwksServer) setKeys(keys map[string]*rsa.PublicKey) {
	s.doc.Store(jwksDoc(keys))
}

func jwksDoc(keys map[string]*rsa.PublicKey) jwks {
	doc := jwks{}
	for kid, k := range keys {
		doc.Keys = append(doc.Keys, jwk{
			KTY: "RSA",
			Use: "sig",
			KID: kid,
			N:   base64.RawURLEncoding.EncodeToString(k.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(k.E)).Bytes()),
		})
	}
	return doc
}

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	k, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return k
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func azureClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"oid":   "object-1",
		"aud":   "api://shelter",
		"scp":   "Pets.Write",
		"roles": []string{"Shelter.Staff"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestConfig_KeysURL(t *testing.T) {
	u, err := Config{TenantID: "tenant-1"}.KeysURL()
	require.NoError(t, err)
	assert.Equal(t, "https://login.microsoftonline.com/tenant-1/discovery/v2.0/keys", u)

	u, err = Config{Instance: "https://login.example/", TenantID: "t"}.KeysURL()
	require.NoError(t, err)
	assert.Equal(t, "https://login.example/t/discovery/v2.0/keys", u)

	u, err = Config{JwksURL: "http://localhost/keys"}.KeysURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/keys", u)

	_, err = Config{}.KeysURL()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifier_Verify(t *testing.T) {
	key := newRSAKey(t)
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})

	v, err := NewVerifier(Config{JwksURL: srv.URL, ClientID: "api://shelter"})
	require.NoError(t, err)

	c, err := v.Verify(context.Background(), signRS256(t, key, "k1", azureClaims()))
	require.NoError(t, err)
	assert.Equal(t, "object-1", c.UserID)
	assert.Equal(t, []string{"Pets.Write"}, c.Scopes)
	assert.Equal(t, []string{"Shelter.Staff"}, c.Roles)

	// segunda verificación sale del cache
	_, err = v.Verify(context.Background(), signRS256(t, key, "k1", azureClaims()))
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())
}

func TestVerifier_Rejects(t *testing.T) {
	key := newRSAKey(t)
	other := newRSAKey(t)
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &key.PublicKey})

	v, err := NewVerifier(Config{JwksURL: srv.URL, ClientID: "api://shelter"})
	require.NoError(t, err)

	wrongAud := azureClaims()
	wrongAud["aud"] = "api://other"

	hs, err := jwt.NewWithClaims(jwt.SigningMethodHS256, azureClaims()).SignedString([]byte("symmetric-key-should-not-work"))
	require.NoError(t, err)

	cases := map[string]string{
		"missing kid":    signRS256(t, key, "", azureClaims()),
		"unknown kid":    signRS256(t, key, "nope", azureClaims()),
		"wrong key":      signRS256(t, other, "k1", azureClaims()),
		"wrong audience": signRS256(t, key, "k1", wrongAud),
		"hs256":          hs,
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestKeySet_RotationRefreshesOncePerWindow(t *testing.T) {
	k1 := newRSAKey(t)
	k2 := newRSAKey(t)
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{"k1": &k1.PublicKey})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ks := NewKeySet(srv.URL, nil)
	ks.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := ks.Key(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())

	// kid desconocido dentro de la ventana: no se vuelve a pedir el JWKS
	srv.setKeys(map[string]*rsa.PublicKey{"k1": &k1.PublicKey, "k2": &k2.PublicKey})
	_, err = ks.Key(ctx, "k2")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, int32(1), srv.hits.Load())

	now = now.Add(2 * time.Minute)
	got, err := ks.Key(ctx, "k2")
	require.NoError(t, err)
	assert.Zero(t, k2.PublicKey.N.Cmp(got.N))
	assert.Equal(t, int32(2), srv.hits.Load())
}

func TestKeySet_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewKeySet(srv.URL, nil).Key(context.Background(), "k1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownKey)
}

func TestKeySet_FailingEndpointFetchedOncePerWindow(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ks := NewKeySet(srv.URL, nil)
	ks.now = func() time.Time { return now }
	ctx := context.Background()

	for range 50 {
		_, err := ks.Key(ctx, "k1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnknownKey)
	}
	assert.Equal(t, int32(1), hits.Load())

	now = now.Add(ks.minRefresh)
	_, err := ks.Key(ctx, "k1")
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestKeySet_ConcurrentLookupsShareOneFetch(t *testing.T) {
	key := newRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{"k1": &key.PublicKey})

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		time.Sleep(50 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)

	ks := NewKeySet(srv.URL, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ks.Key(ctx, "k1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}
