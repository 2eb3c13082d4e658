// file: internals/features/users/auth/session/store.go
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TTL default sesi admin.
const DefaultTTL = 12 * time.Hour

// Store menyimpan sesi admin aktif: jti → waktu kadaluarsa. Token yang
// tanda tangannya valid tapi jti-nya sudah tidak ada di store dianggap
// logout (revoked).
type Store struct {
	mu     sync.Mutex
	items  map[string]time.Time
	secret []byte
	ttl    time.Duration
}

func NewStore(secret string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		items:  make(map[string]time.Time),
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue membuat sesi baru dan mengembalikan JWT bertanda tangan untuk
// ditaruh di cookie.
func (s *Store) Issue() (string, error) {
	jti := uuid.NewString()
	exp := time.Now().Add(s.ttl)

	claims := jwt.RegisteredClaims{
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Subject:   "admin",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.items[jti] = exp
	s.mu.Unlock()
	return token, nil
}

// Validate mengecek tanda tangan + sesi masih hidup di store.
func (s *Store) Validate(tokenString string) bool {
	jti, ok := s.parse(tokenString)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[jti]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(s.items, jti)
		return false
	}
	return true
}

// Revoke menghapus sesi (logout). Token tidak valid lagi walau exp
// masih jauh.
func (s *Store) Revoke(tokenString string) {
	jti, ok := s.parse(tokenString)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.items, jti)
	s.mu.Unlock()
}

// PurgeExpired membuang entri kadaluarsa; dipanggil scheduler.
func (s *Store) PurgeExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for jti, exp := range s.items {
		if now.After(exp) {
			delete(s.items, jti)
			removed++
		}
	}
	return removed
}

func (s *Store) parse(tokenString string) (string, bool) {
	if tokenString == "" {
		return "", false
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}
