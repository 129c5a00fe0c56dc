package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/crossclues/internal/game"
	"github.com/robalobadob/crossclues/internal/room"
)

var errBadSeat = errors.New("invalid seat token")

// seatSigner issues and verifies seat tokens.
type seatSigner struct {
	secret []byte
	ttl    time.Duration
}

// sign creates an HS256 JWT binding a client to one seat of one room.
func (s seatSigner) sign(roomID string, p game.PlayerID) (string, time.Time, error) {
	exp := time.Now().Add(s.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"room":   roomID,
		"player": int(p),
		"exp":    exp.Unix(),
		"iat":    time.Now().Unix(),
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// parse verifies a seat token and returns its room and player.
func (s seatSigner) parse(tok string) (string, game.PlayerID, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", 0, errBadSeat
	}
	roomID, _ := claims["room"].(string)
	player, ok := claims["player"].(float64)
	if roomID == "" || !ok {
		return "", 0, errBadSeat
	}
	return roomID, game.PlayerID(player), nil
}

// seatFor resolves the caller's seat in rm. A request without a token is a
// spectator (nil seat); a token for another room or seat that does not
// exist is an error.
func (s *Server) seatFor(r *http.Request, rm *room.Room) (*game.PlayerID, error) {
	tok := bearerOrQuery(r)
	if tok == "" {
		return nil, nil
	}
	roomID, p, err := s.seats.parse(tok)
	if err != nil {
		return nil, err
	}
	if roomID != rm.ID || !rm.HasPlayer(p) {
		return nil, errBadSeat
	}
	return &p, nil
}

// bearerOrQuery extracts a token from the Authorization header, or from the
// "token" query parameter (browsers cannot set headers on WebSocket dials).
func bearerOrQuery(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return r.URL.Query().Get("token")
}
