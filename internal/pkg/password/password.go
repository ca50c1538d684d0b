package password

import (
	"errors"

	"hrms/config"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password: hash mismatch")

// Hasher bcrypt 已內建 salt，CompareHashAndPassword 為常數時間比較
type Hasher struct {
	cost int
	// 查無帳號時仍需比對一次，避免以回應時間推測 email 是否存在
	dummyHash []byte
}

func NewHasher(conf *config.Configuration) *Hasher {
	cost := conf.Security.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	return &Hasher{cost: cost, dummyHash: dummy}
}

func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *Hasher) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}

// CompareDummy 只消耗與一次正常比對相同的時間
func (h *Hasher) CompareDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plain))
}
