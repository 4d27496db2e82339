// Package accountrepo persists accounts and password reset tokens.
package accountrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/account"

	"github.com/google/uuid"
)

type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"not null;uniqueIndex"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Fullname     string    `gorm:"not null"`
	Phone        string    `gorm:"not null;default:''"`
	Role         int16     `gorm:"type:smallint;not null;default:0"`
	CreatedAt    time.Time
}

func (AccountDTO) TableName() string {
	return "accounts"
}

type ResetTokenDTO struct {
	Email     string    `gorm:"primaryKey"`
	Token     string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (ResetTokenDTO) TableName() string {
	return "reset_tokens"
}

func accountFromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Username:     a.Username(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Fullname:     a.Fullname(),
		Phone:        a.Phone(),
		Role:         int16(a.Role()),
		CreatedAt:    a.CreatedAt(),
	}
}

func accountToDomain(dto AccountDTO) (*account.Account, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	return account.RestoreAccount(
		id,
		dto.Username, dto.Email, dto.PasswordHash, dto.Fullname, dto.Phone,
		account.Role(dto.Role),
		dto.CreatedAt.UTC(),
	)
}

func tokenFromDomain(t account.ResetToken) ResetTokenDTO {
	return ResetTokenDTO{Email: t.Email(), Token: t.Token(), CreatedAt: t.CreatedAt()}
}

func tokenToDomain(dto ResetTokenDTO) (account.ResetToken, error) {
	return account.RestoreResetToken(dto.Email, dto.Token, dto.CreatedAt)
}
