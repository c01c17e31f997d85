package models

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Account struct {
	AccountID uint64    `gorm:"primaryKey;autoIncrement;column:account_id" json:"account_id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_username;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(16);default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountResponse là bản public của tài khoản, không bao giờ chứa password hash.
type AccountResponse struct {
	AccountID uint64    `json:"account_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) Public() *AccountResponse {
	return &AccountResponse{
		AccountID: a.AccountID,
		Username:  a.Username,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

// HashPassword hashes the plain password before it is stored.
func (a *Account) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

func MigrateAccount(db *gorm.DB) {
	if db.Migrator().HasTable(&Account{}) {
		return
	}
	if err := db.AutoMigrate(&Account{}); err != nil {
		log.Fatalf("❌ Failed to migrate Account table: %v", err)
	}
	log.Println("✅ Account table migrated successfully.")
}
