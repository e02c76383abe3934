// File: utils/logincode.go
package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// generateNumericCode generates a secure random numeric code of the specified length.
func generateNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// InitiateLoginCode generates a 6-digit verification code, stores its bcrypt
// hash in Redis with a 5-minute TTL, and hands the plain code to the delivery
// channel (logged in development; SMS/email delivery is an external concern).
func InitiateLoginCode(identifier string) error {
	code, err := generateNumericCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate login code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash login code: %w", err)
	}

	ctx := context.Background()
	client := GetCodeCacheClient()
	key := fmt.Sprintf("logincode:%s", identifier)
	if err := client.Set(ctx, key, string(hash), LoginCodeTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache login code", zap.Error(err))
		return fmt.Errorf("failed to initiate login code")
	}

	GetLogger().Sugar().Infof("Sent login code to %s (expires in %v)", identifier, LoginCodeTTL)
	return nil
}

// VerifyLoginCodeRecord retrieves the stored hash from Redis and compares it to
// the provided code. If they match, it deletes the record from the cache.
func VerifyLoginCodeRecord(identifier, providedCode string) error {
	ctx := context.Background()
	client := GetCodeCacheClient()
	key := fmt.Sprintf("logincode:%s", identifier)

	storedHash, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("login code not found or expired")
		}
		return fmt.Errorf("failed to retrieve login code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedCode)); err != nil {
		return fmt.Errorf("login code does not match")
	}

	// Delete the code after successful verification.
	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete login code after verification", zap.Error(err))
	}
	return nil
}
