package identity

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	RoleCustomer = "customer"
	RoleRider    = "rider"

	AttrCustomerID = "customer_id"
	AttrRiderID    = "rider_id"
)

// Account is what gets created in the identity provider for a local customer or rider.
type Account struct {
	Username   string
	Email      string
	FirstName  string
	LastName   string
	Password   string
	Attributes map[string]string
}

// Provider is the narrow slice of an identity provider's admin API the bridge needs.
type Provider interface {
	CreateAccount(ctx context.Context, account Account) (string, error)
	AssignRole(ctx context.Context, userID, role string) error
	FindByAttribute(ctx context.Context, name, value string) ([]string, error)
	FindByUsername(ctx context.Context, username string) ([]string, error)
	DeleteAccount(ctx context.Context, userID string) error
}

var whitespace = regexp.MustCompile(`\s+`)

func CustomerUsername(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "_"))
}

// RiderUsername appends the rider id since rider names are not unique.
func RiderUsername(name string, id int64) string {
	return CustomerUsername(name) + "_" + strconv.FormatInt(id, 10)
}

// SplitName splits on the first whitespace run. fallbackLast is used for single-word names.
func SplitName(name, fallbackLast string) (string, string) {
	parts := whitespace.Split(strings.TrimSpace(name), 2)
	if len(parts) < 2 || parts[1] == "" {
		return parts[0], fallbackLast
	}
	return parts[0], parts[1]
}

const (
	passwordLen  = 12
	symbols      = "!@#$%&*"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
)

// GeneratePassword returns a 12-character password with at least one uppercase, one lowercase,
// one digit and one symbol. Do not log the result.
func GeneratePassword() (string, error) {
	pick := func(s string) (byte, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s))))
		if err != nil {
			return 0, err
		}
		return s[n.Int64()], nil
	}

	result := make([]byte, passwordLen)
	var err error
	for i, set := range []string{upperLetters, lowerLetters, digits, symbols} {
		if result[i], err = pick(set); err != nil {
			return "", err
		}
	}
	all := upperLetters + lowerLetters + digits + symbols
	for i := 4; i < passwordLen; i++ {
		if result[i], err = pick(all); err != nil {
			return "", err
		}
	}

	for i := passwordLen - 1; i >= 1; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
		j := int(n.Int64())
		result[i], result[j] = result[j], result[i]
	}
	return string(result), nil
}
