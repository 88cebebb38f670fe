package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the work factor the rest of the system assumes.
// Override per-deployment via BCRYPT_COST.
const DefaultCost = 10

// Hash hashes a plaintext password with the default cost
func Hash(password string) (string, error) {
	return HashWithCost(password, DefaultCost)
}

// HashWithCost hashes a plaintext password with an explicit bcrypt cost
func HashWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a plaintext password with a stored hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
