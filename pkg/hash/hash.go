// Package hash 提供了基于 bcrypt 的密码哈希工具。
package hash

import "golang.org/x/crypto/bcrypt"

// bcryptCost 是密码哈希的代价因子，10 轮。
const bcryptCost = 10

// HashPassword 对明文密码进行加盐哈希。
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash 比较明文密码与哈希值是否匹配。
// bcrypt 的比较本身是恒定代价的，不会泄露失败位置。
func CheckPasswordHash(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
