package validator

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(s)
}

// 電話番号のゆるいチェック。
// 空白・ハイフン・括弧を取り除いてから数字列として見る
func IsPhoneLike(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phoneRe.MatchString(cleaned)
}
