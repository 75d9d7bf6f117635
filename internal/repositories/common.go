package repositories

import "strings"

// LikeEscapeChar символ экранирования для LIKE выражений. Все реализации используют `ESCAPE '\'`.
const LikeEscapeChar = `\`

var likeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike экранирует спецсимволы LIKE, чтобы пользовательская подстрока искалась буквально.
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}

// ContainsPattern строит LIKE шаблон "содержит подстроку" в нижнем регистре.
func ContainsPattern(substr string) string {
	return "%" + EscapeLike(strings.ToLower(substr)) + "%"
}
