package util

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

func FileExists(name string) bool {
	_, err := os.Stat(name)

	if os.IsNotExist(err) {
		return false
	}

	//permission and other errors count as "not usable"
	return err == nil
}

func GetEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && !IsBlank(value) {
		return strings.TrimSpace(value)
	}

	return defaultVal
}

func GetEnvAsInt(name string, defaultVal int) int {
	valueStr := GetEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}

	return defaultVal
}

func GetEnvAsBool(name string, defaultVal bool) bool {
	valueStr := GetEnv(name, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}

	return defaultVal
}

func IsBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

//Length returns number of characters in s
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
